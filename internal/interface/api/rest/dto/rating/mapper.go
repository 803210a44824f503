package rating

import (
	"marketplace-api/internal/domain/rating"
)

func ToResponseRating(rDomain rating.Rating) Rating {
	return Rating{
		ID:        rDomain.ID,
		ProductID: rDomain.ProductID,
		UserID:    rDomain.UserID,
		Username:  rDomain.Username,
		Score:     rDomain.Score,
		Comment:   rDomain.Comment,
		CreatedAt: rDomain.CreatedAt,
		UpdatedAt: rDomain.UpdatedAt,
	}
}

func ToResponseRatings(rsDomain rating.Ratings) Ratings {
	rs := make(Ratings, len(rsDomain))
	for idx, r := range rsDomain {
		rs[idx] = ToResponseRating(*r)
	}

	return rs
}

func ToCreateParams(r CreateRequest) rating.CreateParams {
	return rating.CreateParams{
		ProductID: r.ProductID,
		UserID:    r.UserID,
		Score:     r.Score,
		Comment:   r.Comment,
	}
}

func ToUpdateParams(r UpdateRequest) rating.UpdateParams {
	return rating.UpdateParams{Score: r.Score, Comment: r.Comment}
}
