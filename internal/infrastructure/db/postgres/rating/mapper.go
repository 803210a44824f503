package rating

import (
	domain "marketplace-api/internal/domain/rating"
)

func fromDBModel(model *Rating) *domain.Rating {
	return &domain.Rating{
		ID:        model.ID,
		ProductID: model.ProductID,
		UserID:    model.UserID,
		Username:  model.Username,
		Score:     model.Score,
		Comment:   model.Comment,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

func fromDBModels(models Ratings) domain.Ratings {
	rs := make(domain.Ratings, len(models))
	for idx, r := range models {
		rs[idx] = fromDBModel(r)
	}

	return rs
}
