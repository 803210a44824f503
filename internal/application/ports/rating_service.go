package ports

import (
	"context"

	"marketplace-api/internal/domain/rating"
)

type RatingService interface {
	FindRatings(ctx context.Context) (rating.Ratings, error)
	FindRatingByID(ctx context.Context, id rating.UUID) (*rating.Rating, error)
	FindRatingsByProduct(ctx context.Context, productID rating.UUID) (rating.Ratings, error)
	CreateRating(ctx context.Context, p rating.CreateParams) (*rating.Rating, error)
	UpdateRating(ctx context.Context, id rating.UUID, p rating.UpdateParams) (*rating.Rating, error)
	DeleteRating(ctx context.Context, id rating.UUID) (*rating.Rating, error)
}
