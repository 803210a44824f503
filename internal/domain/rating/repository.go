package rating

import (
	"context"
)

// Repository returns (nil, nil) when the requested rating does not exist.
// CreateRating must fail with ErrAlreadyRated when the (user, product) pair
// is already stored.
type Repository interface {
	FetchRatings(ctx context.Context) (Ratings, error)
	FetchRatingByID(ctx context.Context, id UUID) (*Rating, error)
	FetchRatingsByProduct(ctx context.Context, productID UUID) (Ratings, error)
	ExistsForUserProduct(ctx context.Context, userID, productID UUID) (bool, error)
	CreateRating(ctx context.Context, req Rating) (*Rating, error)
	UpdateRating(ctx context.Context, req Rating) (*Rating, error)
	DeleteRating(ctx context.Context, id UUID) (*Rating, error)
}
