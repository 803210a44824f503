package rating

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"marketplace-api/internal/domain/rating"
	"marketplace-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) rating.Repository {
	return &Repository{db: db}
}

func scan(row pgx.Row) (*Rating, error) {
	r := new(Rating)
	err := row.Scan(
		&r.ID,
		&r.ProductID,
		&r.UserID,
		&r.Username,
		&r.Score,
		&r.Comment,
		&r.CreatedAt,
		&r.UpdatedAt,
	)

	return r, err
}

func fetchOne(row pgx.Row, op string) (*rating.Rating, error) {
	r, err := scan(row)
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return nil, nil
		case postgres.IsPgUniqueViolation(err):
			return nil, rating.ErrAlreadyRated
		case postgres.IsPgForeignKeyViolation(err):
			return nil, rating.ErrUnknownUser
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return fromDBModel(r), nil
}

func (r *Repository) fetchMany(ctx context.Context, op, query string, args ...any) (rating.Ratings, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	rs := Ratings{}
	for rows.Next() {
		m, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		rs = append(rs, m)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return fromDBModels(rs), nil
}

func (r *Repository) FetchRatings(ctx context.Context) (rating.Ratings, error) {
	return r.fetchMany(ctx, "fetch ratings", SelectRatings)
}

func (r *Repository) FetchRatingByID(ctx context.Context, id rating.UUID) (*rating.Rating, error) {
	return fetchOne(r.db.QueryRow(ctx, SelectRatingByID, id), "fetch rating by id")
}

func (r *Repository) FetchRatingsByProduct(ctx context.Context, productID rating.UUID) (rating.Ratings, error) {
	return r.fetchMany(ctx, "fetch ratings by product", SelectRatingsByProduct, productID)
}

func (r *Repository) ExistsForUserProduct(ctx context.Context, userID, productID rating.UUID) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, SelectRatingExists, userID, productID).Scan(&exists); err != nil {
		return false, fmt.Errorf("rating exists: %w", err)
	}

	return exists, nil
}

// CreateRating relies on ratings_user_product_key to reject a second rating
// for the same pair, including one inserted concurrently.
func (r *Repository) CreateRating(ctx context.Context, req rating.Rating) (*rating.Rating, error) {
	row := r.db.QueryRow(ctx, InsertRating, req.ProductID, req.UserID, req.Score, req.Comment)

	return fetchOne(row, "create rating")
}

func (r *Repository) UpdateRating(ctx context.Context, req rating.Rating) (*rating.Rating, error) {
	row := r.db.QueryRow(ctx, UpdateRatingByID, req.Score, req.Comment, req.ID)

	return fetchOne(row, "update rating")
}

func (r *Repository) DeleteRating(ctx context.Context, id rating.UUID) (*rating.Rating, error) {
	return fetchOne(r.db.QueryRow(ctx, DeleteRatingByID, id), "delete rating")
}
