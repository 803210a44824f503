package services

import (
	"context"
	"errors"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"marketplace-api/internal/application/ports"
	domain "marketplace-api/internal/domain/rating"
	"marketplace-api/internal/infrastructure/mq"
	"marketplace-api/internal/interface/api/rest/dto/rating"
)

type RatingService struct {
	ratingRepository domain.Repository
	publisher        ports.Publisher
	mCounter         *prometheus.CounterVec
}

func NewRatingService(
	ratingRepository domain.Repository,
	publisher ports.Publisher,
	mCounter *prometheus.CounterVec,
) ports.RatingService {
	return &RatingService{
		ratingRepository: ratingRepository,
		publisher:        publisher,
		mCounter:         mCounter,
	}
}

func (rs *RatingService) FindRatings(ctx context.Context) (domain.Ratings, error) {
	ratings, err := rs.ratingRepository.FetchRatings(ctx)
	if err != nil {
		return nil, err
	}
	if ratings == nil {
		ratings = domain.Ratings{}
	}

	return ratings, nil
}

func (rs *RatingService) FindRatingByID(ctx context.Context, id domain.UUID) (*domain.Rating, error) {
	r, err := rs.ratingRepository.FetchRatingByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.ErrNotFound
	}

	return r, nil
}

func (rs *RatingService) FindRatingsByProduct(ctx context.Context, productID domain.UUID) (domain.Ratings, error) {
	ratings, err := rs.ratingRepository.FetchRatingsByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if ratings == nil {
		ratings = domain.Ratings{}
	}

	return ratings, nil
}

// CreateRating allows one rating per (user, product). The lookup only saves a
// round trip; the unique constraint decides concurrent submissions.
func (rs *RatingService) CreateRating(ctx context.Context, p domain.CreateParams) (*domain.Rating, error) {
	p.Comment = strings.TrimSpace(p.Comment)
	if err := validateStruct(p); err != nil {
		return nil, err
	}

	exists, err := rs.ratingRepository.ExistsForUserProduct(ctx, p.UserID, p.ProductID)
	if err != nil {
		return nil, err
	}
	if exists {
		rs.mCounter.WithLabelValues("rating_conflict_total").Inc()
		return nil, domain.ErrAlreadyRated
	}

	rRet, err := rs.ratingRepository.CreateRating(ctx, domain.Rating{
		ProductID: p.ProductID,
		UserID:    p.UserID,
		Score:     p.Score,
		Comment:   p.Comment,
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyRated) {
			rs.mCounter.WithLabelValues("rating_conflict_total").Inc()
		}
		return nil, err
	}

	rs.publish(ctx, mq.RatingCreated, rRet)
	rs.mCounter.WithLabelValues("rating_created_total").Inc()

	return rRet, nil
}

func (rs *RatingService) UpdateRating(ctx context.Context, id domain.UUID, p domain.UpdateParams) (*domain.Rating, error) {
	p.Comment = strings.TrimSpace(p.Comment)
	if err := validateStruct(p); err != nil {
		return nil, err
	}

	rRet, err := rs.ratingRepository.UpdateRating(ctx, domain.Rating{
		ID:      id,
		Score:   p.Score,
		Comment: p.Comment,
	})
	if err != nil {
		return nil, err
	}
	if rRet == nil {
		return nil, domain.ErrNotFound
	}

	rs.publish(ctx, mq.RatingUpdated, rRet)
	rs.mCounter.WithLabelValues("rating_updated_total").Inc()

	return rRet, nil
}

func (rs *RatingService) DeleteRating(ctx context.Context, id domain.UUID) (*domain.Rating, error) {
	r, err := rs.ratingRepository.DeleteRating(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.ErrNotFound
	}

	rs.publish(ctx, mq.RatingDeleted, r)
	rs.mCounter.WithLabelValues("rating_deleted_total").Inc()

	return r, nil
}

func (rs *RatingService) publish(ctx context.Context, action string, r *domain.Rating) {
	rs.publisher.Publish(ctx, mq.NewEvent(action, r.ID.String(), rating.ToResponseRating(*r)))
}
