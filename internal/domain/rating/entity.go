package rating

import (
	"time"

	"github.com/google/uuid"
)

const (
	MinScore = 1
	MaxScore = 5
)

type (
	UUID   = uuid.UUID
	Rating struct {
		ID        UUID
		ProductID UUID
		UserID    UUID
		// Username of the submitting user, resolved on read.
		Username  string
		Score     int
		Comment   string
		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Ratings []*Rating

	CreateParams struct {
		ProductID UUID   `json:"product_id" validate:"required"`
		UserID    UUID   `json:"user_id" validate:"required"`
		Score     int    `json:"score" validate:"min=1,max=5"`
		Comment   string `json:"comment" validate:"utf8text,max=1000"`
	}

	// UpdateParams only covers the content of a rating; product and owner
	// never change after submission.
	UpdateParams struct {
		Score   int    `json:"score" validate:"min=1,max=5"`
		Comment string `json:"comment" validate:"utf8text,max=1000"`
	}
)
