package rating

import (
	"time"

	"github.com/google/uuid"
)

type (
	Rating struct {
		ID        uuid.UUID
		ProductID uuid.UUID
		UserID    uuid.UUID
		Username  string
		Score     int
		Comment   string
		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Ratings []*Rating
)
