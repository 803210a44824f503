package rating

import (
	"time"

	"github.com/google/uuid"
)

type (
	CreateRequest struct {
		ProductID uuid.UUID `json:"product_id"`
		UserID    uuid.UUID `json:"user_id"`
		Score     int       `json:"score"`
		Comment   string    `json:"comment"`
	}
	UpdateRequest struct {
		Score   int    `json:"score"`
		Comment string `json:"comment"`
	}

	Rating struct {
		ID        uuid.UUID `json:"id"`
		ProductID uuid.UUID `json:"product_id"`
		UserID    uuid.UUID `json:"user_id"`
		Username  string    `json:"username"`
		Score     int       `json:"score"`
		Comment   string    `json:"comment"`
		CreatedAt time.Time `json:"created_at"`
		UpdatedAt time.Time `json:"updated_at"`
	}
	Ratings      []Rating
	ResponseData struct {
		Data Ratings `json:"data"`
	}
)
