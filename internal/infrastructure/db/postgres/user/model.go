package user

import (
	"time"

	"github.com/google/uuid"
)

type (
	User struct {
		ID                uuid.UUID
		Username          string
		FirstName         string
		LastName          string
		PhoneNumber       string
		Address           string
		ProfilePictureURL string
		IsStaff           bool
		IsFarmer          bool
		PasswordHash      string

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Users []*User
)
