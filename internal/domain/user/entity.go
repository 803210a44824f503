package user

import (
	"time"

	"github.com/google/uuid"
)

type (
	UUID = uuid.UUID
	User struct {
		ID                UUID
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

	// CreateParams is the registration payload.
	CreateParams struct {
		Username    string `json:"username" validate:"required,utf8text,max=50"`
		Password    string `json:"password" validate:"required,min=8,max=50"`
		FirstName   string `json:"first_name" validate:"required,utf8text,max=50"`
		LastName    string `json:"last_name" validate:"required,utf8text,max=50"`
		PhoneNumber string `json:"phone_number" validate:"required,len=11,number"`
		Address     string `json:"address" validate:"required,utf8text,max=255"`
		IsFarmer    bool   `json:"is_farmer"`
	}

	// UpdateParams replaces the profile fields. Password is the current
	// password and is only checked when NewPassword is set.
	UpdateParams struct {
		Username    string `json:"username" validate:"required,utf8text,max=50"`
		Password    string `json:"password" validate:"required_with=NewPassword,max=50"`
		NewPassword string `json:"new_password" validate:"omitempty,min=8,max=50"`
		FirstName   string `json:"first_name" validate:"required,utf8text,max=50"`
		LastName    string `json:"last_name" validate:"required,utf8text,max=50"`
		PhoneNumber string `json:"phone_number" validate:"required,len=11,number"`
		Address     string `json:"address" validate:"required,utf8text,max=255"`
		IsFarmer    bool   `json:"is_farmer"`
	}
)
