package user

import (
	"time"

	"github.com/google/uuid"
)

type (
	// Request is the registration body.
	Request struct {
		Username    string `json:"username"`
		Password    string `json:"password"`
		FirstName   string `json:"first_name"`
		LastName    string `json:"last_name"`
		PhoneNumber string `json:"phone_number"`
		Address     string `json:"address"`
		IsFarmer    bool   `json:"is_farmer"`
	}
	UpdateRequest struct {
		Username    string `json:"username"`
		Password    string `json:"password"`
		NewPassword string `json:"new_password"`
		FirstName   string `json:"first_name"`
		LastName    string `json:"last_name"`
		PhoneNumber string `json:"phone_number"`
		Address     string `json:"address"`
		IsFarmer    bool   `json:"is_farmer"`
	}

	User struct {
		ID                uuid.UUID `json:"id"`
		Username          string    `json:"username"`
		FirstName         string    `json:"first_name"`
		LastName          string    `json:"last_name"`
		PhoneNumber       string    `json:"phone_number"`
		Address           string    `json:"address"`
		ProfilePictureURL string    `json:"profile_picture_url"`
		IsStaff           bool      `json:"is_staff"`
		IsFarmer          bool      `json:"is_farmer"`
		CreatedAt         time.Time `json:"created_at"`
		UpdatedAt         time.Time `json:"updated_at"`
	}
	Users        []User
	ResponseData struct {
		Data Users `json:"data"`
	}
)
