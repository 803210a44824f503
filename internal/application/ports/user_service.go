package ports

import (
	"context"
	"mime/multipart"

	"marketplace-api/internal/domain/user"
)

type UserService interface {
	FindUsers(ctx context.Context) (user.Users, error)
	FindUserByID(ctx context.Context, id user.UUID) (*user.User, error)
	FindUserByUsername(ctx context.Context, username string) (*user.User, error)
	CreateUser(ctx context.Context, p user.CreateParams) (*user.User, error)
	UpdateUser(ctx context.Context, id user.UUID, p user.UpdateParams) (*user.User, error)
	UpdateProfilePicture(ctx context.Context, id user.UUID, file *multipart.FileHeader) (*user.User, error)
	DeleteUser(ctx context.Context, id user.UUID) (*user.User, error)
	Authenticate(ctx context.Context, username, password string) (string, error)
}
