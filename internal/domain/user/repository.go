package user

import (
	"context"
)

// Repository returns (nil, nil) when the requested user does not exist.
type Repository interface {
	FetchUsers(ctx context.Context) (Users, error)
	FetchUserByID(ctx context.Context, id UUID) (*User, error)
	FetchUserByUsername(ctx context.Context, username string) (*User, error)
	CreateUser(ctx context.Context, req User) (*User, error)
	UpdateUser(ctx context.Context, req User) (*User, error)
	UpdateProfilePicture(ctx context.Context, id UUID, url string) (*User, error)
	DeleteUser(ctx context.Context, id UUID) (*User, error)
}
