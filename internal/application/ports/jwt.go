package ports

import (
	"marketplace-api/internal/domain/user"
)

type Auth interface {
	HashPassword(password string) (string, error)
	VerifyPassword(u *user.User, password string) error
	GenerateToken(u *user.User, requestPassword string) (string, error)
}
