package services

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"marketplace-api/internal/application/ports"
	"marketplace-api/internal/domain/errs"
	"marketplace-api/internal/domain/user"
	"marketplace-api/internal/infrastructure/jwt"
)

var ErrFailedToGenerateToken = errors.New("failed to generate token")

type AuthService struct {
	jwtService *jwt.Service
	tokenTTL   time.Duration
	cost       int
	// compared against when the user does not exist, so both failure
	// paths cost one bcrypt comparison
	dummyHash []byte
}

func NewAuthService(
	jwtService *jwt.Service,
	tokenTTL time.Duration,
	cost int,
) ports.Auth {
	dummy, err := bcrypt.GenerateFromPassword([]byte("marketplace-api/dummy"), cost)
	if err != nil {
		panic(fmt.Sprintf("auth: bcrypt cost %d: %v", cost, err))
	}

	return &AuthService{
		jwtService: jwtService,
		tokenTTL:   tokenTTL,
		cost:       cost,
		dummyHash:  dummy,
	}
}

func (as *AuthService) HashPassword(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), as.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", errs.Invalid("password", "password must be at most 72 bytes")
		}
		return "", fmt.Errorf("hash password: %w", err)
	}

	return string(h), nil
}

// VerifyPassword accepts a nil user and still spends a comparison on it.
func (as *AuthService) VerifyPassword(u *user.User, password string) error {
	hash := as.dummyHash
	if u != nil {
		hash = []byte(u.PasswordHash)
	}

	if err := bcrypt.CompareHashAndPassword(hash, []byte(password)); err != nil || u == nil {
		return user.ErrInvalidCredentials
	}

	return nil
}

func (as *AuthService) GenerateToken(u *user.User, requestPassword string) (string, error) {
	if err := as.VerifyPassword(u, requestPassword); err != nil {
		return "", err
	}

	token, err := as.jwtService.GenerateJWT(jwt.Subject{
		UserID:   u.ID.String(),
		IsStaff:  u.IsStaff,
		IsFarmer: u.IsFarmer,
	}, as.tokenTTL)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFailedToGenerateToken, err)
	}

	return token, nil
}
