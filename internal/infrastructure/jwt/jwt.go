package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type Service struct {
	jwtSecret string
}

func New(jwtSecret string) *Service { return &Service{jwtSecret: jwtSecret} }

type (
	// Subject is what a token says about its bearer.
	Subject struct {
		UserID   string
		IsStaff  bool
		IsFarmer bool
	}
	Claims struct {
		UserID   string `json:"user_id"`
		IsStaff  bool   `json:"is_staff"`
		IsFarmer bool   `json:"is_farmer"`
		jwt.RegisteredClaims
	}
)

func (s *Service) GenerateJWT(sub Subject, expiresIn time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:   sub.UserID,
		IsStaff:  sub.IsStaff,
		IsFarmer: sub.IsFarmer,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sub.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiresIn)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.jwtSecret))
}

func (s *Service) ValidateToken(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.jwtSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, errors.New("invalid claims")
	}
	return claims, nil
}
