package user

import "marketplace-api/internal/domain/errs"

var (
	ErrNotFound           = errs.New(errs.ErrNotFound, "user not found")
	ErrUsernameTaken      = errs.New(errs.ErrConflict, "username already exists")
	ErrInvalidCredentials = errs.New(errs.ErrUnauthorized, "invalid credentials")
)
