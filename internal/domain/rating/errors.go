package rating

import "marketplace-api/internal/domain/errs"

var (
	ErrNotFound     = errs.New(errs.ErrNotFound, "rating not found")
	ErrAlreadyRated = errs.New(errs.ErrConflict, "user has already rated this product")
	ErrUnknownUser  = errs.New(errs.ErrNotFound, "user not found")
)
