package auth

import "errors"

var (
	// ErrInvalidToken covers malformed tokens, bad signatures and wrong claims.
	ErrInvalidToken = errors.New("invalid authentication token")

	ErrExpiredToken     = errors.New("authentication token has expired")
	ErrTokenNotYetValid = errors.New("authentication token not yet valid")
	ErrMissingToken     = errors.New("authentication token is missing")

	// ErrWeakSecret is returned at construction for secrets under 32 characters.
	ErrWeakSecret = errors.New("jwt secret must be at least 32 characters")
)
