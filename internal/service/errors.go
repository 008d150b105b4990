package service

import "errors"

var (
	// ErrNotOwned means the exam or schedule belongs to another user.
	// The API answers 403.
	ErrNotOwned = errors.New("resource is owned by another user")
)
