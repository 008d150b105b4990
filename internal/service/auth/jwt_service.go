package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// JWTService issues and checks the bearer tokens that scope exam and review
// endpoints to one user.
type JWTService interface {
	GenerateToken(ctx context.Context, userID uuid.UUID) (string, error)

	// ValidateToken returns ErrMissingToken, ErrExpiredToken,
	// ErrTokenNotYetValid or ErrInvalidToken on failure.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims is what the API keeps from a validated token.
type Claims struct {
	UserID    uuid.UUID `json:"uid"`
	Subject   string    `json:"sub"`
	IssuedAt  time.Time `json:"iat"`
	ExpiresAt time.Time `json:"exp"`
	ID        string    `json:"jti"`
}
