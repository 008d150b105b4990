package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sercanumit/bootcamp-112/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-that-is-long-enough-for-testing"

func testService(t *testing.T, now func() time.Time) *hmacJWTService {
	t.Helper()
	svc, err := newJWTService(config.AuthConfig{JWTSecret: testSecret, TokenLifetimeMinutes: 60}, now)
	require.NoError(t, err)
	return svc
}

func TestGenerateToken(t *testing.T) {
	t.Parallel()

	fixedTime := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	svc := testService(t, func() time.Time { return fixedTime })
	userID := uuid.New()

	token, err := svc.GenerateToken(context.Background(), userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, userID.String(), claims.Subject)
	assert.Equal(t, fixedTime.Unix(), claims.IssuedAt.Unix())
	assert.Equal(t, fixedTime.Add(time.Hour).Unix(), claims.ExpiresAt.Unix())
	assert.NotEmpty(t, claims.ID)
}

func TestValidateToken(t *testing.T) {
	t.Parallel()

	issued := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	issuer := testService(t, func() time.Time { return issued })
	userID := uuid.New()
	token, err := issuer.GenerateToken(context.Background(), userID)
	require.NoError(t, err)

	other, err := newJWTService(config.AuthConfig{
		JWTSecret:            "wrong-secret-that-is-long-enough-for-testing",
		TokenLifetimeMinutes: 60,
	}, func() time.Time { return issued })
	require.NoError(t, err)

	tests := []struct {
		name    string
		svc     *hmacJWTService
		token   string
		wantErr error
	}{
		{"valid within lifetime", testService(t, func() time.Time { return issued.Add(30 * time.Minute) }), token, nil},
		{"valid within clock skew", testService(t, func() time.Time { return issued.Add(61 * time.Minute) }), token, nil},
		{"expired", testService(t, func() time.Time { return issued.Add(2 * time.Hour) }), token, ErrExpiredToken},
		{"wrong secret", other, token, ErrInvalidToken},
		{"malformed", issuer, "not-a-jwt", ErrInvalidToken},
		{"empty", issuer, "", ErrMissingToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			claims, err := tt.svc.ValidateToken(context.Background(), tt.token)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, claims)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, userID, claims.UserID)
		})
	}
}

func TestValidateTokenRejectsOtherAlgorithmsAndTypes(t *testing.T) {
	t.Parallel()

	now := time.Now()
	svc := testService(t, func() time.Time { return now })

	claims := jwtCustomClaims{
		UserID:    uuid.New(),
		TokenType: "refresh",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}
	refresh, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	_, err = svc.ValidateToken(context.Background(), refresh)
	assert.ErrorIs(t, err, ErrInvalidToken)

	claims.TokenType = tokenTypeAccess
	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	_, err = svc.ValidateToken(context.Background(), hs512)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestNewJWTServiceValidation(t *testing.T) {
	t.Parallel()

	_, err := NewJWTService(config.AuthConfig{JWTSecret: "short", TokenLifetimeMinutes: 60})
	assert.ErrorIs(t, err, ErrWeakSecret)

	_, err = NewJWTService(config.AuthConfig{JWTSecret: testSecret})
	assert.Error(t, err)

	svc, err := NewJWTService(config.AuthConfig{JWTSecret: testSecret, TokenLifetimeMinutes: 5})
	require.NoError(t, err)
	assert.NotNil(t, svc)
}
