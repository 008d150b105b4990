package postgres_test

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sercanumit/bootcamp-112/internal/platform/postgres"
	"github.com/sercanumit/bootcamp-112/internal/store"
	"github.com/stretchr/testify/assert"
)

func newPgError(code string) *pgconn.PgError {
	return &pgconn.PgError{
		Code:           code,
		Message:        "error message",
		TableName:      "spaced_repetition",
		ColumnName:     "topic",
		ConstraintName: "spaced_repetition_pkey",
	}
}

func TestMapError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		notFound error
		want     error
	}{
		{"no rows generic", sql.ErrNoRows, nil, store.ErrNotFound},
		{"no rows specific", sql.ErrNoRows, store.ErrSpacedRepetitionNotFound, store.ErrSpacedRepetitionNotFound},
		{"unique violation", newPgError("23505"), nil, store.ErrDuplicate},
		{"foreign key violation", newPgError("23503"), nil, store.ErrInvalidEntity},
		{"check violation", newPgError("23514"), nil, store.ErrInvalidEntity},
		{"not null violation", newPgError("23502"), nil, store.ErrInvalidEntity},
		{"serialization failure", newPgError("40001"), nil, store.ErrConcurrentUpdate},
		{"deadlock", newPgError("40P01"), nil, store.ErrConcurrentUpdate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := postgres.MapError(tt.err, tt.notFound)
			assert.ErrorIs(t, got, tt.want)
		})
	}

	assert.NoError(t, postgres.MapError(nil, nil))

	plain := errors.New("connection reset")
	assert.Same(t, plain, postgres.MapError(plain, nil), "unmapped errors pass through")

	unknownCode := newPgError("22001")
	assert.Same(t, error(unknownCode), postgres.MapError(unknownCode, nil))

	// The specific not-found error still matches the generic one.
	assert.ErrorIs(t, postgres.MapError(sql.ErrNoRows, store.ErrExamAttemptNotFound), store.ErrNotFound)
}

func TestMapErrorNamesViolation(t *testing.T) {
	t.Parallel()

	assert.Contains(t, postgres.MapError(newPgError("23505"), nil).Error(), "spaced_repetition_pkey")
	assert.Contains(t, postgres.MapError(newPgError("23502"), nil).Error(), "spaced_repetition.topic")
}
