package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/sercanumit/bootcamp-112/internal/domain"
)

// ExamAttemptStore persists exam sittings together with their question attempts.
type ExamAttemptStore interface {
	// Create saves the exam and all its attempts, preserving attempt order.
	// Returns validation errors from the domain ExamAttempt if data is invalid.
	// Returns ErrDuplicate if an exam with the same ID exists.
	Create(ctx context.Context, exam *domain.ExamAttempt) error

	// Get retrieves an exam with its attempts.
	// Returns ErrExamAttemptNotFound if the exam does not exist.
	Get(ctx context.Context, id uuid.UUID) (*domain.ExamAttempt, error)

	// ListByUser returns the user's exams, newest first, without their attempts.
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*domain.ExamAttempt, error)

	// WithTx returns a store instance that uses the provided transaction.
	WithTx(tx *sql.Tx) ExamAttemptStore
}
