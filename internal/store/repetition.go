package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/sercanumit/bootcamp-112/internal/domain"
)

// SpacedRepetitionStore persists per-user, per-topic review state.
// A state is identified by the (user ID, topic) pair.
type SpacedRepetitionStore interface {
	// Get retrieves the state for the user and topic.
	// Returns ErrSpacedRepetitionNotFound if none exists.
	// This method does NOT lock the row.
	Get(ctx context.Context, userID uuid.UUID, topic string) (*domain.SpacedRepetitionState, error)

	// GetForUpdate retrieves the state with a row-level lock using SELECT FOR UPDATE.
	// It must be called within a transaction (see WithTx); the lock is held
	// until the transaction ends.
	// Returns ErrSpacedRepetitionNotFound if none exists.
	GetForUpdate(ctx context.Context, userID uuid.UUID, topic string) (*domain.SpacedRepetitionState, error)

	// CreateIfAbsent inserts the state unless one already exists for the same
	// user and topic, in which case it does nothing. It lets concurrent first
	// reviews converge on a single row that GetForUpdate can then lock.
	CreateIfAbsent(ctx context.Context, state *domain.SpacedRepetitionState) error

	// Upsert inserts the state or replaces the stored state for the same user and topic.
	// Returns validation errors from the domain state if data is invalid.
	Upsert(ctx context.Context, state *domain.SpacedRepetitionState) error

	// ListDue returns the user's active states whose next review is unset or
	// not after now, ordered by next review with unset first.
	ListDue(ctx context.Context, userID uuid.UUID, now time.Time) ([]*domain.SpacedRepetitionState, error)

	// WithTx returns a store instance that uses the provided transaction.
	WithTx(tx *sql.Tx) SpacedRepetitionStore
}
