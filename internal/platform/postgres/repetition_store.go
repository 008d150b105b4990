package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/sercanumit/bootcamp-112/internal/domain"
	"github.com/sercanumit/bootcamp-112/internal/platform/logger"
	"github.com/sercanumit/bootcamp-112/internal/store"
)

const repetitionColumns = `
	user_id, topic, subject, difficulty, interval_days, ease_factor,
	repetition_count, correct_count, wrong_count, success_rate,
	last_reviewed, next_review, is_active, created_at, updated_at`

// PostgresSpacedRepetitionStore implements store.SpacedRepetitionStore
// using a PostgreSQL database as the storage backend.
type PostgresSpacedRepetitionStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresSpacedRepetitionStore creates a new store on a database connection
// or transaction that is managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresSpacedRepetitionStore(db store.DBTX, logger *slog.Logger) *PostgresSpacedRepetitionStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresSpacedRepetitionStore{
		db:     db,
		logger: logger.With(slog.String("component", "spaced_repetition_store")),
	}
}

// Ensure PostgresSpacedRepetitionStore implements store.SpacedRepetitionStore interface
var _ store.SpacedRepetitionStore = (*PostgresSpacedRepetitionStore)(nil)

// Get implements store.SpacedRepetitionStore.Get
func (s *PostgresSpacedRepetitionStore) Get(
	ctx context.Context,
	userID uuid.UUID,
	topic string,
) (*domain.SpacedRepetitionState, error) {
	return s.get(ctx, userID, topic, false)
}

// GetForUpdate implements store.SpacedRepetitionStore.GetForUpdate
func (s *PostgresSpacedRepetitionStore) GetForUpdate(
	ctx context.Context,
	userID uuid.UUID,
	topic string,
) (*domain.SpacedRepetitionState, error) {
	return s.get(ctx, userID, topic, true)
}

func (s *PostgresSpacedRepetitionStore) get(
	ctx context.Context,
	userID uuid.UUID,
	topic string,
	lock bool,
) (*domain.SpacedRepetitionState, error) {
	log := s.log(ctx)

	query := `SELECT` + repetitionColumns + `
		FROM spaced_repetition
		WHERE user_id = $1 AND topic = $2`
	if lock {
		query += ` FOR UPDATE`
	}

	state, err := scanState(s.db.QueryRowContext(ctx, query, userID, topic))
	if err != nil {
		mapped := MapError(err, store.ErrSpacedRepetitionNotFound)
		if !store.IsNotFoundError(mapped) {
			log.Error("failed to get spaced repetition state",
				slog.String("user_id", userID.String()),
				slog.String("topic", topic),
				slog.Bool("for_update", lock),
				slog.String("error", err.Error()))
		}
		return nil, mapped
	}

	return state, nil
}

// CreateIfAbsent implements store.SpacedRepetitionStore.CreateIfAbsent
func (s *PostgresSpacedRepetitionStore) CreateIfAbsent(ctx context.Context, state *domain.SpacedRepetitionState) error {
	log := s.log(ctx)

	if err := state.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO spaced_repetition (` + repetitionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		ON CONFLICT (user_id, topic) DO NOTHING`

	if _, err := s.db.ExecContext(ctx, query, stateArgs(state)...); err != nil {
		log.Error("failed to create spaced repetition state",
			slog.String("user_id", state.UserID.String()),
			slog.String("topic", state.Topic),
			slog.String("error", err.Error()))
		return store.NewStoreError(store.EntitySpacedRepetition, "create", "write failed", MapError(err, nil))
	}

	return nil
}

// Upsert implements store.SpacedRepetitionStore.Upsert
func (s *PostgresSpacedRepetitionStore) Upsert(ctx context.Context, state *domain.SpacedRepetitionState) error {
	log := s.log(ctx)

	if err := state.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO spaced_repetition (` + repetitionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		ON CONFLICT (user_id, topic) DO UPDATE SET
			subject = EXCLUDED.subject,
			difficulty = EXCLUDED.difficulty,
			interval_days = EXCLUDED.interval_days,
			ease_factor = EXCLUDED.ease_factor,
			repetition_count = EXCLUDED.repetition_count,
			correct_count = EXCLUDED.correct_count,
			wrong_count = EXCLUDED.wrong_count,
			success_rate = EXCLUDED.success_rate,
			last_reviewed = EXCLUDED.last_reviewed,
			next_review = EXCLUDED.next_review,
			is_active = EXCLUDED.is_active,
			updated_at = EXCLUDED.updated_at`

	if _, err := s.db.ExecContext(ctx, query, stateArgs(state)...); err != nil {
		log.Error("failed to upsert spaced repetition state",
			slog.String("user_id", state.UserID.String()),
			slog.String("topic", state.Topic),
			slog.String("error", err.Error()))
		return store.NewStoreError(store.EntitySpacedRepetition, "upsert", "write failed", MapError(err, nil))
	}

	log.Debug("spaced repetition state saved",
		slog.String("user_id", state.UserID.String()),
		slog.String("topic", state.Topic),
		slog.Int("interval_days", state.IntervalDays))
	return nil
}

// ListDue implements store.SpacedRepetitionStore.ListDue
func (s *PostgresSpacedRepetitionStore) ListDue(
	ctx context.Context,
	userID uuid.UUID,
	now time.Time,
) ([]*domain.SpacedRepetitionState, error) {
	log := s.log(ctx)

	query := `SELECT` + repetitionColumns + `
		FROM spaced_repetition
		WHERE user_id = $1
			AND is_active
			AND (next_review IS NULL OR next_review <= $2)
		ORDER BY next_review ASC NULLS FIRST, topic ASC`

	rows, err := s.db.QueryContext(ctx, query, userID, now.UTC())
	if err != nil {
		log.Error("failed to query due reviews",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()))
		return nil, store.NewStoreError(store.EntitySpacedRepetition, "list_due", "query failed", MapError(err, nil))
	}
	defer func() { _ = rows.Close() }()

	var states []*domain.SpacedRepetitionState
	for rows.Next() {
		state, err := scanState(rows)
		if err != nil {
			log.Error("failed to scan spaced repetition row", slog.String("error", err.Error()))
			return nil, fmt.Errorf("failed to scan spaced repetition row: %w", err)
		}
		states = append(states, state)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating spaced repetition rows: %w", err)
	}

	return states, nil
}

// WithTx implements store.SpacedRepetitionStore.WithTx
func (s *PostgresSpacedRepetitionStore) WithTx(tx *sql.Tx) store.SpacedRepetitionStore {
	return &PostgresSpacedRepetitionStore{
		db:     tx,
		logger: s.logger,
	}
}

func (s *PostgresSpacedRepetitionStore) log(ctx context.Context) *slog.Logger {
	if l := logger.FromContext(ctx); l != nil {
		return l.With(slog.String("component", "spaced_repetition_store"))
	}
	return s.logger
}

// stateArgs returns the column values in repetitionColumns order.
func stateArgs(state *domain.SpacedRepetitionState) []any {
	return []any{
		state.UserID,
		state.Topic,
		state.Subject,
		string(state.Difficulty),
		state.IntervalDays,
		state.EaseFactor,
		state.RepetitionCount,
		state.CorrectCount,
		state.WrongCount,
		state.SuccessRate,
		nullTime(state.LastReviewed),
		nullTime(state.NextReview),
		state.IsActive,
		state.CreatedAt.UTC(),
		state.UpdatedAt.UTC(),
	}
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanState(row rowScanner) (*domain.SpacedRepetitionState, error) {
	var (
		state        domain.SpacedRepetitionState
		difficulty   string
		lastReviewed sql.NullTime
		nextReview   sql.NullTime
	)

	err := row.Scan(
		&state.UserID,
		&state.Topic,
		&state.Subject,
		&difficulty,
		&state.IntervalDays,
		&state.EaseFactor,
		&state.RepetitionCount,
		&state.CorrectCount,
		&state.WrongCount,
		&state.SuccessRate,
		&lastReviewed,
		&nextReview,
		&state.IsActive,
		&state.CreatedAt,
		&state.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	state.Difficulty = domain.Difficulty(difficulty)
	state.LastReviewed = timePtr(lastReviewed)
	state.NextReview = timePtr(nextReview)
	state.CreatedAt = state.CreatedAt.UTC()
	state.UpdatedAt = state.UpdatedAt.UTC()

	return &state, nil
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t.UTC(), Valid: true}
}

func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time.UTC()
	return &v
}
