package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/sercanumit/bootcamp-112/internal/domain"
	"github.com/sercanumit/bootcamp-112/internal/platform/logger"
	"github.com/sercanumit/bootcamp-112/internal/store"
)

// PostgresExamAttemptStore implements store.ExamAttemptStore using PostgreSQL.
// Question attempts live in their own table keyed by (exam_id, position).
type PostgresExamAttemptStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresExamAttemptStore creates a new exam store. If logger is nil, a
// default logger will be used.
func NewPostgresExamAttemptStore(db store.DBTX, logger *slog.Logger) *PostgresExamAttemptStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresExamAttemptStore{
		db:     db,
		logger: logger.With(slog.String("component", "exam_attempt_store")),
	}
}

// Ensure PostgresExamAttemptStore implements store.ExamAttemptStore interface
var _ store.ExamAttemptStore = (*PostgresExamAttemptStore)(nil)

// Create implements store.ExamAttemptStore.Create. Callers that need the exam
// and its attempts to be written atomically must pass a transaction via WithTx.
func (s *PostgresExamAttemptStore) Create(ctx context.Context, exam *domain.ExamAttempt) error {
	log := s.log(ctx)

	if err := exam.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO exam_attempts (id, user_id, exam_name, exam_type, taken_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		exam.ID,
		exam.UserID,
		exam.ExamName,
		string(exam.ExamType),
		exam.TakenAt.UTC(),
		exam.CreatedAt.UTC(),
	)
	if err != nil {
		log.Error("failed to insert exam attempt",
			slog.String("exam_id", exam.ID.String()),
			slog.String("error", err.Error()))
		return store.NewStoreError(store.EntityExamAttempt, "create", "insert failed", MapError(err, nil))
	}

	for i, a := range exam.Attempts {
		_, err := s.db.ExecContext(ctx, `
			INSERT INTO question_attempts
				(exam_id, position, question_id, topic, subject, user_answer, correct_answer, is_blank)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			exam.ID, i, a.QuestionID, a.Topic, a.Subject, a.UserAnswer, a.CorrectAnswer, a.IsBlank,
		)
		if err != nil {
			log.Error("failed to insert question attempt",
				slog.String("exam_id", exam.ID.String()),
				slog.Int("position", i),
				slog.String("error", err.Error()))
			return store.NewStoreError(store.EntityQuestionAttempt, "create", "insert failed", MapError(err, nil))
		}
	}

	log.Debug("exam attempt stored",
		slog.String("exam_id", exam.ID.String()),
		slog.Int("attempt_count", len(exam.Attempts)))
	return nil
}

// Get implements store.ExamAttemptStore.Get
func (s *PostgresExamAttemptStore) Get(ctx context.Context, id uuid.UUID) (*domain.ExamAttempt, error) {
	log := s.log(ctx)

	var (
		exam     domain.ExamAttempt
		examType string
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT id, user_id, exam_name, exam_type, taken_at, created_at
		FROM exam_attempts
		WHERE id = $1`, id,
	).Scan(&exam.ID, &exam.UserID, &exam.ExamName, &examType, &exam.TakenAt, &exam.CreatedAt)
	if err != nil {
		mapped := MapError(err, store.ErrExamAttemptNotFound)
		if !store.IsNotFoundError(mapped) {
			log.Error("failed to get exam attempt",
				slog.String("exam_id", id.String()),
				slog.String("error", err.Error()))
		}
		return nil, mapped
	}
	exam.ExamType = domain.ExamType(examType)
	exam.TakenAt = exam.TakenAt.UTC()
	exam.CreatedAt = exam.CreatedAt.UTC()

	rows, err := s.db.QueryContext(ctx, `
		SELECT question_id, topic, subject, user_answer, correct_answer, is_blank
		FROM question_attempts
		WHERE exam_id = $1
		ORDER BY position ASC`, id,
	)
	if err != nil {
		log.Error("failed to query question attempts",
			slog.String("exam_id", id.String()),
			slog.String("error", err.Error()))
		return nil, store.NewStoreError(store.EntityQuestionAttempt, "get", "query failed", MapError(err, nil))
	}
	defer func() { _ = rows.Close() }()

	exam.Attempts = []domain.QuestionAttempt{}
	for rows.Next() {
		var a domain.QuestionAttempt
		if err := rows.Scan(&a.QuestionID, &a.Topic, &a.Subject, &a.UserAnswer, &a.CorrectAnswer, &a.IsBlank); err != nil {
			return nil, fmt.Errorf("failed to scan question attempt row: %w", err)
		}
		exam.Attempts = append(exam.Attempts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating question attempt rows: %w", err)
	}

	return &exam, nil
}

// ListByUser implements store.ExamAttemptStore.ListByUser
func (s *PostgresExamAttemptStore) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
	limit int,
) ([]*domain.ExamAttempt, error) {
	log := s.log(ctx)

	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, exam_name, exam_type, taken_at, created_at
		FROM exam_attempts
		WHERE user_id = $1
		ORDER BY taken_at DESC, created_at DESC
		LIMIT $2`, userID, limit,
	)
	if err != nil {
		log.Error("failed to list exam attempts",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()))
		return nil, store.NewStoreError(store.EntityExamAttempt, "list", "query failed", MapError(err, nil))
	}
	defer func() { _ = rows.Close() }()

	exams := []*domain.ExamAttempt{}
	for rows.Next() {
		var (
			exam     domain.ExamAttempt
			examType string
		)
		if err := rows.Scan(&exam.ID, &exam.UserID, &exam.ExamName, &examType, &exam.TakenAt, &exam.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan exam attempt row: %w", err)
		}
		exam.ExamType = domain.ExamType(examType)
		exam.TakenAt = exam.TakenAt.UTC()
		exam.CreatedAt = exam.CreatedAt.UTC()
		exams = append(exams, &exam)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating exam attempt rows: %w", err)
	}

	return exams, nil
}

// WithTx implements store.ExamAttemptStore.WithTx
func (s *PostgresExamAttemptStore) WithTx(tx *sql.Tx) store.ExamAttemptStore {
	return &PostgresExamAttemptStore{
		db:     tx,
		logger: s.logger,
	}
}

func (s *PostgresExamAttemptStore) log(ctx context.Context) *slog.Logger {
	if l := logger.FromContext(ctx); l != nil {
		return l.With(slog.String("component", "exam_attempt_store"))
	}
	return s.logger
}
