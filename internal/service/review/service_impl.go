package review

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/sercanumit/bootcamp-112/internal/domain"
	"github.com/sercanumit/bootcamp-112/internal/domain/srs"
	"github.com/sercanumit/bootcamp-112/internal/platform/logger"
	"github.com/sercanumit/bootcamp-112/internal/store"
)

// Verify interface compliance at compile time
var _ Service = (*serviceImpl)(nil)

type serviceImpl struct {
	states     store.SpacedRepetitionStore
	tx         store.Transactor
	srsService srs.Service
	now        func() time.Time
	logger     *slog.Logger
}

// NewService creates a review Service.
func NewService(
	states store.SpacedRepetitionStore,
	tx store.Transactor,
	srsService srs.Service,
	logger *slog.Logger,
) Service {
	if states == nil {
		panic("states cannot be nil")
	}
	if tx == nil {
		panic("tx cannot be nil")
	}
	if srsService == nil {
		panic("srsService cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &serviceImpl{
		states:     states,
		tx:         tx,
		srsService: srsService,
		now:        func() time.Time { return time.Now().UTC() },
		logger:     logger.With(slog.String("component", "review_service")),
	}
}

// SubmitReview implements Service.SubmitReview.
func (s *serviceImpl) SubmitReview(
	ctx context.Context,
	userID uuid.UUID,
	topic string,
	subject string,
	quality int,
) (*domain.SpacedRepetitionState, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if topic == "" {
		return nil, domain.NewValidationError("topic", "cannot be empty", nil)
	}
	if err := s.srsService.ValidateQuality(quality); err != nil {
		return nil, err
	}

	log.Debug("processing topic review",
		slog.String("user_id", userID.String()),
		slog.String("topic", topic),
		slog.Int("quality", quality))

	var updated *domain.SpacedRepetitionState
	err := s.tx.RunInTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		states := s.states.WithTx(tx)

		state, err := states.GetForUpdate(ctx, userID, topic)
		if errors.Is(err, store.ErrNotFound) {
			if subject == "" {
				return domain.NewValidationError("subject", "cannot be empty", ErrSubjectRequired)
			}
			initial, initErr := domain.NewSpacedRepetitionState(userID, topic, subject)
			if initErr != nil {
				return initErr
			}
			if createErr := states.CreateIfAbsent(ctx, initial); createErr != nil {
				return NewSubmitReviewError("failed to create review state", createErr)
			}
			state, err = states.GetForUpdate(ctx, userID, topic)
		}
		if err != nil {
			return NewSubmitReviewError("failed to load review state", err)
		}

		next, err := s.srsService.SubmitReview(state, quality, s.now())
		if err != nil {
			return err
		}

		if err := states.Upsert(ctx, next); err != nil {
			return NewSubmitReviewError("failed to save review state", err)
		}

		updated = next
		return nil
	})
	if err != nil {
		var verr *domain.ValidationError
		var rerr *domain.RangeError
		if errors.As(err, &verr) || errors.As(err, &rerr) {
			return nil, err
		}

		log.Error("failed to submit review",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()),
			slog.String("topic", topic))
		var serr *ServiceError
		if errors.As(err, &serr) {
			return nil, err
		}
		return nil, NewSubmitReviewError("transaction failed", err)
	}

	log.Debug("topic review recorded",
		slog.String("user_id", userID.String()),
		slog.String("topic", topic),
		slog.Int("interval_days", updated.IntervalDays),
		slog.Float64("ease_factor", updated.EaseFactor),
		slog.Int("repetition_count", updated.RepetitionCount))

	return updated, nil
}

// DueReviews implements Service.DueReviews.
func (s *serviceImpl) DueReviews(ctx context.Context, userID uuid.UUID) ([]*domain.SpacedRepetitionState, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	now := s.now()
	states, err := s.states.ListDue(ctx, userID, now)
	if err != nil {
		log.Error("failed to list due reviews",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, NewDueReviewsError("failed to list due reviews", err)
	}

	due := make([]*domain.SpacedRepetitionState, 0, len(states))
	for _, state := range states {
		if s.srsService.IsDue(state, now) {
			due = append(due, state)
		}
	}

	log.Debug("listed due reviews",
		slog.String("user_id", userID.String()),
		slog.Int("count", len(due)))
	return due, nil
}
