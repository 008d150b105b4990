package performance

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/sercanumit/bootcamp-112/internal/domain"
	"github.com/sercanumit/bootcamp-112/internal/domain/analysis"
	"github.com/sercanumit/bootcamp-112/internal/platform/logger"
	"github.com/sercanumit/bootcamp-112/internal/service"
	"github.com/sercanumit/bootcamp-112/internal/store"
	"golang.org/x/sync/errgroup"
)

// Verify interface compliance at compile time
var _ Service = (*serviceImpl)(nil)

type serviceImpl struct {
	exams         store.ExamAttemptStore
	tx            store.Transactor
	analyzer      *analysis.Analyzer
	coach         Coach
	topicsPerWeek int
	now           func() time.Time
	logger        *slog.Logger
}

// NewService creates a performance Service. A nil coach uses StaticCoach and
// a topicsPerWeek below 1 uses analysis.DefaultTopicsPerWeek.
func NewService(
	exams store.ExamAttemptStore,
	tx store.Transactor,
	analyzer *analysis.Analyzer,
	coach Coach,
	topicsPerWeek int,
	logger *slog.Logger,
) Service {
	if exams == nil {
		panic("exams cannot be nil")
	}
	if tx == nil {
		panic("tx cannot be nil")
	}
	if analyzer == nil {
		panic("analyzer cannot be nil")
	}
	if coach == nil {
		coach = StaticCoach{}
	}
	if topicsPerWeek < 1 {
		topicsPerWeek = analysis.DefaultTopicsPerWeek
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &serviceImpl{
		exams:         exams,
		tx:            tx,
		analyzer:      analyzer,
		coach:         coach,
		topicsPerWeek: topicsPerWeek,
		now:           func() time.Time { return time.Now().UTC() },
		logger:        logger.With(slog.String("component", "performance_service")),
	}
}

// RecordExam implements Service.RecordExam.
func (s *serviceImpl) RecordExam(
	ctx context.Context,
	userID uuid.UUID,
	name string,
	examType domain.ExamType,
	takenAt time.Time,
	attempts []domain.QuestionAttempt,
) (*domain.ExamAttempt, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if takenAt.IsZero() {
		takenAt = s.now()
	}

	exam, err := domain.NewExamAttempt(userID, name, examType, takenAt, attempts)
	if err != nil {
		log.Warn("invalid exam submitted",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()))
		return nil, err
	}

	err = s.tx.RunInTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		return s.exams.WithTx(tx).Create(ctx, exam)
	})
	if err != nil {
		log.Error("failed to store exam",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()))
		return nil, NewServiceError("record_exam", "failed to store exam", err)
	}

	log.Info("exam recorded",
		slog.String("user_id", userID.String()),
		slog.String("exam_id", exam.ID.String()),
		slog.Int("attempt_count", len(exam.Attempts)))
	return exam, nil
}

// ListExams implements Service.ListExams.
func (s *serviceImpl) ListExams(ctx context.Context, userID uuid.UUID, limit int) ([]*domain.ExamAttempt, error) {
	exams, err := s.exams.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, NewServiceError("list_exams", "failed to list exams", err)
	}
	if exams == nil {
		exams = []*domain.ExamAttempt{}
	}
	return exams, nil
}

// AnalyzeExam implements Service.AnalyzeExam.
func (s *serviceImpl) AnalyzeExam(
	ctx context.Context,
	userID, examID uuid.UUID,
	topN int,
) (*analysis.Result, error) {
	exam, err := s.loadOwned(ctx, userID, examID)
	if err != nil {
		return nil, s.wrap("analyze_exam", err)
	}

	result, err := s.analyzer.Analyze(exam.Attempts, topN)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ExamRoadmap implements Service.ExamRoadmap.
func (s *serviceImpl) ExamRoadmap(
	ctx context.Context,
	userID, examID uuid.UUID,
	topicsPerWeek int,
) (*RoadmapReport, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if topicsPerWeek == 0 {
		topicsPerWeek = s.topicsPerWeek
	}

	exam, err := s.loadOwned(ctx, userID, examID)
	if err != nil {
		return nil, s.wrap("exam_roadmap", err)
	}

	result, err := s.analyzer.Analyze(exam.Attempts, 0)
	if err != nil {
		return nil, err
	}

	roadmap, err := s.analyzer.GenerateRoadmap(result.WeakTopics, topicsPerWeek)
	if err != nil {
		return nil, err
	}

	report := &RoadmapReport{
		ExamID:          exam.ID,
		Analysis:        result,
		Roadmap:         roadmap,
		NarrativeSource: NarrativeSourceLLM,
	}
	if _, static := s.coach.(StaticCoach); static {
		report.NarrativeSource = NarrativeSourceStatic
	}

	narrative, err := s.coach.Narrate(ctx, result, roadmap)
	if err != nil {
		// The roadmap is still useful without the model's narrative.
		log.Warn("coach failed, using static narrative",
			slog.String("exam_id", examID.String()),
			slog.String("error", err.Error()))
		narrative = StaticCoach{}.Summarize(result, roadmap)
		report.NarrativeSource = NarrativeSourceStatic
	}
	report.Narrative = narrative

	return report, nil
}

// CompareExams implements Service.CompareExams.
func (s *serviceImpl) CompareExams(
	ctx context.Context,
	userID, previousID, currentID uuid.UUID,
) (*analysis.ProgressResult, error) {
	var previous, current *domain.ExamAttempt

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		previous, err = s.loadOwned(gctx, userID, previousID)
		return err
	})
	g.Go(func() error {
		var err error
		current, err = s.loadOwned(gctx, userID, currentID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, s.wrap("compare_exams", err)
	}

	return s.analyzer.Compare(previous.Attempts, current.Attempts)
}

// loadOwned fetches an exam and checks that userID owns it.
func (s *serviceImpl) loadOwned(ctx context.Context, userID, examID uuid.UUID) (*domain.ExamAttempt, error) {
	exam, err := s.exams.Get(ctx, examID)
	if err != nil {
		return nil, err
	}
	if exam.UserID != userID {
		logger.FromContextOrDefault(ctx, s.logger).Warn("exam access denied",
			slog.String("user_id", userID.String()),
			slog.String("exam_id", examID.String()))
		return nil, service.ErrNotOwned
	}
	return exam, nil
}

// wrap passes not-found and ownership errors through so callers can map them,
// and wraps everything else in a ServiceError.
func (s *serviceImpl) wrap(operation string, err error) error {
	if errors.Is(err, store.ErrNotFound) || errors.Is(err, service.ErrNotOwned) {
		return err
	}
	return NewServiceError(operation, "failed to load exam", err)
}
