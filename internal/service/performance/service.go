package performance

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sercanumit/bootcamp-112/internal/domain"
	"github.com/sercanumit/bootcamp-112/internal/domain/analysis"
)

// Service records exam sittings and analyzes them on demand.
type Service interface {
	// RecordExam validates and stores an exam sitting with its attempts.
	RecordExam(
		ctx context.Context,
		userID uuid.UUID,
		name string,
		examType domain.ExamType,
		takenAt time.Time,
		attempts []domain.QuestionAttempt,
	) (*domain.ExamAttempt, error)

	// ListExams returns the user's exams, newest first, without attempts.
	ListExams(ctx context.Context, userID uuid.UUID, limit int) ([]*domain.ExamAttempt, error)

	// AnalyzeExam analyzes a stored exam owned by userID. A topN of zero or
	// less uses the analyzer default.
	AnalyzeExam(ctx context.Context, userID, examID uuid.UUID, topN int) (*analysis.Result, error)

	// ExamRoadmap analyzes a stored exam and builds its study roadmap with a
	// coaching narrative. A topicsPerWeek of zero uses the configured default.
	ExamRoadmap(ctx context.Context, userID, examID uuid.UUID, topicsPerWeek int) (*RoadmapReport, error)

	// CompareExams reports the progress from a previous exam to a current one.
	// Both exams must belong to userID.
	CompareExams(ctx context.Context, userID, previousID, currentID uuid.UUID) (*analysis.ProgressResult, error)
}

// Coach writes a study narrative for an analysis and its roadmap.
type Coach interface {
	Narrate(ctx context.Context, result *analysis.Result, roadmap *analysis.Roadmap) (string, error)
}

// Narrative sources reported in RoadmapReport.
const (
	NarrativeSourceLLM    = "llm"
	NarrativeSourceStatic = "static"
)

// RoadmapReport is the output of ExamRoadmap.
type RoadmapReport struct {
	ExamID          uuid.UUID         `json:"exam_id"`
	Analysis        *analysis.Result  `json:"analysis"`
	Roadmap         *analysis.Roadmap `json:"roadmap"`
	Narrative       string            `json:"narrative"`
	NarrativeSource string            `json:"narrative_source"`
}

// ServiceError wraps errors from the performance service with additional context.
type ServiceError struct {
	// Operation is the operation that failed (e.g., "record_exam", "compare_exams")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s operation failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s operation failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError returns a new ServiceError for the given operation.
func NewServiceError(operation, message string, err error) *ServiceError {
	return &ServiceError{Operation: operation, Message: message, Err: err}
}
