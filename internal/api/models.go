package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/sercanumit/bootcamp-112/internal/domain"
	"github.com/sercanumit/bootcamp-112/internal/domain/analysis"
)

// AnalysisRequest is the body of POST /api/analysis. Attempt lists carry no
// per-field tags; the domain validates them record by record so errors can
// name the offending index.
type AnalysisRequest struct {
	Attempts []domain.QuestionAttempt `json:"attempts" validate:"max=10000"`
	TopN     int                      `json:"top_n"    validate:"gte=0,lte=100"`
}

// maxTopicsPerWeek bounds every client-supplied week size.
const maxTopicsPerWeek = 50

// RoadmapRequest is the body of POST /api/roadmap. A missing
// max_topics_per_week uses the default of three.
type RoadmapRequest struct {
	WeakTopics       []analysis.WeakTopicEntry `json:"weak_topics"         validate:"max=10000"`
	MaxTopicsPerWeek *int                      `json:"max_topics_per_week" validate:"omitempty,lte=50"`
}

// ProgressRequest is the body of POST /api/progress.
type ProgressRequest struct {
	Previous []domain.QuestionAttempt `json:"previous" validate:"max=10000"`
	Current  []domain.QuestionAttempt `json:"current"  validate:"max=10000"`
}

// RecordExamRequest is the body of POST /api/exams.
type RecordExamRequest struct {
	ExamName string                   `json:"exam_name" validate:"required,max=200"`
	ExamType domain.ExamType          `json:"exam_type" validate:"required,oneof=tyt ayt dil msu"`
	TakenAt  *time.Time               `json:"taken_at"`
	Attempts []domain.QuestionAttempt `json:"attempts"  validate:"required,min=1,max=10000"`
}

// ExamResponse describes a stored exam without its attempts.
type ExamResponse struct {
	ID           uuid.UUID       `json:"id"`
	ExamName     string          `json:"exam_name"`
	ExamType     domain.ExamType `json:"exam_type"`
	TakenAt      time.Time       `json:"taken_at"`
	AttemptCount int             `json:"attempt_count,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

// SubmitReviewRequest is the body of POST /api/reviews/{topic}.
// Subject is required on the first review of a topic.
type SubmitReviewRequest struct {
	Subject string `json:"subject" validate:"max=200"`
	Quality *int   `json:"quality" validate:"required,gte=0,lte=5"`
}

// DueReviewsResponse is the body of GET /api/reviews/due.
type DueReviewsResponse struct {
	Count   int                             `json:"count"`
	Reviews []*domain.SpacedRepetitionState `json:"reviews"`
}

func toExamResponse(e *domain.ExamAttempt) ExamResponse {
	return ExamResponse{
		ID:           e.ID,
		ExamName:     e.ExamName,
		ExamType:     e.ExamType,
		TakenAt:      e.TakenAt,
		AttemptCount: len(e.Attempts),
		CreatedAt:    e.CreatedAt,
	}
}
