package review

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sercanumit/bootcamp-112/internal/domain"
)

// Service schedules topic reviews for a user using spaced repetition.
type Service interface {
	// SubmitReview records a review of quality 0-5 for the user's topic and
	// returns the updated schedule. The first review of a topic creates its
	// state, which is why subject is required for unseen topics.
	//
	// The read-compute-write runs in one transaction holding a row lock, so
	// concurrent reviews of the same topic are serialized and neither update
	// is lost.
	//
	// Returns a *domain.RangeError for quality outside 0-5 and a
	// *domain.ValidationError for an empty topic, or an empty subject on a
	// first review.
	SubmitReview(
		ctx context.Context,
		userID uuid.UUID,
		topic string,
		subject string,
		quality int,
	) (*domain.SpacedRepetitionState, error)

	// DueReviews returns the user's active topics whose next review is unset
	// or has passed.
	DueReviews(ctx context.Context, userID uuid.UUID) ([]*domain.SpacedRepetitionState, error)
}

// ErrSubjectRequired indicates a first review was submitted without a subject.
var ErrSubjectRequired = errors.New("subject is required for the first review of a topic")

// ServiceError wraps errors from the review service with additional context.
// This allows consumers to differentiate between different types of service errors
// using errors.As instead of string matching.
type ServiceError struct {
	// Operation is the operation that failed (e.g., "submit_review", "due_reviews")
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

// NewSubmitReviewError returns a new ServiceError for the submit_review operation.
func NewSubmitReviewError(message string, err error) *ServiceError {
	return &ServiceError{Operation: "submit_review", Message: message, Err: err}
}

// NewDueReviewsError returns a new ServiceError for the due_reviews operation.
func NewDueReviewsError(message string, err error) *ServiceError {
	return &ServiceError{Operation: "due_reviews", Message: message, Err: err}
}
