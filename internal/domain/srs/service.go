package srs

import (
	"errors"
	"time"

	"github.com/sercanumit/bootcamp-112/internal/domain"
)

// Common errors
var (
	ErrNilState = errors.New("spaced repetition state cannot be nil")
)

// Service defines the interface for scheduler operations
type Service interface {
	// SubmitReview computes the state that follows a review of the given quality.
	// The returned state is a new value; the caller persists it.
	SubmitReview(
		state *domain.SpacedRepetitionState,
		quality int,
		now time.Time,
	) (*domain.SpacedRepetitionState, error)

	// ValidateQuality returns a *domain.RangeError when quality lies outside
	// the scheduler's scale.
	ValidateQuality(quality int) error

	// IsDue reports whether the topic should be reviewed at now.
	// A state that was never reviewed counts as due.
	IsDue(state *domain.SpacedRepetitionState, now time.Time) bool
}

// defaultService is the standard implementation of the Service interface
type defaultService struct {
	params *Params
}

// NewDefaultService creates a new scheduler with default parameters
func NewDefaultService() Service {
	return &defaultService{
		params: NewDefaultParams(),
	}
}

// NewServiceWithParams creates a new scheduler with custom parameters
func NewServiceWithParams(params *Params) (Service, error) {
	if params == nil {
		return NewDefaultService(), nil
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &defaultService{
		params: params,
	}, nil
}

// SubmitReview implements the Service interface
func (s *defaultService) SubmitReview(
	state *domain.SpacedRepetitionState,
	quality int,
	now time.Time,
) (*domain.SpacedRepetitionState, error) {
	if state == nil {
		return nil, ErrNilState
	}

	if err := s.ValidateQuality(quality); err != nil {
		return nil, err
	}

	return calculateNextState(state, quality, now, s.params), nil
}

// ValidateQuality implements the Service interface
func (s *defaultService) ValidateQuality(quality int) error {
	if quality < s.params.MinQuality || quality > s.params.MaxQuality {
		return domain.NewRangeError("quality", float64(quality),
			float64(s.params.MinQuality), float64(s.params.MaxQuality))
	}
	return nil
}

// IsDue implements the Service interface
func (s *defaultService) IsDue(state *domain.SpacedRepetitionState, now time.Time) bool {
	if state == nil {
		return false
	}
	if state.NextReview == nil {
		return true
	}
	return !state.NextReview.After(now)
}
