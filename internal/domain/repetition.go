package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Difficulty is the self-assessed difficulty label of a topic under review.
// The scheduler never changes it.
type Difficulty string

// Possible difficulty values
const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Default values for a freshly created spaced repetition state
const (
	DefaultEaseFactor   = 2.5
	DefaultIntervalDays = 1
)

// Common validation errors for SpacedRepetitionState
var (
	ErrEmptyStateUserID  = errors.New("spaced repetition user ID cannot be empty")
	ErrEmptyStateTopic   = errors.New("spaced repetition topic cannot be empty")
	ErrInvalidInterval   = errors.New("interval must be at least 1 day")
	ErrInvalidEaseFactor = errors.New("ease factor must be at least 1.3")
	ErrInvalidRepetition = errors.New("repetition count cannot be negative")
	ErrInvalidDifficulty = errors.New("invalid difficulty")
)

// SpacedRepetitionState is the persisted review schedule of one topic for one user.
// The review count state machine is implicit: RepetitionCount 0 means new or
// just reset, anything above means the topic is progressing.
type SpacedRepetitionState struct {
	UserID          uuid.UUID  `json:"user_id"`
	Topic           string     `json:"topic"`
	Subject         string     `json:"subject"`
	Difficulty      Difficulty `json:"difficulty"`
	IntervalDays    int        `json:"interval_days"`
	EaseFactor      float64    `json:"ease_factor"`
	RepetitionCount int        `json:"repetition_count"`
	CorrectCount    int        `json:"correct_count"`
	WrongCount      int        `json:"wrong_count"`
	SuccessRate     float64    `json:"success_rate"` // Percent, 0-100
	LastReviewed    *time.Time `json:"last_reviewed"`
	NextReview      *time.Time `json:"next_review"` // nil until the first review
	IsActive        bool       `json:"is_active"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// NewSpacedRepetitionState creates the initial state for a topic that has never been reviewed.
func NewSpacedRepetitionState(userID uuid.UUID, topic, subject string) (*SpacedRepetitionState, error) {
	now := time.Now().UTC()
	state := &SpacedRepetitionState{
		UserID:       userID,
		Topic:        topic,
		Subject:      subject,
		Difficulty:   DifficultyMedium,
		IntervalDays: DefaultIntervalDays,
		EaseFactor:   DefaultEaseFactor,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := state.Validate(); err != nil {
		return nil, err
	}

	return state, nil
}

// Validate checks if the state has valid data.
func (s *SpacedRepetitionState) Validate() error {
	if s.UserID == uuid.Nil {
		return ErrEmptyStateUserID
	}

	if s.Topic == "" {
		return ErrEmptyStateTopic
	}

	if s.IntervalDays < 1 {
		return ErrInvalidInterval
	}

	if s.EaseFactor < 1.3 {
		return ErrInvalidEaseFactor
	}

	if s.RepetitionCount < 0 {
		return ErrInvalidRepetition
	}

	switch s.Difficulty {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
	default:
		return ErrInvalidDifficulty
	}

	return nil
}

// Clone returns a deep copy of the state.
func (s *SpacedRepetitionState) Clone() *SpacedRepetitionState {
	c := *s
	if s.LastReviewed != nil {
		t := *s.LastReviewed
		c.LastReviewed = &t
	}
	if s.NextReview != nil {
		t := *s.NextReview
		c.NextReview = &t
	}
	return &c
}
