package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNewSpacedRepetitionState(t *testing.T) {
	userID := uuid.New()

	state, err := NewSpacedRepetitionState(userID, "Paragraf", "Türkçe")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if state.UserID != userID {
		t.Errorf("Expected user ID %s, got %s", userID, state.UserID)
	}

	if state.IntervalDays != 1 {
		t.Errorf("Expected interval 1, got %d", state.IntervalDays)
	}

	if state.EaseFactor != 2.5 {
		t.Errorf("Expected ease factor 2.5, got %f", state.EaseFactor)
	}

	if state.RepetitionCount != 0 {
		t.Errorf("Expected repetition count 0, got %d", state.RepetitionCount)
	}

	if state.NextReview != nil || state.LastReviewed != nil {
		t.Error("Expected new state to have no review timestamps")
	}

	if !state.IsActive {
		t.Error("Expected new state to be active")
	}

	if state.Difficulty != DifficultyMedium {
		t.Errorf("Expected difficulty medium, got %s", state.Difficulty)
	}

	if _, err := NewSpacedRepetitionState(uuid.Nil, "Paragraf", "Türkçe"); err != ErrEmptyStateUserID {
		t.Errorf("Expected error %v, got %v", ErrEmptyStateUserID, err)
	}

	if _, err := NewSpacedRepetitionState(userID, "", "Türkçe"); err != ErrEmptyStateTopic {
		t.Errorf("Expected error %v, got %v", ErrEmptyStateTopic, err)
	}
}

func TestSpacedRepetitionStateValidate(t *testing.T) {
	valid := SpacedRepetitionState{
		UserID:       uuid.New(),
		Topic:        "Denklem",
		Difficulty:   DifficultyHard,
		IntervalDays: 6,
		EaseFactor:   1.3,
	}

	if err := valid.Validate(); err != nil {
		t.Errorf("Expected valid state, got %v", err)
	}

	testCases := []struct {
		name     string
		mod      func(s *SpacedRepetitionState)
		expected error
	}{
		{"zero interval", func(s *SpacedRepetitionState) { s.IntervalDays = 0 }, ErrInvalidInterval},
		{"ease below floor", func(s *SpacedRepetitionState) { s.EaseFactor = 1.29 }, ErrInvalidEaseFactor},
		{"negative repetitions", func(s *SpacedRepetitionState) { s.RepetitionCount = -1 }, ErrInvalidRepetition},
		{"unknown difficulty", func(s *SpacedRepetitionState) { s.Difficulty = "extreme" }, ErrInvalidDifficulty},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := valid
			tc.mod(&s)
			if err := s.Validate(); err != tc.expected {
				t.Errorf("Expected error %v, got %v", tc.expected, err)
			}
		})
	}
}

func TestSpacedRepetitionStateClone(t *testing.T) {
	now := time.Now().UTC()
	state := &SpacedRepetitionState{UserID: uuid.New(), Topic: "Paragraf", NextReview: &now, LastReviewed: &now}

	clone := state.Clone()
	*clone.NextReview = now.Add(time.Hour)

	if !state.NextReview.Equal(now) {
		t.Error("Clone shares the NextReview pointer with the original")
	}
}
