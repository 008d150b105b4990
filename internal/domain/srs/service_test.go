package srs

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sercanumit/bootcamp-112/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newState(t *testing.T) *domain.SpacedRepetitionState {
	t.Helper()
	state, err := domain.NewSpacedRepetitionState(uuid.New(), "Denklem", "Matematik")
	require.NoError(t, err, "Failed to create state")
	return state
}

func TestNewServiceWithParams(t *testing.T) {
	t.Parallel()

	service, err := NewServiceWithParams(nil)
	require.NoError(t, err)
	require.NotNil(t, service)

	_, err = NewServiceWithParams(&Params{MaxQuality: 5, PassQuality: 3, MinEaseFactor: 0.5, FirstInterval: 1, SecondInterval: 6})
	assert.ErrorIs(t, err, domain.ErrOutOfRange)
}

func TestSubmitReviewSequence(t *testing.T) {
	t.Parallel()
	service := NewDefaultService()
	now := time.Date(2026, 1, 5, 8, 0, 0, 0, time.UTC)

	state := newState(t)

	first, err := service.SubmitReview(state, 5, now)
	require.NoError(t, err)
	assert.Equal(t, 1, first.RepetitionCount)
	assert.Equal(t, 1, first.IntervalDays)

	second, err := service.SubmitReview(first, 5, now.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Equal(t, 2, second.RepetitionCount)
	assert.Equal(t, 6, second.IntervalDays)

	// Ease grew by 0.1 twice, so the third interval is floor(6 * 2.7) = 16.
	third, err := service.SubmitReview(second, 5, now.AddDate(0, 0, 7))
	require.NoError(t, err)
	assert.Equal(t, 3, third.RepetitionCount)
	assert.Equal(t, 16, third.IntervalDays)
	assert.InDelta(t, 2.8, third.EaseFactor, 1e-9)
	assert.Equal(t, 3, third.CorrectCount)
	assert.InDelta(t, 100.0, third.SuccessRate, 1e-9)
}

func TestSubmitReviewFailureResets(t *testing.T) {
	t.Parallel()
	service := NewDefaultService()
	now := time.Now().UTC()

	states := []*domain.SpacedRepetitionState{newState(t)}
	progressed := newState(t)
	progressed.RepetitionCount = 5
	progressed.IntervalDays = 40
	progressed.EaseFactor = 2.2
	states = append(states, progressed)
	floored := newState(t)
	floored.EaseFactor = 1.3
	floored.RepetitionCount = 2
	floored.IntervalDays = 6
	states = append(states, floored)

	for _, state := range states {
		updated, err := service.SubmitReview(state, 0, now)
		require.NoError(t, err)

		assert.Equal(t, 0, updated.RepetitionCount)
		assert.Equal(t, 1, updated.IntervalDays)
		assert.GreaterOrEqual(t, updated.EaseFactor, 1.3)
		if state.EaseFactor > 1.3 {
			assert.Less(t, updated.EaseFactor, state.EaseFactor)
		} else {
			assert.Equal(t, 1.3, updated.EaseFactor)
		}
		assert.Equal(t, state.WrongCount+1, updated.WrongCount)
		require.NotNil(t, updated.NextReview)
		assert.True(t, updated.NextReview.Equal(now.AddDate(0, 0, 1)))
	}
}

func TestSubmitReviewValidation(t *testing.T) {
	t.Parallel()
	service := NewDefaultService()
	now := time.Now().UTC()

	_, err := service.SubmitReview(nil, 3, now)
	assert.ErrorIs(t, err, ErrNilState)

	for _, quality := range []int{-1, 6, 100} {
		_, err := service.SubmitReview(newState(t), quality, now)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrOutOfRange), "quality %d should be rejected", quality)

		var rErr *domain.RangeError
		require.True(t, errors.As(err, &rErr))
		assert.Equal(t, "quality", rErr.Name)
	}
}

func TestValidateQualityFollowsParams(t *testing.T) {
	t.Parallel()

	assert.NoError(t, NewDefaultService().ValidateQuality(5))
	assert.ErrorIs(t, NewDefaultService().ValidateQuality(6), domain.ErrOutOfRange)

	params := NewDefaultParams()
	params.MaxQuality = 3
	params.PassQuality = 2
	service, err := NewServiceWithParams(params)
	require.NoError(t, err)

	assert.NoError(t, service.ValidateQuality(3))
	assert.ErrorIs(t, service.ValidateQuality(4), domain.ErrOutOfRange)
}

func TestIsDue(t *testing.T) {
	t.Parallel()
	service := NewDefaultService()
	now := time.Now().UTC()

	state := newState(t)
	assert.True(t, service.IsDue(state, now), "never reviewed topic counts as due")

	past := now.Add(-time.Minute)
	state.NextReview = &past
	assert.True(t, service.IsDue(state, now))

	exact := now
	state.NextReview = &exact
	assert.True(t, service.IsDue(state, now))

	future := now.Add(time.Hour)
	state.NextReview = &future
	assert.False(t, service.IsDue(state, now))

	assert.False(t, service.IsDue(nil, now))
}
