package analysis

import (
	"testing"

	"github.com/sercanumit/bootcamp-112/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareImproved(t *testing.T) {
	t.Parallel()
	a := NewDefaultAnalyzer()

	previous := []domain.QuestionAttempt{
		attempt("Türev", "Matematik", "A", "A"),
		attempt("Türev", "Matematik", "B", "A"),
		attempt("Optik", "Fizik", "B", "A"),
	}
	current := []domain.QuestionAttempt{
		attempt("Türev", "Matematik", "A", "A"),
		attempt("Türev", "Matematik", "A", "A"),
		attempt("Asit", "Kimya", "A", "A"),
	}

	result, err := a.Compare(previous, current)
	require.NoError(t, err)

	// previous net 1 - 0.5 = 0.5, current net 3
	assert.InDelta(t, 2.5, result.NetChange, 1e-9)
	assert.Equal(t, StatusImproved, result.OverallProgress)

	require.Len(t, result.ProgressByTopic, 1, "only shared topics are compared")
	turev := result.ProgressByTopic["Türev"]
	assert.InDelta(t, 1.25, turev.NetImprovement, 1e-9)
	assert.InDelta(t, 166.666666, turev.ImprovementPercentage, 1e-4)
	assert.Equal(t, StatusImproved, turev.Status)

	require.NotNil(t, result.CurrentAnalysis)
	require.NotNil(t, result.PreviousAnalysis)
	assert.Equal(t, 3, result.CurrentAnalysis.GeneralStats.CorrectCount)
}

func TestCompareIdentical(t *testing.T) {
	t.Parallel()
	a := NewDefaultAnalyzer()

	attempts := []domain.QuestionAttempt{
		attempt("Türev", "Matematik", "A", "A"),
		attempt("Optik", "Fizik", "B", "A"),
	}

	result, err := a.Compare(attempts, attempts)
	require.NoError(t, err)
	assert.Zero(t, result.NetChange)
	assert.Equal(t, StatusStable, result.OverallProgress)
	for _, p := range result.ProgressByTopic {
		assert.Equal(t, StatusStable, p.Status)
		assert.Zero(t, p.NetImprovement)
	}
}

func TestCompareDeclinedNonPositiveBase(t *testing.T) {
	t.Parallel()
	a := NewDefaultAnalyzer()

	previous := []domain.QuestionAttempt{attempt("Optik", "Fizik", "B", "A")}
	current := []domain.QuestionAttempt{
		attempt("Optik", "Fizik", "B", "A"),
		attempt("Optik", "Fizik", "C", "A"),
	}

	result, err := a.Compare(previous, current)
	require.NoError(t, err)
	assert.Equal(t, StatusDeclined, result.OverallProgress)

	optik := result.ProgressByTopic["Optik"]
	assert.InDelta(t, -0.25, optik.NetImprovement, 1e-9)
	assert.Zero(t, optik.ImprovementPercentage, "no percentage against a negative base")
	assert.Equal(t, StatusDeclined, optik.Status)
}

func TestCompareValidationError(t *testing.T) {
	t.Parallel()
	a := NewDefaultAnalyzer()

	_, err := a.Compare([]domain.QuestionAttempt{{Topic: "T"}}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), "previous attempts")
}
