package srs

import (
	"math"
	"time"

	"github.com/sercanumit/bootcamp-112/internal/domain"
)

// calculateNewEaseFactor applies the SM-2 ease update for a review of the given quality.
//
// The adjustment is 0.1 - (5-q)*(0.08 + (5-q)*0.02): a perfect recall adds 0.1,
// quality 4 leaves the factor unchanged and anything lower shrinks it. The result
// never drops below params.MinEaseFactor. It is applied on failed recalls too.
func calculateNewEaseFactor(currentEF float64, quality int, params *Params) float64 {
	miss := float64(params.MaxQuality - quality)
	newEF := currentEF + (0.1 - miss*(0.08+miss*0.02))

	return math.Max(params.MinEaseFactor, newEF)
}

// calculateNewInterval returns the next interval in days and the new repetition count.
//
// A failed recall resets the topic to repetition 0 with the first interval.
// Successful recalls walk through the first interval, the second interval and
// then multiply the current interval by the ease factor from before this
// review, truncating toward zero.
func calculateNewInterval(
	currentInterval int,
	repetitions int,
	easeFactor float64,
	quality int,
	params *Params,
) (int, int) {
	if quality < params.PassQuality {
		return params.FirstInterval, 0
	}

	var interval int
	switch repetitions {
	case 0:
		interval = params.FirstInterval
	case 1:
		interval = params.SecondInterval
	default:
		interval = int(math.Floor(float64(currentInterval) * easeFactor))
	}

	if interval < 1 {
		interval = 1
	}

	return interval, repetitions + 1
}

// calculateSuccessRate returns correct/(correct+wrong) as a percentage, or 0 without reviews.
func calculateSuccessRate(correct, wrong int) float64 {
	total := correct + wrong
	if total == 0 {
		return 0
	}
	return float64(correct) / float64(total) * 100
}

// calculateNextState creates a new SpacedRepetitionState with updated values
// based on the review quality. The input state is never modified.
func calculateNextState(
	state *domain.SpacedRepetitionState,
	quality int,
	now time.Time,
	params *Params,
) *domain.SpacedRepetitionState {
	next := state.Clone()

	next.IntervalDays, next.RepetitionCount = calculateNewInterval(
		state.IntervalDays,
		state.RepetitionCount,
		state.EaseFactor,
		quality,
		params,
	)

	next.EaseFactor = calculateNewEaseFactor(state.EaseFactor, quality, params)

	if quality >= params.PassQuality {
		next.CorrectCount++
	} else {
		next.WrongCount++
	}
	next.SuccessRate = calculateSuccessRate(next.CorrectCount, next.WrongCount)

	reviewed := now
	nextReview := now.AddDate(0, 0, next.IntervalDays)
	next.LastReviewed = &reviewed
	next.NextReview = &nextReview
	next.UpdatedAt = now

	return next
}
