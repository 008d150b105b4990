package analysis

import (
	"fmt"
	"math"

	"github.com/sercanumit/bootcamp-112/internal/domain"
)

// Weights are the contributions of inaccuracy, omission and error to a
// topic's weakness score. They must be non-negative and sum to 1 so the score
// stays within [0, 1].
type Weights struct {
	Accuracy float64 `json:"accuracy"`
	Omission float64 `json:"omission"`
	Error    float64 `json:"error"`
}

// Bands are the accuracy thresholds that pick the recommendation text for a
// topic. Each band includes its lower bound.
type Bands struct {
	Low  float64 `json:"low"`  // below: review fundamentals
	High float64 `json:"high"` // below: repeat the topic; at or above: fill gaps
}

// Config holds every policy constant used by the Analyzer.
type Config struct {
	Weights       Weights
	Bands         Bands
	HoursPerTopic int
	TopN          int

	// Subject success rate thresholds, in percent.
	WeakSubjectThreshold   float64
	StrongSubjectThreshold float64
}

// NewDefaultConfig returns the standard scoring policy.
func NewDefaultConfig() *Config {
	return &Config{
		Weights: Weights{
			Accuracy: 0.6,
			Omission: 0.2,
			Error:    0.2,
		},
		Bands: Bands{
			Low:  0.30,
			High: 0.60,
		},
		HoursPerTopic:          5,
		TopN:                   5,
		WeakSubjectThreshold:   60,
		StrongSubjectThreshold: 80,
	}
}

// Validate checks that the configuration is internally consistent.
func (c *Config) Validate() error {
	w := c.Weights
	if w.Accuracy < 0 || w.Omission < 0 || w.Error < 0 {
		return fmt.Errorf("%w: weights cannot be negative", domain.ErrValidation)
	}
	if sum := w.Accuracy + w.Omission + w.Error; math.Abs(sum-1) > 1e-9 {
		return fmt.Errorf("%w: weights must sum to 1, got %g", domain.ErrValidation, sum)
	}
	if c.Bands.Low < 0 || c.Bands.High > 1 || c.Bands.Low >= c.Bands.High {
		return fmt.Errorf("%w: accuracy bands must satisfy 0 <= low < high <= 1", domain.ErrValidation)
	}
	if c.HoursPerTopic < 1 {
		return domain.NewMinRangeError("hours_per_topic", float64(c.HoursPerTopic), 1)
	}
	if c.TopN < 1 {
		return domain.NewMinRangeError("top_n", float64(c.TopN), 1)
	}
	if c.WeakSubjectThreshold > c.StrongSubjectThreshold {
		return fmt.Errorf("%w: weak subject threshold exceeds strong threshold", domain.ErrValidation)
	}
	return nil
}
