package srs

import (
	"fmt"

	"github.com/sercanumit/bootcamp-112/internal/domain"
)

// Params defines all configurable parameters for the scheduler
type Params struct {
	// Quality scale
	MinQuality  int
	MaxQuality  int
	PassQuality int // Reviews with quality below this are failed recalls

	// Core limits
	MinEaseFactor float64

	// Intervals used for the first two successful recalls
	FirstInterval  int
	SecondInterval int
}

// ParamsConfig allows overriding the default parameters when creating a new Params instance
type ParamsConfig struct {
	PassQuality    int
	MinEaseFactor  float64
	FirstInterval  int
	SecondInterval int
}

// NewDefaultParams creates a new Params instance with default values
func NewDefaultParams() *Params {
	return &Params{
		MinQuality:     0,
		MaxQuality:     5,
		PassQuality:    3,
		MinEaseFactor:  1.3,
		FirstInterval:  1,
		SecondInterval: 6,
	}
}

// NewParams creates a new Params instance with custom configuration.
// Zero values in config keep the defaults.
func NewParams(config ParamsConfig) (*Params, error) {
	params := NewDefaultParams()

	if config.PassQuality > 0 {
		params.PassQuality = config.PassQuality
	}
	if config.MinEaseFactor > 0 {
		params.MinEaseFactor = config.MinEaseFactor
	}
	if config.FirstInterval > 0 {
		params.FirstInterval = config.FirstInterval
	}
	if config.SecondInterval > 0 {
		params.SecondInterval = config.SecondInterval
	}

	if err := params.Validate(); err != nil {
		return nil, err
	}

	return params, nil
}

// Validate checks that the parameters describe a usable schedule.
func (p *Params) Validate() error {
	if p.MaxQuality <= p.MinQuality {
		return fmt.Errorf("%w: max quality must exceed min quality", domain.ErrValidation)
	}
	if p.PassQuality < p.MinQuality || p.PassQuality > p.MaxQuality {
		return domain.NewRangeError("pass_quality", float64(p.PassQuality),
			float64(p.MinQuality), float64(p.MaxQuality))
	}
	if p.MinEaseFactor <= 1.0 {
		return domain.NewMinRangeError("min_ease_factor", p.MinEaseFactor, 1.0)
	}
	if p.FirstInterval < 1 {
		return domain.NewMinRangeError("first_interval", float64(p.FirstInterval), 1)
	}
	if p.SecondInterval < 1 {
		return domain.NewMinRangeError("second_interval", float64(p.SecondInterval), 1)
	}
	return nil
}
