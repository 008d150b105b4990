package gemini

import "errors"

// Error definitions for the gemini package.
var (
	// ErrInvalidConfig is returned when the coach configuration is invalid.
	ErrInvalidConfig = errors.New("invalid coach configuration")

	// ErrMissingAnalysis is returned when Narrate is called without an analysis result.
	ErrMissingAnalysis = errors.New("analysis result is required")

	// ErrInvalidResponse is returned when the model response carries no usable text.
	ErrInvalidResponse = errors.New("invalid response from language model")

	// ErrContentBlocked is returned when the model blocks the content due to safety filters.
	ErrContentBlocked = errors.New("content blocked by language model safety filters")

	// ErrTransientFailure is returned when every retry of a transient failure was used up.
	ErrTransientFailure = errors.New("transient error during narrative generation")
)
