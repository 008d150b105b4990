package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/sercanumit/bootcamp-112/internal/domain/analysis"
	"github.com/sercanumit/bootcamp-112/internal/platform/logger"
	"google.golang.org/genai"
)

// Default retry settings used when the configured values are out of range.
const (
	DefaultMaxRetries        = 2
	DefaultRetryDelaySeconds = 1
)

var temperature float32 = 0.7

// CoachConfig holds the settings of a Coach.
type CoachConfig struct {
	APIKey            string
	ModelName         string
	MaxRetries        int
	RetryDelaySeconds int
	Timeout           time.Duration
}

// Validate checks the configuration before a client is created.
func (c CoachConfig) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("%w: api key is required", ErrInvalidConfig)
	}
	if c.ModelName == "" {
		return fmt.Errorf("%w: model name is required", ErrInvalidConfig)
	}
	if c.MaxRetries < 0 {
		return fmt.Errorf("%w: max retries cannot be negative", ErrInvalidConfig)
	}
	if c.RetryDelaySeconds < 0 {
		return fmt.Errorf("%w: retry delay cannot be negative", ErrInvalidConfig)
	}
	return nil
}

// generator is the part of *genai.Models used by the coach.
type generator interface {
	GenerateContent(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		config *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)
}

// Coach writes a study narrative for an exam analysis.
type Coach struct {
	models generator
	config CoachConfig
	logger *slog.Logger
}

// NewCoach creates a Coach backed by the Gemini API.
func NewCoach(ctx context.Context, config CoachConfig, logger *slog.Logger) (*Coach, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  config.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return newCoach(client.Models, config, logger), nil
}

func newCoach(models generator, config CoachConfig, log *slog.Logger) *Coach {
	if log == nil {
		log = slog.Default()
	}
	return &Coach{
		models: models,
		config: config,
		logger: log.With("component", "gemini_coach"),
	}
}

// Narrate renders the prompt for result and roadmap and returns the model's
// narrative. A nil roadmap is allowed.
func (c *Coach) Narrate(
	ctx context.Context,
	result *analysis.Result,
	roadmap *analysis.Roadmap,
) (string, error) {
	text, err := buildPrompt(result, roadmap)
	if err != nil {
		return "", err
	}

	if c.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.config.Timeout)
		defer cancel()
	}

	return c.generateWithRetry(ctx, text)
}

// generateWithRetry calls the model up to MaxRetries+1 times. The delay
// between attempts is baseDelay * 2^attempt * jitter with jitter in [0.5, 1).
func (c *Coach) generateWithRetry(ctx context.Context, prompt string) (string, error) {
	log := logger.FromContextOrDefault(ctx, c.logger)

	maxRetries := c.config.MaxRetries
	if maxRetries < 0 {
		log.WarnContext(ctx, "Invalid max retries value, using default", "max_retries", DefaultMaxRetries)
		maxRetries = DefaultMaxRetries
	}
	baseDelaySeconds := c.config.RetryDelaySeconds
	if baseDelaySeconds < 0 {
		log.WarnContext(ctx, "Invalid retry delay value, using default",
			"base_delay_seconds", DefaultRetryDelaySeconds)
		baseDelaySeconds = DefaultRetryDelaySeconds
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	contents := []*genai.Content{{
		Role:  "user",
		Parts: []*genai.Part{{Text: prompt}},
	}}
	genConfig := &genai.GenerateContentConfig{
		Temperature: &temperature,
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: systemPrompt}},
		},
	}

	for attempt := 0; attempt <= maxRetries; attempt++ {
		attemptNum := attempt + 1
		log.InfoContext(ctx, "Making Gemini API call",
			"attempt", attemptNum,
			"max_attempts", maxRetries+1,
			"model", c.config.ModelName)

		resp, err := c.models.GenerateContent(ctx, c.config.ModelName, contents, genConfig)
		if err == nil {
			var narrative string
			narrative, err = extractText(resp)
			if err == nil {
				log.InfoContext(ctx, "Gemini API call successful",
					"attempt", attemptNum,
					"narrative_length", len(narrative))
				return narrative, nil
			}
		}

		log.ErrorContext(ctx, "Gemini API call failed",
			"attempt", attemptNum,
			"error", err)

		if errors.Is(err, ErrContentBlocked) || errors.Is(err, ErrInvalidResponse) {
			log.WarnContext(ctx, "Permanent error occurred, not retrying", "error_type", err)
			return "", err
		}
		if ctx.Err() != nil {
			return "", fmt.Errorf("narrative generation cancelled: %w", ctx.Err())
		}
		if attempt >= maxRetries {
			log.WarnContext(ctx, "Maximum retry attempts reached", "max_retries", maxRetries)
			return "", fmt.Errorf("%w: exceeded maximum retry attempts (%d): %v",
				ErrTransientFailure, maxRetries, err)
		}

		backoffSeconds := float64(baseDelaySeconds) * math.Pow(2, float64(attempt))
		delaySeconds := backoffSeconds * (0.5 + rng.Float64()*0.5)
		delay := time.Duration(delaySeconds * float64(time.Second))

		log.InfoContext(ctx, "Retrying after delay",
			"attempt", attemptNum,
			"delay_seconds", delaySeconds)

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			log.WarnContext(ctx, "API call cancelled during retry delay",
				"attempt", attemptNum,
				"ctx_err", ctx.Err())
			return "", fmt.Errorf("narrative generation cancelled: %w", ctx.Err())
		}
	}

	// unreachable: the loop returns on its last attempt
	return "", ErrTransientFailure
}

// extractText joins the text parts of the first candidate.
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	switch {
	case resp == nil:
		return "", fmt.Errorf("%w: nil response", ErrInvalidResponse)
	case len(resp.Candidates) == 0 || resp.Candidates[0] == nil:
		return "", fmt.Errorf("%w: no content generated", ErrInvalidResponse)
	case resp.Candidates[0].FinishReason == genai.FinishReasonSafety:
		return "", fmt.Errorf("%w: content blocked by safety filters", ErrContentBlocked)
	case resp.Candidates[0].Content == nil:
		return "", fmt.Errorf("%w: empty content in response", ErrInvalidResponse)
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil {
			sb.WriteString(part.Text)
		}
	}

	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", fmt.Errorf("%w: response contains no text", ErrInvalidResponse)
	}
	return text, nil
}
