package main

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/sercanumit/bootcamp-112/internal/config"
	"github.com/sercanumit/bootcamp-112/internal/domain"
	"github.com/sercanumit/bootcamp-112/internal/domain/analysis"
	"github.com/sercanumit/bootcamp-112/internal/service/auth"
	"github.com/sercanumit/bootcamp-112/internal/service/performance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubReviews struct{ userID uuid.UUID }

func (s *stubReviews) SubmitReview(
	_ context.Context,
	userID uuid.UUID,
	topic, subject string,
	_ int,
) (*domain.SpacedRepetitionState, error) {
	return &domain.SpacedRepetitionState{UserID: userID, Topic: topic, Subject: subject}, nil
}

func (s *stubReviews) DueReviews(_ context.Context, userID uuid.UUID) ([]*domain.SpacedRepetitionState, error) {
	s.userID = userID
	return []*domain.SpacedRepetitionState{}, nil
}

type stubPerformance struct{ performance.Service }

func testApplication(t *testing.T, burst int) (*application, auth.JWTService) {
	t.Helper()

	cfg := &config.Config{
		Server: config.ServerConfig{Port: 8080, LogLevel: "info", RateLimit: 0.01, RateBurst: burst},
		Auth:   config.AuthConfig{JWTSecret: "router-test-secret-that-is-long-enough", TokenLifetimeMinutes: 5},
	}
	jwtService, err := auth.NewJWTService(cfg.Auth)
	require.NoError(t, err)

	return &application{
		config:             cfg,
		logger:             slog.Default(),
		analyzer:           analysis.NewDefaultAnalyzer(),
		jwtService:         jwtService,
		performanceService: stubPerformance{},
		reviewService:      &stubReviews{},
	}, jwtService
}

func TestRouterPublicAndProtectedRoutes(t *testing.T) {
	t.Parallel()

	app, jwtService := testApplication(t, 10)
	router := app.setupRouter()

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.NotEmpty(t, rr.Header().Get("X-Trace-ID"))

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/analysis", strings.NewReader(`{"attempts": []}`)))
	assert.Equal(t, http.StatusOK, rr.Code, "analysis is public")

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/reviews/due", nil))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	userID := uuid.New()
	token, err := jwtService.GenerateToken(context.Background(), userID)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/reviews/due", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, userID, app.reviewService.(*stubReviews).userID)
}

func TestRouterRateLimitsPublicRoutes(t *testing.T) {
	t.Parallel()

	app, _ := testApplication(t, 1)
	router := app.setupRouter()

	call := func() int {
		req := httptest.NewRequest(http.MethodPost, "/api/progress", strings.NewReader(`{}`))
		req.RemoteAddr = "192.0.2.10:4000"
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		return rr.Code
	}

	assert.Equal(t, http.StatusOK, call())
	assert.Equal(t, http.StatusTooManyRequests, call())
}

func TestAnalysisConfigMapping(t *testing.T) {
	t.Parallel()

	cfg := config.AnalysisConfig{
		AccuracyWeight: 0.5, OmissionWeight: 0.25, ErrorWeight: 0.25,
		LowAccuracyBand: 0.4, HighAccuracyBand: 0.7,
		HoursPerTopic: 4, TopN: 3, TopicsPerWeek: 2,
		WeakSubjectThreshold: 50, StrongSubjectThreshold: 90,
	}

	analyzer, err := analysis.NewAnalyzer(analysisConfig(cfg))
	require.NoError(t, err)
	got := analyzer.Config()
	assert.InDelta(t, 0.5, got.Weights.Accuracy, 1e-9)
	assert.InDelta(t, 0.7, got.Bands.High, 1e-9)
	assert.Equal(t, 4, got.HoursPerTopic)
	assert.Equal(t, 3, got.TopN)
}
