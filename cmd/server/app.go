package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/sercanumit/bootcamp-112/internal/config"
	"github.com/sercanumit/bootcamp-112/internal/domain/analysis"
	"github.com/sercanumit/bootcamp-112/internal/domain/srs"
	"github.com/sercanumit/bootcamp-112/internal/platform/gemini"
	"github.com/sercanumit/bootcamp-112/internal/platform/postgres"
	"github.com/sercanumit/bootcamp-112/internal/service/auth"
	"github.com/sercanumit/bootcamp-112/internal/service/performance"
	"github.com/sercanumit/bootcamp-112/internal/service/review"
	"github.com/sercanumit/bootcamp-112/internal/store"
)

// application holds the wired dependencies of the server.
type application struct {
	config             *config.Config
	logger             *slog.Logger
	db                 *sql.DB
	analyzer           *analysis.Analyzer
	jwtService         auth.JWTService
	performanceService performance.Service
	reviewService      review.Service
}

// newApplication builds stores, services and the optional coach from cfg.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	analyzer, err := analysis.NewAnalyzer(analysisConfig(cfg.Analysis))
	if err != nil {
		return nil, fmt.Errorf("invalid analysis configuration: %w", err)
	}

	params, err := srs.NewParams(srs.ParamsConfig{
		PassQuality:    cfg.SRS.PassQuality,
		MinEaseFactor:  cfg.SRS.MinEaseFactor,
		FirstInterval:  cfg.SRS.FirstInterval,
		SecondInterval: cfg.SRS.SecondInterval,
	})
	if err != nil {
		return nil, fmt.Errorf("invalid srs configuration: %w", err)
	}
	srsService, err := srs.NewServiceWithParams(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create srs service: %w", err)
	}

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create jwt service: %w", err)
	}

	coach, err := newCoach(ctx, cfg.LLM, logger)
	if err != nil {
		return nil, err
	}

	tx := store.NewDBTransactor(db)
	exams := postgres.NewPostgresExamAttemptStore(db, logger)
	states := postgres.NewPostgresSpacedRepetitionStore(db, logger)

	return &application{
		config:             cfg,
		logger:             logger,
		db:                 db,
		analyzer:           analyzer,
		jwtService:         jwtService,
		performanceService: performance.NewService(exams, tx, analyzer, coach, cfg.Analysis.TopicsPerWeek, logger),
		reviewService:      review.NewService(states, tx, srsService, logger),
	}, nil
}

// newCoach returns the Gemini coach, or nil when no API key is configured
// so the performance service falls back to the static narrative.
func newCoach(ctx context.Context, cfg config.LLMConfig, logger *slog.Logger) (performance.Coach, error) {
	if cfg.GeminiAPIKey == "" {
		logger.Info("no gemini api key configured, using static study narratives")
		return nil, nil
	}

	coach, err := gemini.NewCoach(ctx, gemini.CoachConfig{
		APIKey:            cfg.GeminiAPIKey,
		ModelName:         cfg.ModelName,
		MaxRetries:        cfg.MaxRetries,
		RetryDelaySeconds: cfg.RetryDelaySeconds,
		Timeout:           time.Duration(cfg.TimeoutSeconds) * time.Second,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini coach: %w", err)
	}
	return coach, nil
}

func analysisConfig(cfg config.AnalysisConfig) *analysis.Config {
	return &analysis.Config{
		Weights: analysis.Weights{
			Accuracy: cfg.AccuracyWeight,
			Omission: cfg.OmissionWeight,
			Error:    cfg.ErrorWeight,
		},
		Bands: analysis.Bands{
			Low:  cfg.LowAccuracyBand,
			High: cfg.HighAccuracyBand,
		},
		HoursPerTopic:          cfg.HoursPerTopic,
		TopN:                   cfg.TopN,
		WeakSubjectThreshold:   cfg.WeakSubjectThreshold,
		StrongSubjectThreshold: cfg.StrongSubjectThreshold,
	}
}
