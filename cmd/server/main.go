// Package main implements the entry point for the exam analysis API server,
// which analyzes practice exam attempts, plans study roadmaps and schedules
// topic reviews with spaced repetition.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/sercanumit/bootcamp-112/internal/config"
	"github.com/sercanumit/bootcamp-112/internal/platform/logger"
	"github.com/sercanumit/bootcamp-112/internal/platform/postgres"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		slog.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

// run parses flags, loads configuration and either runs a migration command
// or serves the API until SIGINT or SIGTERM.
func run(args []string) error {
	flags := flag.NewFlagSet("server", flag.ContinueOnError)
	configFile := flags.String("config", "", "path to a YAML configuration file")
	migrate := flags.String("migrate", "", "run a migration command (up, down, status, version) and exit")
	if err := flags.Parse(args); err != nil {
		return err
	}

	cfg, err := config.LoadFile(*configFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(logger.LoggerConfig{Level: cfg.Server.LogLevel})
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	log.Info("server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"coach_enabled", cfg.LLM.GeminiAPIKey != "")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := setupDatabase(ctx, cfg.Database, log)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			log.Error("failed to close database", "error", cerr)
		}
	}()

	if *migrate != "" {
		return postgres.Migrate(ctx, db, *migrate, log)
	}

	// Serving always applies pending migrations first.
	if err := postgres.Migrate(ctx, db, postgres.MigrateUp, log); err != nil {
		return err
	}

	app, err := newApplication(ctx, cfg, log, db)
	if err != nil {
		return err
	}

	return app.serve(ctx)
}
