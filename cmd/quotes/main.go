package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"github.com/rickgao/moex-quotes/internal/api"
	"github.com/rickgao/moex-quotes/internal/config"
	"github.com/rickgao/moex-quotes/internal/database"
	"github.com/rickgao/moex-quotes/internal/report"
	"github.com/rickgao/moex-quotes/internal/version"
	"github.com/rickgao/moex-quotes/internal/writer"
)

func main() {
	configPath := flag.String("config", "", "path to optional config file")
	flag.Parse()

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	if err := run(ctx, *configPath, os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// run prints both reports to stdout. Logs go to stderr.
func run(ctx context.Context, configPath string, stdout, stderr io.Writer) error {
	cfg, err := config.LoadAndValidate(configPath)
	if err != nil {
		slog.New(slog.NewTextHandler(stderr, nil)).Error("failed to load config", "error", err)
		return err
	}

	// LoadAndValidate has already checked the level.
	level, _ := cfg.Log.SlogLevel()
	runID := uuid.New()
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
		Level: level,
	})).With("run_id", runID)
	slog.SetDefault(logger)

	logger.Info("starting quotes",
		"version", version.String(),
		"config", configPath,
		"api_url", cfg.API.BaseURL,
	)

	client := api.NewClient(
		cfg.API.BaseURL,
		api.WithLogger(logger),
		api.WithTimeout(cfg.API.Timeout),
		api.WithUserAgent(version.UserAgent()),
	)

	var sinks []report.Sink

	if cfg.Archive.Enabled {
		logger.Info("connecting to database",
			"host", cfg.Archive.Timescale.Host,
			"port", cfg.Archive.Timescale.Port,
			"database", cfg.Archive.Timescale.Name,
		)
		pool, err := database.Connect(ctx, cfg.Archive.Timescale)
		if err != nil {
			logger.Error("failed to connect to database", "error", err)
			return err
		}
		defer pool.Close()

		archive := writer.NewArchiveWriter(pool, logger)
		if cfg.Archive.CreateSchema {
			if err := archive.EnsureSchema(ctx); err != nil {
				logger.Error("failed to create archive schema", "error", err)
				return err
			}
		}
		sinks = append(sinks, archive)
	}

	if cfg.Publish.Enabled() {
		logger.Info("publishing quotes",
			"brokers", cfg.Publish.Brokers,
			"topic", cfg.Publish.Topic,
		)
		publisher := writer.NewPublisher(
			writer.NewKafkaWriter(cfg.Publish.Brokers, cfg.Publish.Topic),
			cfg.Publish.WriteTimeout,
			logger,
		)
		defer func() {
			if err := publisher.Close(); err != nil {
				logger.Warn("failed to close publisher", "error", err)
			}
		}()
		sinks = append(sinks, publisher)
	}

	runner := report.NewRunner(client, stdout,
		report.WithSinks(sinks...),
		report.WithRunID(runID),
		report.WithLogger(logger),
	)

	if err := runner.RunAll(ctx, report.Defaults...); err != nil {
		logger.Error("report failed", "error", err)
		return fmt.Errorf("run reports: %w", err)
	}

	logger.Info("quotes done")
	return nil
}
