package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sumi-techmd/transcrib8/internal/config"
	"github.com/sumi-techmd/transcrib8/internal/logger"
	"github.com/sumi-techmd/transcrib8/internal/notes"
	"github.com/sumi-techmd/transcrib8/internal/processor"
	"github.com/sumi-techmd/transcrib8/internal/textgen"
	"github.com/sumi-techmd/transcrib8/internal/transcriber"
	"github.com/sumi-techmd/transcrib8/internal/watcher"
	"github.com/sumi-techmd/transcrib8/pkg/executor"
)

const maxConcurrent = 2

func main() {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Logging.Level)
	log.Info(ctx, "========================================")
	log.Info(ctx, "Transcrib8 Drop-Folder Pipeline")
	log.Info(ctx, "========================================")
	log.Info(ctx, "Configuration loaded successfully")

	// Verify required directories exist
	if err := ensureDirectories(cfg); err != nil {
		log.Error(ctx, "Failed to create directories: %v", err)
		os.Exit(1)
	}

	// Initialize dependencies
	gen, err := textgen.New(cfg.Notes, log)
	if err != nil {
		log.Error(ctx, "Failed to create text generation service: %v", err)
		os.Exit(1)
	}
	notesSvc := notes.New(cfg.Notes, gen, log)
	tr := transcriber.New(cfg.Transcribe, cfg.Paths.Temp, executor.New(), log)
	proc := processor.New(cfg, tr, notesSvc, log)

	// Create watcher with processor as handler and concurrency control
	w, err := watcher.New(cfg.Paths.Input, proc.Process, log, maxConcurrent)
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		os.Exit(1)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Start watcher in goroutine
	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	log.Info(ctx, "========================================")
	log.Info(ctx, "Pipeline is ready!")
	log.Info(ctx, "Monitoring: %s", cfg.Paths.Input)
	log.Info(ctx, "Output: %s", cfg.Paths.Output)
	log.Info(ctx, "Transcription model: %s", cfg.Transcribe.Model)
	log.Info(ctx, "Notes provider: %s (%s)", cfg.Notes.Provider, cfg.Notes.Model)
	log.Info(ctx, "")
	log.Info(ctx, "Press Ctrl+C to stop")
	log.Info(ctx, "========================================")

	// Wait for shutdown signal or error
	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Watcher error: %v", err)
	}

	// Graceful shutdown
	log.Info(ctx, "Shutting down gracefully...")
	cancel()

	log.Info(ctx, "Pipeline stopped")
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Input,
		cfg.Paths.Output,
		cfg.Paths.Archived,
		cfg.Paths.Temp,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
