package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sumi-techmd/transcrib8/internal/config"
	"github.com/sumi-techmd/transcrib8/internal/httpapi"
	"github.com/sumi-techmd/transcrib8/internal/logger"
	"github.com/sumi-techmd/transcrib8/internal/notes"
	"github.com/sumi-techmd/transcrib8/internal/textgen"
	"github.com/sumi-techmd/transcrib8/internal/transcriber"
	"github.com/sumi-techmd/transcrib8/pkg/executor"
)

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
	log.Info(ctx, "Transcrib8 Backend")
	log.Info(ctx, "========================================")
	log.Info(ctx, "Configuration loaded successfully")

	if err := os.MkdirAll(cfg.Paths.Temp, 0755); err != nil {
		log.Error(ctx, "Failed to create temp directory: %v", err)
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

	router := httpapi.NewRouter(tr, notesSvc, cfg.Server, cfg.Paths.Temp, log)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	log.Info(ctx, "========================================")
	log.Info(ctx, "Transcrib8 backend is ready!")
	log.Info(ctx, "Listening on: http://%s", addr)
	log.Info(ctx, "Transcription model: %s", cfg.Transcribe.Model)
	log.Info(ctx, "Notes provider: %s (%s)", cfg.Notes.Provider, cfg.Notes.Model)
	log.Info(ctx, "Max upload size: %d MB", cfg.Server.MaxUploadMB)
	log.Info(ctx, "")
	log.Info(ctx, "Press Ctrl+C to stop")
	log.Info(ctx, "========================================")

	// Wait for shutdown signal or error
	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Server error: %v", err)
	}

	// Graceful shutdown
	log.Info(ctx, "Shutting down gracefully...")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "Shutdown error: %v", err)
	}

	log.Info(ctx, "Transcrib8 backend stopped")
}
