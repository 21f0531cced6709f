package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"smb-task-tracker/config"
	_ "smb-task-tracker/docs" // Swagger docs
	"smb-task-tracker/internal/extraction/usecase"
	"smb-task-tracker/internal/httpserver"
	"smb-task-tracker/pkg/llmprovider"
	"smb-task-tracker/pkg/log"
	"smb-task-tracker/pkg/transcribe"
)

// @title       SMB Task Tracker Extraction API
// @description Converts typed text, voicemail transcriptions, pasted content, and audio recordings into structured tasks and subtasks.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting SMB Task Tracker...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. LLM providers (optional: empty list runs the pipeline in echo mode)
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		return
	}

	var generator usecase.Generator
	if len(providers) > 0 {
		generator = llmprovider.NewManager(providers, &llmprovider.Config{
			FallbackEnabled: cfg.LLM.FallbackEnabled,
		}, logger)
		logger.Infof(ctx, "LLM providers configured: %d", len(providers))
	} else {
		logger.Warn(ctx, "No LLM providers configured, extraction runs in echo mode")
	}

	// 4. Transcriber (optional: audio endpoint returns 501 when absent)
	var transcriber transcribe.ITranscriber
	transcriber, err = transcribe.New(transcribe.Config{
		APIKey:  cfg.Transcription.APIKey,
		Model:   cfg.Transcription.Model,
		BaseURL: cfg.Transcription.BaseURL,
	})
	if err != nil {
		if !errors.Is(err, transcribe.ErrNotConfigured) {
			logger.Error(ctx, "Failed to initialize transcriber: ", err)
			return
		}
		logger.Warn(ctx, "Transcription not configured, audio endpoint disabled")
		transcriber = nil
	}

	// 5. Extraction usecase
	extractionUC := usecase.New(logger, generator, transcriber)

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		RateLimitPerMin: cfg.Extraction.RateLimitPerMin,
		ExtractionUC:    extractionUC,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
