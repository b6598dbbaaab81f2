package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MervynChew/Grab-Voice-AI-Chat/config"
	_ "github.com/MervynChew/Grab-Voice-AI-Chat/docs" // Swagger docs
	"github.com/MervynChew/Grab-Voice-AI-Chat/internal/catalog"
	chatHTTP "github.com/MervynChew/Grab-Voice-AI-Chat/internal/chat/delivery/http"
	chatUC "github.com/MervynChew/Grab-Voice-AI-Chat/internal/chat/usecase"
	"github.com/MervynChew/Grab-Voice-AI-Chat/internal/httpserver"
	"github.com/MervynChew/Grab-Voice-AI-Chat/internal/middleware"
	"github.com/MervynChew/Grab-Voice-AI-Chat/internal/recommend"
	"github.com/MervynChew/Grab-Voice-AI-Chat/internal/router"
	"github.com/MervynChew/Grab-Voice-AI-Chat/internal/scoring"
	"github.com/MervynChew/Grab-Voice-AI-Chat/internal/session"
	"github.com/MervynChew/Grab-Voice-AI-Chat/pkg/gemini"
	"github.com/MervynChew/Grab-Voice-AI-Chat/pkg/log"
	"github.com/MervynChew/Grab-Voice-AI-Chat/pkg/speech"
)

// @title       Grab Voice AI Chat API
// @description Voice-driven assistant for drivers: intent routing, order/ride recommendations, and generative fallback.
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

	logger.Info(ctx, "Starting Grab Voice AI Chat...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Catalog
	data, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		logger.Errorf(ctx, "Failed to load catalog %s: %v", cfg.Catalog.Path, err)
		return
	}
	store := catalog.New(data)
	logger.Infof(ctx, "Catalog loaded: %d orders, %d rides", len(store.Orders()), len(store.Rides()))

	// 4. Scoring, formatting, routing
	engine := scoring.New(scoring.Config{
		MaxReward:          cfg.Scoring.MaxReward,
		HighThreshold:      cfg.Scoring.HighThreshold,
		RecommendThreshold: cfg.Scoring.RecommendThreshold,
	})
	formatter := recommend.New(engine, cfg.Scoring.TopK)
	ruleRouter := router.New(logger)

	// 5. Collaborators
	geminiClient := gemini.NewClient(cfg.Gemini.APIKey)
	if cfg.Gemini.Model != "" {
		geminiClient.SetModel(cfg.Gemini.Model)
	}

	var transcriber speech.Transcriber
	if cfg.Speech.CredentialsPath != "" {
		speechClient, spErr := speech.NewClientFromCredentialsFile(ctx, cfg.Speech.CredentialsPath)
		if spErr != nil {
			logger.Warnf(ctx, "Speech-to-Text not available (optional): %v", spErr)
		} else {
			transcriber = speechClient
			logger.Info(ctx, "Speech-to-Text initialized")
		}
	} else {
		logger.Warn(ctx, "SPEECH_CREDENTIALS not set, transcription disabled")
	}

	// 6. Sessions
	sessions := session.New(cfg.Session.Size, cfg.Session.TTL)

	// 7. Chat domain
	uc := chatUC.New(logger, geminiClient, transcriber, store, formatter, ruleRouter, sessions, cfg.Gemini.FallbackTimeout)
	chatHandler := chatHTTP.New(logger, uc)

	// 8. HTTP Server
	mw := middleware.New(logger, middleware.Config{
		RatePerSecond: cfg.RateLimit.PerSecond,
		Burst:         cfg.RateLimit.Burst,
	})

	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware:  mw,
		ChatHandler: chatHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
