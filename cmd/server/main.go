package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/Kamar-Folarin/github-commit-graph/internal/api"
	"github.com/Kamar-Folarin/github-commit-graph/internal/config"
	"github.com/Kamar-Folarin/github-commit-graph/internal/github"
	"github.com/Kamar-Folarin/github-commit-graph/internal/graph"
	"github.com/Kamar-Folarin/github-commit-graph/internal/timeutil"

	_ "github.com/Kamar-Folarin/github-commit-graph/docs"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
	})
	logger.SetOutput(os.Stdout)

	// Load environment variables
	if err := godotenv.Load(); err != nil {
		logger.Info("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatalf("Invalid configuration: %v", err)
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.Warnf("Unknown LOG_LEVEL %q, using info", cfg.LogLevel)
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
	if level < logrus.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}

	normalizer, err := timeutil.LoadNormalizer(cfg.LocalTimezone)
	if err != nil {
		logger.Fatalf("Invalid configuration: %v", err)
	}

	client, err := github.NewGitHubClient(cfg.GitHub.Token, logger,
		github.WithBaseURL(cfg.GitHub.APIBaseURL),
		github.WithTimeout(cfg.RequestTimeout()),
	)
	if err != nil {
		logger.Fatalf("Failed to create GitHub client: %v", err)
	}

	renderer, err := graph.NewRenderer(graph.WithCellSize(cfg.GraphCellSize))
	if err != nil {
		logger.Fatalf("Failed to create graph renderer: %v", err)
	}

	handler := api.NewHandler(client, renderer, normalizer, logger)
	router := api.SetupRouter(handler, logger)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      api.WithCORS(router),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 2 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.WithFields(logrus.Fields{
			"port":     cfg.Port,
			"timezone": normalizer.Location().String(),
			"api_url":  cfg.GitHub.APIBaseURL,
		}).Info("Server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Server failed: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Errorf("Server shutdown failed: %v", err)
	}
	logger.Info("Server exited properly")
}
