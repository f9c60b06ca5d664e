package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/trebekbot/trebekbot/internal/config"
	"github.com/trebekbot/trebekbot/internal/database"
	"github.com/trebekbot/trebekbot/internal/directory"
	"github.com/trebekbot/trebekbot/internal/game"
	"github.com/trebekbot/trebekbot/internal/handlers"
	"github.com/trebekbot/trebekbot/internal/middleware"
	"github.com/trebekbot/trebekbot/internal/repositories"
	"github.com/trebekbot/trebekbot/internal/slack"
	"github.com/trebekbot/trebekbot/internal/store"
	"github.com/trebekbot/trebekbot/internal/trivia"
	"github.com/trebekbot/trebekbot/pkg/logger"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}

	logger.Init()
	defer logger.Sync()

	logger.Info("Starting trebekbot...")

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("Failed to load config", err)
	}
	logger.SetLevel(cfg.LogLevel)

	if cfg.AppEnv == "production" {
		if err := cfg.ValidateProductionSecurity(); err != nil {
			logger.Fatal("Production security validation failed", err)
		}
		logger.Info("Production security validation passed")
		gin.SetMode(gin.ReleaseMode)
	}

	kv, err := openStore(cfg)
	if err != nil {
		logger.Fatal("Failed to open store", err)
	}
	defer kv.Close()

	httpClient := &http.Client{Timeout: cfg.GetHTTPTimeout()}

	provider, err := newProvider(cfg, httpClient)
	if err != nil {
		logger.Fatal("Failed to set up trivia provider", err)
	}

	var names directory.Resolver = directory.Passthrough{}
	if cfg.APIToken != "" {
		names = directory.NewCached(kv, directory.NewSlack(httpClient, cfg.APIToken))
	}

	controller := game.NewController(
		repositories.NewRoundRepository(kv),
		repositories.NewScoreRepository(kv),
		provider,
		names,
		game.Options{
			BotUsername:         cfg.BotUsername,
			MaxProviderAttempts: cfg.ProviderMaxAttempts,
		},
	)

	limiter := middleware.NewRateLimiter(cfg.RateLimitPerUser, cfg.RateLimitPerIP, cfg.GetRateLimitWindow())
	defer limiter.Stop()

	webhook := handlers.NewWebhookHandler(controller, cfg.WebhookToken, slack.Responder{
		Username:  cfg.BotUsername,
		IconEmoji: cfg.BotIcon,
	})

	server := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           handlers.NewRouter(webhook, kv, limiter),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Listening for Slack webhooks", "port", cfg.AppPort, "env", cfg.AppEnv, "store", cfg.StoreBackend)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server failed", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown failed", "error", err)
	}
	logger.Info("Server stopped")
}

func openStore(cfg *config.Config) (store.Backend, error) {
	if cfg.StoreBackend == config.StoreRedis {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.GetHTTPTimeout())
		defer cancel()

		client, err := database.ConnectRedis(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return store.NewRedis(client), nil
	}

	db, err := database.Connect(cfg)
	if err != nil {
		return nil, err
	}
	if err := database.AutoMigrate(db); err != nil {
		return nil, err
	}
	return store.NewSQL(db), nil
}

func newProvider(cfg *config.Config, client *http.Client) (trivia.Provider, error) {
	if cfg.QuestionsXLSX == "" {
		logger.Info("Using jService trivia provider", "url", cfg.TriviaAPIURL)
		return trivia.NewJService(client, cfg.TriviaAPIURL), nil
	}

	bank, err := trivia.LoadSpreadsheet(cfg.QuestionsXLSX)
	if err != nil {
		return nil, err
	}
	logger.Info("Using spreadsheet trivia provider", "path", cfg.QuestionsXLSX, "questions", bank.Len())
	return bank, nil
}
