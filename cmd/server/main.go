package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/wordtiles/wordtiles-go/internal/api"
	"github.com/wordtiles/wordtiles-go/internal/factory"
	"github.com/wordtiles/wordtiles-go/internal/services/game"
	redisstorage "github.com/wordtiles/wordtiles-go/internal/storage/redis"
)

func main() {
	// .env is optional; real env vars win either way
	_ = godotenv.Load()

	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	dictionaryPath := os.Getenv("DICTIONARY_PATH")
	if dictionaryPath == "" {
		dictionaryPath = "data/words.txt"
	}

	// Build factory config from environment
	cfg := factory.Config{
		Logger:      logger,
		StorageType: os.Getenv("STORAGE_TYPE"),
		GameConfig:  gameConfigFromEnv(logger),
	}

	// Configure Redis if storage type is redis
	if cfg.StorageType == factory.StorageTypeRedis {
		redisURL := os.Getenv("REDIS_URL")
		if redisURL == "" {
			logger.Error("REDIS_URL required when STORAGE_TYPE=redis")
			os.Exit(1)
		}
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = redisURL
		cfg.RedisConfig = &redisCfg
	}

	// Create application factory
	app, err := factory.New(cfg)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Load dictionary: storage first, file as fallback
	ctx := context.Background()
	if err := app.DictionaryService.LoadFromStorage(ctx); err != nil {
		logger.Info("no dictionary in storage, loading from file",
			slog.String("path", dictionaryPath))
		if err := app.DictionaryService.LoadFromFile(ctx, dictionaryPath); err != nil {
			logger.Warn("could not load dictionary, challenges will treat all words as valid",
				slog.String("error", err.Error()))
		}
	}
	if app.DictionaryService.IsLoaded() {
		logger.Info("dictionary loaded", slog.Int("words", app.DictionaryService.WordCount()))
	}

	// Create API router
	router := api.NewRouter(api.RouterConfig{
		Logger:         logger,
		AuthService:    app.AuthService,
		RoomController: app.RoomController,
		GameController: app.GameController,
	})

	// Create server
	serverConfig := api.DefaultServerConfig()
	if port := os.Getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			logger.Error("invalid PORT", slog.String("port", port))
			os.Exit(1)
		}
		serverConfig.Port = p
	}
	server := api.NewServer(router, serverConfig, logger)

	// Handle graceful shutdown
	shutdownCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutdown signal received")
		cancel()
	}()

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started", slog.String("addr", server.Addr()))

	// Wait for shutdown or error
	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case <-shutdownCtx.Done():
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("server stopped")
}

// gameConfigFromEnv reads game rule overrides from the environment
func gameConfigFromEnv(logger *slog.Logger) game.Config {
	cfg := game.DefaultConfig()

	if window := os.Getenv("CHALLENGE_WINDOW"); window != "" {
		d, err := time.ParseDuration(window)
		if err != nil {
			logger.Warn("invalid CHALLENGE_WINDOW, using default",
				slog.String("value", window))
		} else {
			cfg.ChallengeWindow = d
		}
	}

	if v := os.Getenv("CHALLENGER_LOSES_TURN"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			logger.Warn("invalid CHALLENGER_LOSES_TURN, using default",
				slog.String("value", v))
		} else {
			cfg.ChallengerLosesTurn = b
		}
	}

	return cfg
}
