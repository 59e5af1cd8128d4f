package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/wordtiles/wordtiles-go/internal/dependencies/clock"
	"github.com/wordtiles/wordtiles-go/internal/dependencies/random"
	"github.com/wordtiles/wordtiles-go/internal/services/auth"
	"github.com/wordtiles/wordtiles-go/internal/services/dictionary"
	"github.com/wordtiles/wordtiles-go/internal/services/game"
	"github.com/wordtiles/wordtiles-go/internal/services/placement"
	"github.com/wordtiles/wordtiles-go/internal/services/room"
	"github.com/wordtiles/wordtiles-go/internal/services/scoring"
	"github.com/wordtiles/wordtiles-go/internal/services/tiles"
	"github.com/wordtiles/wordtiles-go/internal/storage"
	"github.com/wordtiles/wordtiles-go/internal/storage/memory"
	redisstorage "github.com/wordtiles/wordtiles-go/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	DictionaryService *dictionary.Service
	TilesService      *tiles.Service
	ScoringService    *scoring.Service
	GameController    *game.Controller
	RoomController    *room.Controller
	AuthService       *auth.Service
}

// Config holds configuration for the application factory
type Config struct {
	// AuthConfig holds configuration for the auth service (optional)
	// If zero value, defaults to auth.DefaultConfig()
	AuthConfig auth.Config
	// GameConfig holds game rule settings (optional)
	// If zero value, defaults to game.DefaultConfig()
	GameConfig game.Config
	// WordCacheSize bounds the dictionary lookup cache (optional)
	// If zero, defaults to dictionary.DefaultCacheSize
	WordCacheSize int
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	// Create external dependencies
	clk := clock.New()
	rnd := random.New()

	// Use default auth config if not provided
	authCfg := cfg.AuthConfig
	if authCfg.SessionDuration == 0 {
		authCfg = auth.DefaultConfig()
	}

	// Use default game config if not provided
	gameCfg := cfg.GameConfig
	if gameCfg.ChallengeWindow == 0 {
		gameCfg = game.DefaultConfig()
	}

	return newWithDependencies(store, clk, rnd, authCfg, gameCfg, cfg.WordCacheSize, logger)
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	store storage.Storage,
	clk clock.Clock,
	rnd random.Random,
	authCfg auth.Config,
	gameCfg game.Config,
	wordCacheSize int,
	logger *slog.Logger,
) (*App, error) {
	// Create services
	dictService := dictionary.New(store)
	oracle, err := dictionary.NewCachedOracle(dictService, wordCacheSize)
	if err != nil {
		return nil, err
	}
	tilesService := tiles.New(rnd)
	scoringService := scoring.New()
	validator := placement.NewDefault()
	gameController := game.NewController(store, tilesService, validator, scoringService, oracle, clk, rnd, gameCfg, logger)
	roomController := room.NewController(store, gameController, clk, rnd)
	authService := auth.New(store, clk, authCfg)

	return &App{
		Storage:           store,
		Clock:             clk,
		Random:            rnd,
		DictionaryService: dictService,
		TilesService:      tilesService,
		ScoringService:    scoringService,
		GameController:    gameController,
		RoomController:    roomController,
		AuthService:       authService,
	}, nil
}
