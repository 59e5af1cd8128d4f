package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/wordtiles/wordtiles-go/internal/api/handler"
	"github.com/wordtiles/wordtiles-go/internal/api/middleware"
	"github.com/wordtiles/wordtiles-go/internal/services/auth"
	"github.com/wordtiles/wordtiles-go/internal/services/game"
	"github.com/wordtiles/wordtiles-go/internal/services/room"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger         *slog.Logger
	AuthService    *auth.Service
	RoomController *room.Controller
	GameController *game.Controller
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	playerHandler := handler.NewPlayerHandler(cfg.AuthService)
	roomHandler := handler.NewRoomHandler(cfg.RoomController)
	gameHandler := handler.NewGameHandler(cfg.RoomController, cfg.GameController)

	// Create middleware
	authMiddleware := middleware.Auth(cfg.AuthService)
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Player routes (no auth required for creating players/logging in)
	api.HandleFunc("/players/guest", playerHandler.CreateGuest).Methods(http.MethodPost)
	api.HandleFunc("/players/register", playerHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/players/login", playerHandler.Login).Methods(http.MethodPost)

	// Protected player routes
	playerProtected := api.PathPrefix("/players").Subrouter()
	playerProtected.Use(authMiddleware)
	playerProtected.HandleFunc("/me", playerHandler.GetMe).Methods(http.MethodGet)

	// Room routes (all require auth)
	rooms := api.PathPrefix("/rooms").Subrouter()
	rooms.Use(authMiddleware)
	rooms.HandleFunc("", roomHandler.Create).Methods(http.MethodPost)
	rooms.HandleFunc("/{code}", roomHandler.Get).Methods(http.MethodGet)
	rooms.HandleFunc("/{code}/join", roomHandler.Join).Methods(http.MethodPost)
	rooms.HandleFunc("/{code}/leave", roomHandler.Leave).Methods(http.MethodPost)
	rooms.HandleFunc("/{code}/game", gameHandler.Start).Methods(http.MethodPost)

	// Game routes (all require auth)
	games := api.PathPrefix("/games").Subrouter()
	games.Use(authMiddleware)
	games.HandleFunc("/{game_id}", gameHandler.Get).Methods(http.MethodGet)
	games.HandleFunc("/{game_id}/place", gameHandler.Place).Methods(http.MethodPost)
	games.HandleFunc("/{game_id}/blank", gameHandler.AssignBlank).Methods(http.MethodPost)
	games.HandleFunc("/{game_id}/retrieve", gameHandler.Retrieve).Methods(http.MethodPost)
	games.HandleFunc("/{game_id}/shuffle", gameHandler.Shuffle).Methods(http.MethodPost)
	games.HandleFunc("/{game_id}/submit", gameHandler.Submit).Methods(http.MethodPost)
	games.HandleFunc("/{game_id}/challenge", gameHandler.Challenge).Methods(http.MethodPost)

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
