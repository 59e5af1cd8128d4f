package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/wordtiles/wordtiles-go/internal/api/middleware"
	"github.com/wordtiles/wordtiles-go/internal/api/request"
	"github.com/wordtiles/wordtiles-go/internal/api/response"
	"github.com/wordtiles/wordtiles-go/internal/model"
	"github.com/wordtiles/wordtiles-go/internal/services/game"
	"github.com/wordtiles/wordtiles-go/internal/services/room"
)

// GameHandler handles game-related endpoints
type GameHandler struct {
	roomController *room.Controller
	gameController *game.Controller
}

// NewGameHandler creates a new game handler
func NewGameHandler(roomController *room.Controller, gameController *game.Controller) *GameHandler {
	return &GameHandler{
		roomController: roomController,
		gameController: gameController,
	}
}

// Start handles POST /api/v1/rooms/{code}/game
func (h *GameHandler) Start(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())
	code := model.RoomCode(mux.Vars(r)["code"])

	g, err := h.roomController.StartGame(r.Context(), code, player.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.GameViewFromModel(g, player.ID))
}

// Get handles GET /api/v1/games/{game_id}
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())

	g, err := h.loadGameForPlayer(r, player.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameViewFromModel(g, player.ID))
}

// Place handles POST /api/v1/games/{game_id}/place
func (h *GameHandler) Place(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())
	gameID := model.GameID(mux.Vars(r)["game_id"])

	var req request.PlaceTileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.TileID == "" {
		WriteError(w, NewInvalidRequestError("tile_id is required"))
		return
	}

	pos := model.Position{Row: req.Row, Col: req.Col}
	g, err := h.gameController.PlaceTile(r.Context(), gameID, player.ID, pos, model.TileID(req.TileID))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameViewFromModel(g, player.ID))
}

// AssignBlank handles POST /api/v1/games/{game_id}/blank
func (h *GameHandler) AssignBlank(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())
	gameID := model.GameID(mux.Vars(r)["game_id"])

	var req request.AssignBlankRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.TileID == "" {
		WriteError(w, NewInvalidRequestError("tile_id is required"))
		return
	}

	g, err := h.gameController.AssignBlank(r.Context(), gameID, player.ID, model.TileID(req.TileID), req.Letter)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameViewFromModel(g, player.ID))
}

// Retrieve handles POST /api/v1/games/{game_id}/retrieve
func (h *GameHandler) Retrieve(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())
	gameID := model.GameID(mux.Vars(r)["game_id"])

	g, err := h.gameController.RetrieveAll(r.Context(), gameID, player.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameViewFromModel(g, player.ID))
}

// Shuffle handles POST /api/v1/games/{game_id}/shuffle
func (h *GameHandler) Shuffle(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())
	gameID := model.GameID(mux.Vars(r)["game_id"])

	g, err := h.gameController.ShuffleRack(r.Context(), gameID, player.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameViewFromModel(g, player.ID))
}

// Submit handles POST /api/v1/games/{game_id}/submit
func (h *GameHandler) Submit(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())
	gameID := model.GameID(mux.Vars(r)["game_id"])

	result, err := h.gameController.SubmitMove(r.Context(), gameID, player.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.MoveResponseFromResult(result, player.ID))
}

// Challenge handles POST /api/v1/games/{game_id}/challenge
func (h *GameHandler) Challenge(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())
	gameID := model.GameID(mux.Vars(r)["game_id"])

	result, err := h.gameController.ChallengeMove(r.Context(), gameID, player.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ChallengeResponseFromResult(result, player.ID))
}

// loadGameForPlayer fetches the game and lazily expires a stale
// challenge window so reads always reflect the effective state
func (h *GameHandler) loadGameForPlayer(r *http.Request, playerID model.PlayerID) (*model.Game, error) {
	gameID := model.GameID(mux.Vars(r)["game_id"])

	if _, err := h.gameController.ExpireChallenge(r.Context(), gameID); err != nil {
		return nil, err
	}

	g, err := h.gameController.GetGame(r.Context(), gameID)
	if err != nil {
		return nil, err
	}
	if !g.HasPlayer(playerID) {
		return nil, model.ErrPlayerNotFound
	}
	return g, nil
}
