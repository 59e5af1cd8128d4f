package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/wordtiles/wordtiles-go/internal/api/middleware"
	"github.com/wordtiles/wordtiles-go/internal/api/response"
	"github.com/wordtiles/wordtiles-go/internal/model"
	"github.com/wordtiles/wordtiles-go/internal/services/room"
)

// RoomHandler handles room-related endpoints
type RoomHandler struct {
	roomController *room.Controller
}

// NewRoomHandler creates a new room handler
func NewRoomHandler(roomController *room.Controller) *RoomHandler {
	return &RoomHandler{
		roomController: roomController,
	}
}

// Create handles POST /api/v1/rooms
func (h *RoomHandler) Create(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())

	rm, err := h.roomController.CreateRoom(r.Context(), player.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.RoomFromModel(rm))
}

// Get handles GET /api/v1/rooms/{code}
func (h *RoomHandler) Get(w http.ResponseWriter, r *http.Request) {
	code := model.RoomCode(mux.Vars(r)["code"])

	rm, err := h.roomController.GetRoom(r.Context(), code)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.RoomFromModel(rm))
}

// Join handles POST /api/v1/rooms/{code}/join
func (h *RoomHandler) Join(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())
	code := model.RoomCode(mux.Vars(r)["code"])

	rm, err := h.roomController.JoinRoom(r.Context(), code, player.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.RoomFromModel(rm))
}

// Leave handles POST /api/v1/rooms/{code}/leave
func (h *RoomHandler) Leave(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())
	code := model.RoomCode(mux.Vars(r)["code"])

	if err := h.roomController.LeaveRoom(r.Context(), code, player.ID); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}
