package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/wordtiles/wordtiles-go/internal/model"
	"github.com/wordtiles/wordtiles-go/internal/services/auth"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest      = "INVALID_REQUEST"
	CodeInvalidPlacement    = "INVALID_PLACEMENT"
	CodeInvalidLetter       = "INVALID_LETTER"
	CodeInvalidPosition     = "INVALID_POSITION"
	CodeUnauthorized        = "UNAUTHORIZED"
	CodeNotHost             = "NOT_HOST"
	CodeNotYourTurn         = "NOT_YOUR_TURN"
	CodePlayerNotFound      = "PLAYER_NOT_FOUND"
	CodeRoomNotFound        = "ROOM_NOT_FOUND"
	CodeGameNotFound        = "GAME_NOT_FOUND"
	CodeAlreadyInRoom       = "ALREADY_IN_ROOM"
	CodeNotInRoom           = "NOT_IN_ROOM"
	CodeRoomFull            = "ROOM_FULL"
	CodeGameInProgress      = "GAME_IN_PROGRESS"
	CodeNoGameInProgress    = "NO_GAME_IN_PROGRESS"
	CodeCellOccupied        = "CELL_OCCUPIED"
	CodeTileNotOnRack       = "TILE_NOT_ON_RACK"
	CodeNotBlankTile        = "NOT_BLANK_TILE"
	CodeNoActiveChallenge   = "NO_ACTIVE_CHALLENGE"
	CodeChallengeOwnMove    = "CHALLENGE_OWN_MOVE"
	CodeConflict            = "CONFLICT"
	CodeInsufficientPlayers = "INSUFFICIENT_PLAYERS"
	CodeUsernameExists      = "USERNAME_EXISTS"
	CodeInvalidCredentials  = "INVALID_CREDENTIALS"
	CodeInternalError       = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Placement rejections carry their reason through to the client
	var placementErr *model.InvalidPlacementError
	if errors.As(err, &placementErr) {
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidPlacement, placementErr.Error()}}
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePlayerNotFound, "Player not found"}}
	case errors.Is(err, model.ErrRoomNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeRoomNotFound, "Room not found"}}
	case errors.Is(err, model.ErrGameNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeGameNotFound, "Game not found"}}
	case errors.Is(err, model.ErrAlreadyInRoom):
		return &httpError{http.StatusConflict, APIError{CodeAlreadyInRoom, "Already in this room"}}
	case errors.Is(err, model.ErrNotInRoom):
		return &httpError{http.StatusNotFound, APIError{CodeNotInRoom, "Not in this room"}}
	case errors.Is(err, model.ErrRoomFull):
		return &httpError{http.StatusConflict, APIError{CodeRoomFull, "Room is full"}}
	case errors.Is(err, model.ErrNotHost):
		return &httpError{http.StatusForbidden, APIError{CodeNotHost, "Only the host can perform this action"}}
	case errors.Is(err, model.ErrGameInProgress):
		return &httpError{http.StatusConflict, APIError{CodeGameInProgress, "Game is in progress"}}
	case errors.Is(err, model.ErrNoGameInProgress):
		return &httpError{http.StatusNotFound, APIError{CodeNoGameInProgress, "No game in progress"}}
	case errors.Is(err, model.ErrInsufficientPlayers):
		return &httpError{http.StatusConflict, APIError{CodeInsufficientPlayers, "Not enough players to start"}}
	case errors.Is(err, model.ErrNotYourTurn):
		return &httpError{http.StatusForbidden, APIError{CodeNotYourTurn, "Not your turn"}}
	case errors.Is(err, model.ErrInvalidLetter):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidLetter, "Letter must be A-Z"}}
	case errors.Is(err, model.ErrInvalidPosition):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidPosition, "Invalid board position"}}
	case errors.Is(err, model.ErrCellOccupied):
		return &httpError{http.StatusConflict, APIError{CodeCellOccupied, "Cell is already occupied"}}
	case errors.Is(err, model.ErrTileNotOnRack):
		return &httpError{http.StatusNotFound, APIError{CodeTileNotOnRack, "Tile is not on your rack"}}
	case errors.Is(err, model.ErrNotBlankTile):
		return &httpError{http.StatusBadRequest, APIError{CodeNotBlankTile, "Tile is not a blank"}}
	case errors.Is(err, model.ErrNoActiveChallenge):
		return &httpError{http.StatusConflict, APIError{CodeNoActiveChallenge, "No move is open to challenge"}}
	case errors.Is(err, model.ErrChallengeOwnMove):
		return &httpError{http.StatusForbidden, APIError{CodeChallengeOwnMove, "Cannot challenge your own move"}}
	case errors.Is(err, model.ErrConcurrencyConflict):
		return &httpError{http.StatusConflict, APIError{CodeConflict, "Game was modified concurrently, retry"}}

	// Map auth errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		return &httpError{http.StatusUnauthorized, APIError{CodeInvalidCredentials, "Invalid username or password"}}
	case errors.Is(err, auth.ErrInvalidSession):
		return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Invalid or expired session"}}
	case errors.Is(err, auth.ErrUsernameExists):
		return &httpError{http.StatusConflict, APIError{CodeUsernameExists, "Username already exists"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Authentication required"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
