package handler

import (
	"net/http"

	"github.com/wordtiles/wordtiles-go/internal/api/apierr"
)

// Re-export from apierr for convenience
type APIError = apierr.APIError
type ErrorResponse = apierr.ErrorResponse

// Re-export error codes
const (
	CodeInvalidRequest      = apierr.CodeInvalidRequest
	CodeInvalidPlacement    = apierr.CodeInvalidPlacement
	CodeInvalidLetter       = apierr.CodeInvalidLetter
	CodeInvalidPosition     = apierr.CodeInvalidPosition
	CodeUnauthorized        = apierr.CodeUnauthorized
	CodeNotHost             = apierr.CodeNotHost
	CodeNotYourTurn         = apierr.CodeNotYourTurn
	CodePlayerNotFound      = apierr.CodePlayerNotFound
	CodeRoomNotFound        = apierr.CodeRoomNotFound
	CodeGameNotFound        = apierr.CodeGameNotFound
	CodeAlreadyInRoom       = apierr.CodeAlreadyInRoom
	CodeNotInRoom           = apierr.CodeNotInRoom
	CodeRoomFull            = apierr.CodeRoomFull
	CodeGameInProgress      = apierr.CodeGameInProgress
	CodeNoGameInProgress    = apierr.CodeNoGameInProgress
	CodeCellOccupied        = apierr.CodeCellOccupied
	CodeTileNotOnRack       = apierr.CodeTileNotOnRack
	CodeNotBlankTile        = apierr.CodeNotBlankTile
	CodeNoActiveChallenge   = apierr.CodeNoActiveChallenge
	CodeChallengeOwnMove    = apierr.CodeChallengeOwnMove
	CodeConflict            = apierr.CodeConflict
	CodeInsufficientPlayers = apierr.CodeInsufficientPlayers
	CodeUsernameExists      = apierr.CodeUsernameExists
	CodeInvalidCredentials  = apierr.CodeInvalidCredentials
	CodeInternalError       = apierr.CodeInternalError
)

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	apierr.WriteError(w, err)
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return apierr.NewInvalidRequestError(message)
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return apierr.NewUnauthorizedError()
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return apierr.NewInternalError()
}
