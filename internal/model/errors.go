package model

import (
	"errors"
	"fmt"
)

// Common errors used across the application
var (
	// Player errors
	ErrPlayerNotFound = errors.New("player not found")

	// Room errors
	ErrRoomNotFound        = errors.New("room not found")
	ErrRoomFull            = errors.New("room is full")
	ErrAlreadyInRoom       = errors.New("player is already in room")
	ErrNotInRoom           = errors.New("player is not in room")
	ErrNotHost             = errors.New("player is not the host")
	ErrGameInProgress      = errors.New("game is in progress")
	ErrNoGameInProgress    = errors.New("no game in progress")
	ErrInsufficientPlayers = errors.New("insufficient players to start game")

	// Game errors
	ErrGameNotFound    = errors.New("game not found")
	ErrNotYourTurn     = errors.New("not this player's turn")
	ErrInvalidLetter   = errors.New("invalid letter")
	ErrInvalidPosition = errors.New("invalid board position")
	ErrCellOccupied    = errors.New("cell is already occupied")
	ErrTileNotOnRack   = errors.New("tile is not on the player's rack")
	ErrNotBlankTile    = errors.New("tile is not a blank")

	// Challenge errors
	ErrNoActiveChallenge = errors.New("no move is open to challenge")
	ErrChallengeOwnMove  = errors.New("cannot challenge your own move")

	// Storage errors
	ErrConcurrencyConflict = errors.New("game was modified concurrently")

	// Dictionary errors
	ErrDictionaryNotLoaded = errors.New("dictionary not loaded")
	ErrOracleUnavailable   = errors.New("dictionary oracle unavailable")
)

// InvalidPlacementError explains why a staged move cannot be submitted
type InvalidPlacementError struct {
	Reason string
}

func (e *InvalidPlacementError) Error() string {
	return fmt.Sprintf("invalid placement: %s", e.Reason)
}
