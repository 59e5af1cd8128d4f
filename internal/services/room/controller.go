package room

import (
	"context"

	"github.com/wordtiles/wordtiles-go/internal/dependencies/clock"
	"github.com/wordtiles/wordtiles-go/internal/dependencies/random"
	"github.com/wordtiles/wordtiles-go/internal/model"
	"github.com/wordtiles/wordtiles-go/internal/services/game"
	"github.com/wordtiles/wordtiles-go/internal/storage"
)

const (
	// RoomCodeLength is the length of generated room codes
	RoomCodeLength = 6
	// RoomCodeAlphabet is the characters used in room codes (avoids confusing chars)
	RoomCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
)

// Controller manages room rosters and game lifecycle within a room
type Controller struct {
	storage        storage.Storage
	gameController *game.Controller
	clock          clock.Clock
	random         random.Random
}

// NewController creates a new room controller
func NewController(
	storage storage.Storage,
	gameController *game.Controller,
	clock clock.Clock,
	random random.Random,
) *Controller {
	return &Controller{
		storage:        storage,
		gameController: gameController,
		clock:          clock,
		random:         random,
	}
}

// CreateRoom creates a new room hosted by the given player
func (c *Controller) CreateRoom(ctx context.Context, hostID model.PlayerID) (*model.Room, error) {
	now := c.clock.Now()

	// Generate a unique room code
	var code model.RoomCode
	for {
		code = model.RoomCode(c.random.String(RoomCodeLength, RoomCodeAlphabet))
		exists, err := c.storage.RoomExists(ctx, code)
		if err != nil {
			return nil, err
		}
		if !exists {
			break
		}
	}

	room := &model.Room{
		Code:      code,
		HostID:    hostID,
		Players:   []model.PlayerID{hostID},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := c.storage.SaveRoom(ctx, room); err != nil {
		return nil, err
	}

	return room, nil
}

// GetRoom retrieves a room by code
func (c *Controller) GetRoom(ctx context.Context, code model.RoomCode) (*model.Room, error) {
	return c.storage.GetRoom(ctx, code)
}

// JoinRoom adds a player to a room's roster
func (c *Controller) JoinRoom(ctx context.Context, code model.RoomCode, playerID model.PlayerID) (*model.Room, error) {
	room, err := c.storage.GetRoom(ctx, code)
	if err != nil {
		return nil, err
	}

	if room.HasPlayer(playerID) {
		return nil, model.ErrAlreadyInRoom
	}
	if room.CurrentGame != nil {
		return nil, model.ErrGameInProgress
	}
	if room.Full() {
		return nil, model.ErrRoomFull
	}

	room.Players = append(room.Players, playerID)
	room.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveRoom(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

// LeaveRoom removes a player from a room. An empty room is deleted;
// if the host leaves, the next player becomes host.
func (c *Controller) LeaveRoom(ctx context.Context, code model.RoomCode, playerID model.PlayerID) error {
	room, err := c.storage.GetRoom(ctx, code)
	if err != nil {
		return err
	}

	if !room.HasPlayer(playerID) {
		return model.ErrNotInRoom
	}
	if room.CurrentGame != nil {
		return model.ErrGameInProgress
	}

	for i, p := range room.Players {
		if p == playerID {
			room.Players = append(room.Players[:i], room.Players[i+1:]...)
			break
		}
	}

	if len(room.Players) == 0 {
		return c.storage.DeleteRoom(ctx, code)
	}

	if room.HostID == playerID {
		room.HostID = room.Players[0]
	}
	room.UpdatedAt = c.clock.Now()

	return c.storage.SaveRoom(ctx, room)
}

// StartGame begins a game with the room's current roster. Host only.
func (c *Controller) StartGame(ctx context.Context, code model.RoomCode, requestingPlayer model.PlayerID) (*model.Game, error) {
	room, err := c.storage.GetRoom(ctx, code)
	if err != nil {
		return nil, err
	}

	if room.HostID != requestingPlayer {
		return nil, model.ErrNotHost
	}
	if room.CurrentGame != nil {
		return nil, model.ErrGameInProgress
	}

	g, err := c.gameController.CreateGame(ctx, code, room.Players)
	if err != nil {
		return nil, err
	}

	room.CurrentGame = &g.ID
	room.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveRoom(ctx, room); err != nil {
		return nil, err
	}

	return g, nil
}

// EndGame clears the room's current game so a new one can start. Host only.
func (c *Controller) EndGame(ctx context.Context, code model.RoomCode, requestingPlayer model.PlayerID) error {
	room, err := c.storage.GetRoom(ctx, code)
	if err != nil {
		return err
	}

	if room.HostID != requestingPlayer {
		return model.ErrNotHost
	}
	if room.CurrentGame == nil {
		return model.ErrNoGameInProgress
	}

	room.CurrentGame = nil
	room.UpdatedAt = c.clock.Now()

	return c.storage.SaveRoom(ctx, room)
}

// Interface for dependency injection
type ControllerInterface interface {
	CreateRoom(ctx context.Context, hostID model.PlayerID) (*model.Room, error)
	GetRoom(ctx context.Context, code model.RoomCode) (*model.Room, error)
	JoinRoom(ctx context.Context, code model.RoomCode, playerID model.PlayerID) (*model.Room, error)
	LeaveRoom(ctx context.Context, code model.RoomCode, playerID model.PlayerID) error
	StartGame(ctx context.Context, code model.RoomCode, requestingPlayer model.PlayerID) (*model.Game, error)
	EndGame(ctx context.Context, code model.RoomCode, requestingPlayer model.PlayerID) error
}

var _ ControllerInterface = (*Controller)(nil)
