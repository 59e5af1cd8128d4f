package storage

import (
	"context"

	"github.com/wordtiles/wordtiles-go/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// Player operations
	SavePlayer(ctx context.Context, player *model.Player) error
	GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error)
	DeletePlayer(ctx context.Context, id model.PlayerID) error

	// Registered player operations
	SaveRegisteredPlayer(ctx context.Context, rp *model.RegisteredPlayer) error
	GetRegisteredPlayer(ctx context.Context, playerID model.PlayerID) (*model.RegisteredPlayer, error)
	GetRegisteredPlayerByUsername(ctx context.Context, username string) (*model.RegisteredPlayer, error)

	// Room operations
	SaveRoom(ctx context.Context, room *model.Room) error
	GetRoom(ctx context.Context, code model.RoomCode) (*model.Room, error)
	DeleteRoom(ctx context.Context, code model.RoomCode) error
	RoomExists(ctx context.Context, code model.RoomCode) (bool, error)

	// Game operations.
	// SaveGame is compare-and-commit on Game.Version: the save succeeds
	// only if the stored version still matches, and bumps the version on
	// success (including the caller's copy). A stale save returns
	// model.ErrConcurrencyConflict; callers should refetch and retry.
	SaveGame(ctx context.Context, game *model.Game) error
	GetGame(ctx context.Context, id model.GameID) (*model.Game, error)
	DeleteGame(ctx context.Context, id model.GameID) error

	// Dictionary operations
	GetDictionaryWords(ctx context.Context) ([]string, error)
	SaveDictionaryWords(ctx context.Context, words []string) error
}
