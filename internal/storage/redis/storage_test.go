package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/wordtiles/wordtiles-go/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	cfg := DefaultConfig()
	cfg.GuestPlayerTTL = time.Hour
	cfg.RoomTTL = time.Hour
	cfg.GameTTL = time.Hour

	s.storage = NewWithClient(client, cfg)
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

// Player tests

func (s *StorageSuite) TestSaveAndGetPlayer() {
	player := &model.Player{
		ID:          "player-1",
		DisplayName: "Alice",
		IsGuest:     false,
		CreatedAt:   time.Now(),
	}

	err := s.storage.SavePlayer(s.ctx, player)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetPlayer(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Equal(player.ID, retrieved.ID)
	s.Equal(player.DisplayName, retrieved.DisplayName)
}

func (s *StorageSuite) TestGetPlayerNotFound() {
	_, err := s.storage.GetPlayer(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestDeletePlayer() {
	player := &model.Player{ID: "player-1", DisplayName: "Alice"}
	_ = s.storage.SavePlayer(s.ctx, player)

	err := s.storage.DeletePlayer(s.ctx, "player-1")
	s.Require().NoError(err)

	_, err = s.storage.GetPlayer(s.ctx, "player-1")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestGuestPlayerHasTTL() {
	guest := &model.Player{ID: "guest-1", DisplayName: "Guest", IsGuest: true}
	_ = s.storage.SavePlayer(s.ctx, guest)

	ttl := s.mini.TTL(playerKey("guest-1"))
	s.Equal(time.Hour, ttl)
}

func (s *StorageSuite) TestRegisteredPlayerNoTTL() {
	player := &model.Player{ID: "player-1", DisplayName: "Alice", IsGuest: false}
	_ = s.storage.SavePlayer(s.ctx, player)

	ttl := s.mini.TTL(playerKey("player-1"))
	s.Equal(time.Duration(0), ttl)
}

// Registered player tests

func (s *StorageSuite) TestSaveAndGetRegisteredPlayer() {
	rp := &model.RegisteredPlayer{
		PlayerID:     "player-1",
		Username:     "alice",
		PasswordHash: "hash123",
		CreatedAt:    time.Now(),
	}

	err := s.storage.SaveRegisteredPlayer(s.ctx, rp)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetRegisteredPlayer(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Equal(rp.Username, retrieved.Username)
}

func (s *StorageSuite) TestGetRegisteredPlayerByUsername() {
	rp := &model.RegisteredPlayer{
		PlayerID:     "player-1",
		Username:     "alice",
		PasswordHash: "hash123",
	}
	_ = s.storage.SaveRegisteredPlayer(s.ctx, rp)

	retrieved, err := s.storage.GetRegisteredPlayerByUsername(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal("player-1", string(retrieved.PlayerID))
}

func (s *StorageSuite) TestGetRegisteredPlayerByUsernameNotFound() {
	_, err := s.storage.GetRegisteredPlayerByUsername(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

// Room tests

func (s *StorageSuite) TestSaveAndGetRoom() {
	room := &model.Room{
		Code:      "ABC123",
		HostID:    "player-1",
		Players:   []model.PlayerID{"player-1", "player-2"},
		CreatedAt: time.Now(),
	}

	err := s.storage.SaveRoom(s.ctx, room)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetRoom(s.ctx, "ABC123")
	s.Require().NoError(err)
	s.Equal(room.Code, retrieved.Code)
	s.Equal(room.Players, retrieved.Players)
}

func (s *StorageSuite) TestGetRoomNotFound() {
	_, err := s.storage.GetRoom(s.ctx, "NONEXISTENT")
	s.ErrorIs(err, model.ErrRoomNotFound)
}

func (s *StorageSuite) TestRoomExists() {
	room := &model.Room{Code: "ABC123", HostID: "player-1"}
	_ = s.storage.SaveRoom(s.ctx, room)

	exists, err := s.storage.RoomExists(s.ctx, "ABC123")
	s.Require().NoError(err)
	s.True(exists)

	exists, err = s.storage.RoomExists(s.ctx, "NONEXISTENT")
	s.Require().NoError(err)
	s.False(exists)
}

func (s *StorageSuite) TestDeleteRoom() {
	room := &model.Room{Code: "ABC123", HostID: "player-1"}
	_ = s.storage.SaveRoom(s.ctx, room)

	err := s.storage.DeleteRoom(s.ctx, "ABC123")
	s.Require().NoError(err)

	_, err = s.storage.GetRoom(s.ctx, "ABC123")
	s.ErrorIs(err, model.ErrRoomNotFound)
}

// Game tests

func newTestGame(id model.GameID) *model.Game {
	return &model.Game{
		ID:       id,
		RoomCode: "ABC123",
		Players:  []model.PlayerID{"p1", "p2"},
		Racks: map[model.PlayerID][]model.Tile{
			"p1": {{ID: "tile-1", Letter: "A", Value: 1}},
			"p2": {{ID: "tile-2", Letter: "B", Value: 3}},
		},
		Scores: map[model.PlayerID]int{"p1": 0, "p2": 0},
		Board:  model.NewBoard(),
		Bag:    []model.Tile{{ID: "tile-3", Letter: "C", Value: 3}},
		Staged: map[model.PlayerID][]model.PlacedTile{},
	}
}

func (s *StorageSuite) TestSaveAndGetGame() {
	game := newTestGame("game-1")

	err := s.storage.SaveGame(s.ctx, game)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetGame(s.ctx, "game-1")
	s.Require().NoError(err)
	s.Equal(game.ID, retrieved.ID)
	s.Equal(game.Players, retrieved.Players)
	s.Equal("A", retrieved.Racks["p1"][0].Letter)
}

func (s *StorageSuite) TestGetGameNotFound() {
	_, err := s.storage.GetGame(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *StorageSuite) TestSaveGameBumpsVersion() {
	game := newTestGame("game-1")

	s.Require().NoError(s.storage.SaveGame(s.ctx, game))
	s.Equal(int64(1), game.Version)

	retrieved, err := s.storage.GetGame(s.ctx, "game-1")
	s.Require().NoError(err)
	s.Equal(int64(1), retrieved.Version)
}

func (s *StorageSuite) TestSaveGameStaleVersionConflicts() {
	game := newTestGame("game-1")
	s.Require().NoError(s.storage.SaveGame(s.ctx, game))

	copy1, err := s.storage.GetGame(s.ctx, "game-1")
	s.Require().NoError(err)
	copy2, err := s.storage.GetGame(s.ctx, "game-1")
	s.Require().NoError(err)

	copy1.Scores["p1"] = 10
	s.Require().NoError(s.storage.SaveGame(s.ctx, copy1))

	copy2.Scores["p1"] = 20
	err = s.storage.SaveGame(s.ctx, copy2)
	s.ErrorIs(err, model.ErrConcurrencyConflict)

	final, err := s.storage.GetGame(s.ctx, "game-1")
	s.Require().NoError(err)
	s.Equal(10, final.Scores["p1"])
}

func (s *StorageSuite) TestSaveGameNewWithNonzeroVersionConflicts() {
	game := newTestGame("game-1")
	game.Version = 5

	err := s.storage.SaveGame(s.ctx, game)
	s.ErrorIs(err, model.ErrConcurrencyConflict)
}

func (s *StorageSuite) TestGameHasTTL() {
	game := newTestGame("game-1")
	_ = s.storage.SaveGame(s.ctx, game)

	ttl := s.mini.TTL(gameKey("game-1"))
	s.Equal(time.Hour, ttl)
}

func (s *StorageSuite) TestDeleteGame() {
	game := newTestGame("game-1")
	_ = s.storage.SaveGame(s.ctx, game)

	err := s.storage.DeleteGame(s.ctx, "game-1")
	s.Require().NoError(err)

	_, err = s.storage.GetGame(s.ctx, "game-1")
	s.ErrorIs(err, model.ErrGameNotFound)
}

// Dictionary tests

func (s *StorageSuite) TestSaveAndGetDictionaryWords() {
	words := []string{"apple", "banana", "cherry"}

	err := s.storage.SaveDictionaryWords(s.ctx, words)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetDictionaryWords(s.ctx)
	s.Require().NoError(err)
	s.ElementsMatch(words, retrieved) // Order may differ (SET)
}

func (s *StorageSuite) TestGetDictionaryWordsNotLoaded() {
	_, err := s.storage.GetDictionaryWords(s.ctx)
	s.ErrorIs(err, model.ErrDictionaryNotLoaded)
}

func (s *StorageSuite) TestSaveDictionaryWordsReplacesExisting() {
	words1 := []string{"apple", "banana"}
	words2 := []string{"cherry", "date", "elderberry"}

	_ = s.storage.SaveDictionaryWords(s.ctx, words1)
	_ = s.storage.SaveDictionaryWords(s.ctx, words2)

	retrieved, err := s.storage.GetDictionaryWords(s.ctx)
	s.Require().NoError(err)
	s.ElementsMatch(words2, retrieved)
}

func (s *StorageSuite) TestDictionaryNoTTL() {
	words := []string{"apple"}
	_ = s.storage.SaveDictionaryWords(s.ctx, words)

	ttl := s.mini.TTL(dictionaryKey())
	s.Equal(time.Duration(0), ttl, "Dictionary should not have TTL")
}
