package room

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/wordtiles/wordtiles-go/internal/dependencies/mocks"
	"github.com/wordtiles/wordtiles-go/internal/model"
	"github.com/wordtiles/wordtiles-go/internal/services/dictionary"
	"github.com/wordtiles/wordtiles-go/internal/services/game"
	"github.com/wordtiles/wordtiles-go/internal/services/placement"
	"github.com/wordtiles/wordtiles-go/internal/services/scoring"
	"github.com/wordtiles/wordtiles-go/internal/services/tiles"
	"github.com/wordtiles/wordtiles-go/internal/storage/memory"
	"github.com/wordtiles/wordtiles-go/internal/testutil"
)

type ControllerSuite struct {
	suite.Suite
	storage    *memory.Storage
	clock      *mocks.MockClock
	random     *mocks.MockRandom
	controller *Controller
	ctx        context.Context
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func (s *ControllerSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC))
	s.random = mocks.NewMockRandom()
	s.ctx = context.Background()

	gameController := game.NewController(
		s.storage,
		tiles.New(s.random),
		placement.NewDefault(),
		scoring.New(),
		dictionary.New(s.storage),
		s.clock,
		s.random,
		game.DefaultConfig(),
		testutil.NopLogger(),
	)
	s.controller = NewController(s.storage, gameController, s.clock, s.random)
}

func (s *ControllerSuite) createRoom(code string, hostID model.PlayerID) *model.Room {
	s.random.QueueString(code)
	room, err := s.controller.CreateRoom(s.ctx, hostID)
	s.Require().NoError(err)
	return room
}

func (s *ControllerSuite) TestCreateRoom() {
	room := s.createRoom("ROOM01", "host")

	s.Equal(model.RoomCode("ROOM01"), room.Code)
	s.Equal(model.PlayerID("host"), room.HostID)
	s.Equal([]model.PlayerID{"host"}, room.Players)
	s.Nil(room.CurrentGame)

	stored, err := s.controller.GetRoom(s.ctx, "ROOM01")
	s.Require().NoError(err)
	s.Equal(room.Code, stored.Code)
}

func (s *ControllerSuite) TestCreateRoomRetriesOnCodeCollision() {
	s.createRoom("ROOM01", "host")

	// The second create first draws the taken code, then a fresh one
	s.random.QueueString("ROOM01", "ROOM02")
	room, err := s.controller.CreateRoom(s.ctx, "other")
	s.Require().NoError(err)
	s.Equal(model.RoomCode("ROOM02"), room.Code)
}

func (s *ControllerSuite) TestJoinRoom() {
	s.createRoom("ROOM01", "host")

	room, err := s.controller.JoinRoom(s.ctx, "ROOM01", "p2")
	s.Require().NoError(err)
	s.Equal([]model.PlayerID{"host", "p2"}, room.Players)
}

func (s *ControllerSuite) TestJoinRoomTwice() {
	s.createRoom("ROOM01", "host")

	_, err := s.controller.JoinRoom(s.ctx, "ROOM01", "host")
	s.ErrorIs(err, model.ErrAlreadyInRoom)
}

func (s *ControllerSuite) TestJoinMissingRoom() {
	_, err := s.controller.JoinRoom(s.ctx, "NOPE99", "p2")
	s.ErrorIs(err, model.ErrRoomNotFound)
}

func (s *ControllerSuite) TestJoinFullRoom() {
	s.createRoom("ROOM01", "host")
	for _, p := range []model.PlayerID{"p2", "p3", "p4"} {
		_, err := s.controller.JoinRoom(s.ctx, "ROOM01", p)
		s.Require().NoError(err)
	}

	_, err := s.controller.JoinRoom(s.ctx, "ROOM01", "p5")
	s.ErrorIs(err, model.ErrRoomFull)
}

func (s *ControllerSuite) TestJoinDuringGame() {
	s.createRoom("ROOM01", "host")
	_, err := s.controller.JoinRoom(s.ctx, "ROOM01", "p2")
	s.Require().NoError(err)

	s.random.QueueString("GAMEABCDEF12")
	_, err = s.controller.StartGame(s.ctx, "ROOM01", "host")
	s.Require().NoError(err)

	_, err = s.controller.JoinRoom(s.ctx, "ROOM01", "p3")
	s.ErrorIs(err, model.ErrGameInProgress)
}

func (s *ControllerSuite) TestLeaveRoom() {
	s.createRoom("ROOM01", "host")
	_, err := s.controller.JoinRoom(s.ctx, "ROOM01", "p2")
	s.Require().NoError(err)

	err = s.controller.LeaveRoom(s.ctx, "ROOM01", "p2")
	s.Require().NoError(err)

	room, err := s.controller.GetRoom(s.ctx, "ROOM01")
	s.Require().NoError(err)
	s.Equal([]model.PlayerID{"host"}, room.Players)
}

func (s *ControllerSuite) TestHostLeavingPassesHost() {
	s.createRoom("ROOM01", "host")
	_, err := s.controller.JoinRoom(s.ctx, "ROOM01", "p2")
	s.Require().NoError(err)

	err = s.controller.LeaveRoom(s.ctx, "ROOM01", "host")
	s.Require().NoError(err)

	room, err := s.controller.GetRoom(s.ctx, "ROOM01")
	s.Require().NoError(err)
	s.Equal(model.PlayerID("p2"), room.HostID)
}

func (s *ControllerSuite) TestLastPlayerLeavingDeletesRoom() {
	s.createRoom("ROOM01", "host")

	err := s.controller.LeaveRoom(s.ctx, "ROOM01", "host")
	s.Require().NoError(err)

	_, err = s.controller.GetRoom(s.ctx, "ROOM01")
	s.ErrorIs(err, model.ErrRoomNotFound)
}

func (s *ControllerSuite) TestLeaveRoomNotAMember() {
	s.createRoom("ROOM01", "host")

	err := s.controller.LeaveRoom(s.ctx, "ROOM01", "stranger")
	s.ErrorIs(err, model.ErrNotInRoom)
}

func (s *ControllerSuite) TestLeaveDuringGame() {
	s.createRoom("ROOM01", "host")
	_, err := s.controller.JoinRoom(s.ctx, "ROOM01", "p2")
	s.Require().NoError(err)

	s.random.QueueString("GAMEABCDEF12")
	_, err = s.controller.StartGame(s.ctx, "ROOM01", "host")
	s.Require().NoError(err)

	err = s.controller.LeaveRoom(s.ctx, "ROOM01", "p2")
	s.ErrorIs(err, model.ErrGameInProgress)
}

func (s *ControllerSuite) TestStartGame() {
	s.createRoom("ROOM01", "host")
	_, err := s.controller.JoinRoom(s.ctx, "ROOM01", "p2")
	s.Require().NoError(err)

	s.random.QueueString("GAMEABCDEF12")
	g, err := s.controller.StartGame(s.ctx, "ROOM01", "host")
	s.Require().NoError(err)

	s.Equal(model.GameID("GAMEABCDEF12"), g.ID)
	s.Equal(model.RoomCode("ROOM01"), g.RoomCode)
	s.Equal([]model.PlayerID{"host", "p2"}, g.Players)

	room, err := s.controller.GetRoom(s.ctx, "ROOM01")
	s.Require().NoError(err)
	s.Require().NotNil(room.CurrentGame)
	s.Equal(g.ID, *room.CurrentGame)
}

func (s *ControllerSuite) TestStartGameNotHost() {
	s.createRoom("ROOM01", "host")
	_, err := s.controller.JoinRoom(s.ctx, "ROOM01", "p2")
	s.Require().NoError(err)

	_, err = s.controller.StartGame(s.ctx, "ROOM01", "p2")
	s.ErrorIs(err, model.ErrNotHost)
}

func (s *ControllerSuite) TestStartGameAlone() {
	s.createRoom("ROOM01", "host")

	s.random.QueueString("GAMEABCDEF12")
	_, err := s.controller.StartGame(s.ctx, "ROOM01", "host")
	s.ErrorIs(err, model.ErrInsufficientPlayers)
}

func (s *ControllerSuite) TestStartGameTwice() {
	s.createRoom("ROOM01", "host")
	_, err := s.controller.JoinRoom(s.ctx, "ROOM01", "p2")
	s.Require().NoError(err)

	s.random.QueueString("GAMEABCDEF12")
	_, err = s.controller.StartGame(s.ctx, "ROOM01", "host")
	s.Require().NoError(err)

	_, err = s.controller.StartGame(s.ctx, "ROOM01", "host")
	s.ErrorIs(err, model.ErrGameInProgress)
}

func (s *ControllerSuite) TestEndGame() {
	s.createRoom("ROOM01", "host")
	_, err := s.controller.JoinRoom(s.ctx, "ROOM01", "p2")
	s.Require().NoError(err)

	s.random.QueueString("GAMEABCDEF12")
	_, err = s.controller.StartGame(s.ctx, "ROOM01", "host")
	s.Require().NoError(err)

	err = s.controller.EndGame(s.ctx, "ROOM01", "host")
	s.Require().NoError(err)

	room, err := s.controller.GetRoom(s.ctx, "ROOM01")
	s.Require().NoError(err)
	s.Nil(room.CurrentGame)
}

func (s *ControllerSuite) TestEndGameNotHost() {
	s.createRoom("ROOM01", "host")
	_, err := s.controller.JoinRoom(s.ctx, "ROOM01", "p2")
	s.Require().NoError(err)

	s.random.QueueString("GAMEABCDEF12")
	_, err = s.controller.StartGame(s.ctx, "ROOM01", "host")
	s.Require().NoError(err)

	err = s.controller.EndGame(s.ctx, "ROOM01", "p2")
	s.ErrorIs(err, model.ErrNotHost)
}

func (s *ControllerSuite) TestEndGameWithoutGame() {
	s.createRoom("ROOM01", "host")

	err := s.controller.EndGame(s.ctx, "ROOM01", "host")
	s.ErrorIs(err, model.ErrNoGameInProgress)
}
