package response

import (
	"time"

	"github.com/wordtiles/wordtiles-go/internal/model"
	"github.com/wordtiles/wordtiles-go/internal/services/auth"
	"github.com/wordtiles/wordtiles-go/internal/services/game"
)

// Player represents a player in API responses
type Player struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	IsGuest     bool   `json:"is_guest"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p *model.Player) Player {
	return Player{
		ID:          string(p.ID),
		DisplayName: p.DisplayName,
		IsGuest:     p.IsGuest,
	}
}

// AuthResponse is the response for authentication endpoints
type AuthResponse struct {
	Player       Player `json:"player"`
	SessionToken string `json:"session_token"`
}

// AuthResponseFromSession creates an AuthResponse from a session
func AuthResponseFromSession(s *auth.Session) AuthResponse {
	return AuthResponse{
		Player:       PlayerFromModel(&s.Player),
		SessionToken: s.Token,
	}
}

// Room represents a room in API responses
type Room struct {
	Code        string   `json:"code"`
	HostID      string   `json:"host_id"`
	Players     []string `json:"players"`
	CurrentGame *string  `json:"current_game"`
}

// RoomFromModel converts model.Room
func RoomFromModel(r *model.Room) Room {
	players := make([]string, len(r.Players))
	for i, p := range r.Players {
		players[i] = string(p)
	}

	var currentGame *string
	if r.CurrentGame != nil {
		g := string(*r.CurrentGame)
		currentGame = &g
	}

	return Room{
		Code:        string(r.Code),
		HostID:      string(r.HostID),
		Players:     players,
		CurrentGame: currentGame,
	}
}

// Tile represents a tile in API responses. Letter is the display
// letter: a blank shows its chosen letter or the ? placeholder.
type Tile struct {
	ID      string `json:"id"`
	Letter  string `json:"letter"`
	Value   int    `json:"value"`
	IsBlank bool   `json:"is_blank,omitempty"`
}

// TileFromModel converts model.Tile
func TileFromModel(t model.Tile) Tile {
	return Tile{
		ID:      string(t.ID),
		Letter:  t.DisplayLetter(),
		Value:   t.Value,
		IsBlank: t.IsBlank,
	}
}

// Board represents the committed board; nil cells are empty
type Board struct {
	Cells [][]*Tile `json:"cells"`
}

// BoardFromModel converts model.Board
func BoardFromModel(b *model.Board) Board {
	cells := make([][]*Tile, len(b.Cells))
	for row := range b.Cells {
		cells[row] = make([]*Tile, len(b.Cells[row]))
		for col := range b.Cells[row] {
			if t := b.Cells[row][col]; t != nil {
				tile := TileFromModel(*t)
				cells[row][col] = &tile
			}
		}
	}
	return Board{Cells: cells}
}

// StagedTile is a tile the viewer has staged but not submitted
type StagedTile struct {
	Row  int  `json:"row"`
	Col  int  `json:"col"`
	Tile Tile `json:"tile"`
}

// Opponent is another player's public state: never their tiles
type Opponent struct {
	PlayerID string `json:"player_id"`
	RackSize int    `json:"rack_size"`
	Score    int    `json:"score"`
}

// PendingMove is the challengeable move currently on the clock
type PendingMove struct {
	PlayerID    string    `json:"player_id"`
	TilesPlaced int       `json:"tiles_placed"`
	Score       int       `json:"score"`
	SubmittedAt time.Time `json:"submitted_at"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// GameView is the game state scoped to one viewer: their own rack and
// staged tiles, everyone's scores, opponents' rack sizes only
type GameView struct {
	ID          string       `json:"id"`
	RoomCode    string       `json:"room_code"`
	Players     []string     `json:"players"`
	TurnPlayer  string       `json:"turn_player"`
	Board       Board        `json:"board"`
	MyRack      []Tile       `json:"my_rack"`
	MyStaged    []StagedTile `json:"my_staged,omitempty"`
	MyScore     int          `json:"my_score"`
	Opponents   []Opponent   `json:"opponents"`
	BagCount    int          `json:"bag_count"`
	PendingMove *PendingMove `json:"pending_move,omitempty"`
}

// GameViewFromModel shapes a game for the given viewer
func GameViewFromModel(g *model.Game, viewer model.PlayerID) GameView {
	players := make([]string, len(g.Players))
	for i, p := range g.Players {
		players[i] = string(p)
	}

	myRack := make([]Tile, 0, len(g.Racks[viewer]))
	for _, t := range g.Racks[viewer] {
		myRack = append(myRack, TileFromModel(t))
	}

	var myStaged []StagedTile
	for _, p := range g.Staged[viewer] {
		myStaged = append(myStaged, StagedTile{
			Row:  p.Row,
			Col:  p.Col,
			Tile: TileFromModel(p.Tile),
		})
	}

	var opponents []Opponent
	for _, p := range g.Players {
		if p == viewer {
			continue
		}
		opponents = append(opponents, Opponent{
			PlayerID: string(p),
			RackSize: len(g.Racks[p]) + len(g.Staged[p]),
			Score:    g.Scores[p],
		})
	}

	var pending *PendingMove
	if g.PendingMove != nil {
		pending = &PendingMove{
			PlayerID:    string(g.PendingMove.OriginalPlayerID),
			TilesPlaced: len(g.PendingMove.PlacedTiles),
			Score:       g.PendingMove.Score,
			SubmittedAt: g.PendingMove.SubmittedAt,
			ExpiresAt:   g.PendingMove.ExpiresAt,
		}
	}

	return GameView{
		ID:          string(g.ID),
		RoomCode:    string(g.RoomCode),
		Players:     players,
		TurnPlayer:  string(g.CurrentPlayer()),
		Board:       BoardFromModel(g.Board),
		MyRack:      myRack,
		MyStaged:    myStaged,
		MyScore:     g.Scores[viewer],
		Opponents:   opponents,
		BagCount:    len(g.Bag),
		PendingMove: pending,
	}
}

// MoveResponse is the response after submitting a move
type MoveResponse struct {
	Score int      `json:"score"`
	Words []string `json:"words"`
	Bingo bool     `json:"bingo"`
	Game  GameView `json:"game"`
}

// MoveResponseFromResult converts a game.MoveResult for the mover
func MoveResponseFromResult(r *game.MoveResult, viewer model.PlayerID) MoveResponse {
	return MoveResponse{
		Score: r.Score,
		Words: r.Words,
		Bingo: r.Bingo,
		Game:  GameViewFromModel(r.Game, viewer),
	}
}

// ChallengeResponse is the response after challenging a move
type ChallengeResponse struct {
	Successful   bool     `json:"successful"`
	Words        []string `json:"words"`
	InvalidWords []string `json:"invalid_words,omitempty"`
	Game         GameView `json:"game"`
}

// ChallengeResponseFromResult converts a game.ChallengeResult for the challenger
func ChallengeResponseFromResult(r *game.ChallengeResult, viewer model.PlayerID) ChallengeResponse {
	return ChallengeResponse{
		Successful:   r.Successful,
		Words:        r.Words,
		InvalidWords: r.InvalidWords,
		Game:         GameViewFromModel(r.Game, viewer),
	}
}
