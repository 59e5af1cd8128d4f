package model

import "time"

// GameID uniquely identifies a game
type GameID string

const (
	// RackCapacity is the number of tiles a player holds
	RackCapacity = 7
	// BingoBonus is the score bonus for playing a full rack in one move
	BingoBonus = 50
	// TotalTiles is the size of a full bag
	TotalTiles = 100
)

// PlacedTile pairs a tile with the board cell it targets
type PlacedTile struct {
	Row  int  `json:"row"`
	Col  int  `json:"col"`
	Tile Tile `json:"tile"`
}

// Position returns the board position of the placement
func (p PlacedTile) Position() Position {
	return Position{Row: p.Row, Col: p.Col}
}

// PendingMove is the snapshot of a submitted move while its challenge
// window is open. It carries everything needed to undo the move.
type PendingMove struct {
	OriginalPlayerID PlayerID     `json:"original_player_id"`
	PlacedTiles      []PlacedTile `json:"placed_tiles"`
	Score            int          `json:"score"`
	BoardBefore      *Board       `json:"board_before"`
	RackBefore       []Tile       `json:"rack_before"`
	DrawnTiles       []Tile       `json:"drawn_tiles"`
	SubmittedAt      time.Time    `json:"submitted_at"`
	ExpiresAt        time.Time    `json:"expires_at"`
}

// Clone returns a deep copy of the pending move
func (p *PendingMove) Clone() *PendingMove {
	if p == nil {
		return nil
	}
	clone := *p
	clone.PlacedTiles = append([]PlacedTile(nil), p.PlacedTiles...)
	clone.BoardBefore = p.BoardBefore.Clone()
	clone.RackBefore = append([]Tile(nil), p.RackBefore...)
	clone.DrawnTiles = append([]Tile(nil), p.DrawnTiles...)
	return &clone
}

// Game is the full authoritative state of one game
type Game struct {
	ID       GameID   `json:"id"`
	RoomCode RoomCode `json:"room_code"`

	// Players in turn order (snapshot at game start)
	Players []PlayerID `json:"players"`

	Racks  map[PlayerID][]Tile `json:"racks"`
	Scores map[PlayerID]int    `json:"scores"`
	Board  *Board              `json:"board"`
	Bag    []Tile              `json:"bag"`

	// TurnIndex indexes Players for whose turn it is
	TurnIndex int `json:"turn_index"`

	// Staged holds tiles the turn player has placed but not yet submitted.
	// Staged tiles are off the rack and off the committed board.
	Staged map[PlayerID][]PlacedTile `json:"staged,omitempty"`

	// PendingMove is the last submitted move while challengeable
	PendingMove *PendingMove `json:"pending_move,omitempty"`

	// Version guards saves; storage rejects stale writes
	Version int64 `json:"version"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CurrentPlayer returns the PlayerID whose turn it is
func (g *Game) CurrentPlayer() PlayerID {
	if len(g.Players) == 0 {
		return ""
	}
	return g.Players[g.TurnIndex%len(g.Players)]
}

// HasPlayer returns true if the player is part of this game
func (g *Game) HasPlayer(playerID PlayerID) bool {
	for _, p := range g.Players {
		if p == playerID {
			return true
		}
	}
	return false
}

// AdvanceTurn moves play to the next player
func (g *Game) AdvanceTurn() {
	if len(g.Players) == 0 {
		return
	}
	g.TurnIndex = (g.TurnIndex + 1) % len(g.Players)
}

// TileCount totals every tile the game tracks: bag, racks, staged
// placements and the committed board. It stays at TotalTiles for the
// life of a game.
func (g *Game) TileCount() int {
	count := len(g.Bag)
	for _, rack := range g.Racks {
		count += len(rack)
	}
	for _, staged := range g.Staged {
		count += len(staged)
	}
	if g.Board != nil {
		count += g.Board.OccupiedCount()
	}
	return count
}

// Clone returns a deep copy of the game
func (g *Game) Clone() *Game {
	if g == nil {
		return nil
	}
	clone := *g
	clone.Players = append([]PlayerID(nil), g.Players...)
	clone.Racks = make(map[PlayerID][]Tile, len(g.Racks))
	for id, rack := range g.Racks {
		clone.Racks[id] = append([]Tile(nil), rack...)
	}
	clone.Scores = make(map[PlayerID]int, len(g.Scores))
	for id, score := range g.Scores {
		clone.Scores[id] = score
	}
	clone.Board = g.Board.Clone()
	clone.Bag = append([]Tile(nil), g.Bag...)
	clone.Staged = make(map[PlayerID][]PlacedTile, len(g.Staged))
	for id, staged := range g.Staged {
		clone.Staged[id] = append([]PlacedTile(nil), staged...)
	}
	clone.PendingMove = g.PendingMove.Clone()
	return &clone
}
