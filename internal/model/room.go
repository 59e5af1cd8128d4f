package model

import "time"

// RoomCode is a short human-readable identifier for joining rooms
type RoomCode string

// MaxRoomPlayers caps a room's roster
const MaxRoomPlayers = 4

// Room groups players who play games together
type Room struct {
	Code    RoomCode   `json:"code"`
	HostID  PlayerID   `json:"host_id"`
	Players []PlayerID `json:"players"` // in join order; host first

	// CurrentGame is nil while the room is waiting
	CurrentGame *GameID `json:"current_game,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasPlayer returns true if the player has joined this room
func (r *Room) HasPlayer(playerID PlayerID) bool {
	for _, p := range r.Players {
		if p == playerID {
			return true
		}
	}
	return false
}

// Full returns true if no more players can join
func (r *Room) Full() bool {
	return len(r.Players) >= MaxRoomPlayers
}
