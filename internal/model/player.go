package model

import "time"

// PlayerID uniquely identifies a player across the system
type PlayerID string

// Player represents a participant, guest or registered
type Player struct {
	ID          PlayerID  `json:"id"`
	DisplayName string    `json:"display_name"`
	IsGuest     bool      `json:"is_guest"`
	CreatedAt   time.Time `json:"created_at"`
}

// RegisteredPlayer holds a registered player's credentials.
// Stored separately from Player so password hashes never travel
// with session lookups.
type RegisteredPlayer struct {
	PlayerID     PlayerID  `json:"player_id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
