package model

// TileID uniquely identifies a tile within a single game
type TileID string

// BlankPlaceholder is the glyph shown for a blank tile with no chosen letter
const BlankPlaceholder = "?"

// Tile represents a single letter tile
type Tile struct {
	ID      TileID `json:"id"`
	Letter  string `json:"letter"`
	Value   int    `json:"value"`
	IsBlank bool   `json:"is_blank,omitempty"`
	// ChosenLetter is the letter a blank has been assigned; empty until assigned
	ChosenLetter string `json:"chosen_letter,omitempty"`
}

// DisplayLetter returns the letter this tile shows on the board or rack
func (t Tile) DisplayLetter() string {
	if t.IsBlank {
		if t.ChosenLetter != "" {
			return t.ChosenLetter
		}
		return BlankPlaceholder
	}
	return t.Letter
}

// Assigned reports whether the tile can legally sit in a word
// (non-blank, or a blank with a chosen letter)
func (t Tile) Assigned() bool {
	return !t.IsBlank || t.ChosenLetter != ""
}
