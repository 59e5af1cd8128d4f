package tiles

import (
	"fmt"

	"github.com/wordtiles/wordtiles-go/internal/dependencies/random"
	"github.com/wordtiles/wordtiles-go/internal/model"
)

// letterCount describes one letter's entry in the standard distribution
type letterCount struct {
	Letter string
	Count  int
	Value  int
}

// Distribution is the standard 100-tile English set. The empty letter
// is the blank.
var Distribution = []letterCount{
	{"A", 9, 1}, {"B", 2, 3}, {"C", 2, 3}, {"D", 4, 2}, {"E", 12, 1},
	{"F", 2, 4}, {"G", 3, 2}, {"H", 2, 4}, {"I", 9, 1}, {"J", 1, 8},
	{"K", 1, 5}, {"L", 4, 1}, {"M", 2, 3}, {"N", 6, 1}, {"O", 8, 1},
	{"P", 2, 3}, {"Q", 1, 10}, {"R", 6, 1}, {"S", 4, 1}, {"T", 6, 1},
	{"U", 4, 1}, {"V", 2, 4}, {"W", 2, 4}, {"X", 1, 8}, {"Y", 2, 4},
	{"Z", 1, 10}, {"", 2, 0},
}

// LetterValue returns the point value of a letter, or 0 if unknown
func LetterValue(letter string) int {
	for _, d := range Distribution {
		if d.Letter == letter {
			return d.Value
		}
	}
	return 0
}

// Service generates and manipulates tile bags and racks
type Service struct {
	random random.Random
}

// New creates a new tiles service
func New(random random.Random) *Service {
	return &Service{random: random}
}

// NewBag materializes a full shuffled bag. Tile IDs are unique within
// the bag and stable for the life of the game.
func (s *Service) NewBag() []model.Tile {
	bag := make([]model.Tile, 0, model.TotalTiles)
	id := 1
	for _, d := range Distribution {
		for i := 0; i < d.Count; i++ {
			bag = append(bag, model.Tile{
				ID:      model.TileID(fmt.Sprintf("tile-%d", id)),
				Letter:  d.Letter,
				Value:   d.Value,
				IsBlank: d.Letter == "",
			})
			id++
		}
	}
	s.shuffle(bag)
	return bag
}

// Draw takes up to n tiles off the front of the bag. Drawing from a
// short or empty bag returns what is available; it never errors.
func (s *Service) Draw(bag []model.Tile, n int) (drawn, remaining []model.Tile) {
	if n < 0 {
		n = 0
	}
	if n > len(bag) {
		n = len(bag)
	}
	drawn = append([]model.Tile(nil), bag[:n]...)
	remaining = append([]model.Tile(nil), bag[n:]...)
	return drawn, remaining
}

// Restore returns tiles to the bag and reshuffles the whole bag so
// returned tiles are not predictably drawn next
func (s *Service) Restore(tiles []model.Tile, bag []model.Tile) []model.Tile {
	result := make([]model.Tile, 0, len(bag)+len(tiles))
	result = append(result, bag...)
	result = append(result, tiles...)
	s.shuffle(result)
	return result
}

// ResetBlank clears a blank's chosen letter; non-blanks pass through
func ResetBlank(tile model.Tile) model.Tile {
	if tile.IsBlank {
		tile.ChosenLetter = ""
	}
	return tile
}

// ResetBlanks resets every blank in a set of tiles
func ResetBlanks(tiles []model.Tile) []model.Tile {
	result := make([]model.Tile, len(tiles))
	for i, t := range tiles {
		result[i] = ResetBlank(t)
	}
	return result
}

// ShuffleRack returns the rack in a new random order
func (s *Service) ShuffleRack(rack []model.Tile) []model.Tile {
	result := append([]model.Tile(nil), rack...)
	s.shuffle(result)
	return result
}

func (s *Service) shuffle(tiles []model.Tile) {
	s.random.Shuffle(len(tiles), func(i, j int) {
		tiles[i], tiles[j] = tiles[j], tiles[i]
	})
}
