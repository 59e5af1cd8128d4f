package scoring

import (
	"github.com/wordtiles/wordtiles-go/internal/model"
	"github.com/wordtiles/wordtiles-go/internal/services/words"
)

// WordScore is the priced result for a single word span
type WordScore struct {
	Word   string         `json:"word"`
	Span   model.WordSpan `json:"span"`
	Points int            `json:"points"`
}

// MoveScore is the full breakdown for a submitted move
type MoveScore struct {
	Words []WordScore `json:"words"`
	Bingo bool        `json:"bingo"`
	Total int         `json:"total"`
}

// Service prices moves against the premium square layout
type Service struct{}

// New creates a new scoring service
func New() *Service {
	return &Service{}
}

// ScoreMove prices a move. The board must already contain the placed
// tiles; firstMove controls whether the center square doubles the word.
// Premium squares only fire for cells placed this move, so tiles played
// earlier never re-trigger their multipliers.
func (s *Service) ScoreMove(board *model.Board, placements []model.PlacedTile, firstMove bool) MoveScore {
	placed := make(map[model.Position]bool, len(placements))
	for _, p := range placements {
		placed[p.Position()] = true
	}

	result := MoveScore{}
	for _, span := range words.Extract(board, placements) {
		points := scoreSpan(board, span, placed, firstMove)
		result.Words = append(result.Words, WordScore{
			Word:   span.Text(board),
			Span:   span,
			Points: points,
		})
		result.Total += points
	}

	if len(placements) == model.RackCapacity {
		result.Bingo = true
		result.Total += model.BingoBonus
	}
	return result
}

func scoreSpan(board *model.Board, span model.WordSpan, placed map[model.Position]bool, firstMove bool) int {
	sum := 0
	wordMultiplier := 1
	for _, pos := range span.Positions {
		tile := board.Get(pos)
		if tile == nil {
			continue
		}

		value := tile.Value
		if tile.IsBlank {
			value = 0
		}

		if placed[pos] {
			switch model.ClassifySquare(pos) {
			case model.SquareDoubleLetter:
				value *= 2
			case model.SquareTripleLetter:
				value *= 3
			case model.SquareDoubleWord:
				wordMultiplier *= 2
			case model.SquareTripleWord:
				wordMultiplier *= 3
			case model.SquareCenter:
				if firstMove {
					wordMultiplier *= 2
				}
			}
		}

		sum += value
	}
	return sum * wordMultiplier
}
