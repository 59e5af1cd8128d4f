package placement

import (
	"fmt"

	"github.com/wordtiles/wordtiles-go/internal/model"
)

// ConnectivityStrategy decides whether a non-first move attaches to the
// tiles already on the board
type ConnectivityStrategy interface {
	IsConnected(board *model.Board, placements []model.PlacedTile) bool
}

// Validator checks staged placements against the committed board
type Validator struct {
	connectivity ConnectivityStrategy
}

// New creates a Validator with the given connectivity strategy
func New(strategy ConnectivityStrategy) *Validator {
	return &Validator{connectivity: strategy}
}

// NewDefault creates a Validator with the canonical AdjacentOrLine strategy
func NewDefault() *Validator {
	return New(AdjacentOrLine{})
}

func invalid(format string, args ...any) error {
	return &model.InvalidPlacementError{Reason: fmt.Sprintf(format, args...)}
}

// Validate returns nil if the placements form a legal move on the board,
// or a *model.InvalidPlacementError naming the first broken rule
func (v *Validator) Validate(board *model.Board, placements []model.PlacedTile) error {
	if len(placements) == 0 {
		return invalid("no tiles placed")
	}
	if len(placements) > model.RackCapacity {
		return invalid("more than %d tiles placed", model.RackCapacity)
	}

	seen := make(map[model.Position]bool, len(placements))
	for _, p := range placements {
		pos := p.Position()
		if !board.InBounds(pos) {
			return invalid("position (%d,%d) is out of bounds", pos.Row, pos.Col)
		}
		if !board.IsEmpty(pos) {
			return invalid("cell (%d,%d) is already occupied", pos.Row, pos.Col)
		}
		if seen[pos] {
			return invalid("duplicate placement at (%d,%d)", pos.Row, pos.Col)
		}
		seen[pos] = true
		if !p.Tile.Assigned() {
			return invalid("blank tile has no letter assigned")
		}
	}

	sameRow, sameCol := true, true
	first := placements[0].Position()
	minRow, maxRow := first.Row, first.Row
	minCol, maxCol := first.Col, first.Col
	for _, p := range placements[1:] {
		pos := p.Position()
		if pos.Row != first.Row {
			sameRow = false
		}
		if pos.Col != first.Col {
			sameCol = false
		}
		minRow, maxRow = min(minRow, pos.Row), max(maxRow, pos.Row)
		minCol, maxCol = min(minCol, pos.Col), max(maxCol, pos.Col)
	}
	if !sameRow && !sameCol {
		return invalid("tiles must be placed in a single row or column")
	}

	// The run from the first placement to the last must have no gaps:
	// every cell is either staged here or already on the board.
	if sameRow {
		for col := minCol; col <= maxCol; col++ {
			pos := model.Position{Row: first.Row, Col: col}
			if !seen[pos] && board.IsEmpty(pos) {
				return invalid("tiles must form a continuous word")
			}
		}
	} else {
		for row := minRow; row <= maxRow; row++ {
			pos := model.Position{Row: row, Col: first.Col}
			if !seen[pos] && board.IsEmpty(pos) {
				return invalid("tiles must form a continuous word")
			}
		}
	}

	if board.Empty() {
		if !seen[model.Center] {
			return invalid("first word must cover the center square")
		}
		return nil
	}

	if !v.connectivity.IsConnected(board, placements) {
		return invalid("word must connect to existing tiles")
	}
	return nil
}

// AdjacentOrLine is the canonical connectivity rule: a placement counts
// as connected when some placed tile sits orthogonally next to an
// existing tile, or when the placement's own run passes through one.
type AdjacentOrLine struct{}

var _ ConnectivityStrategy = AdjacentOrLine{}

func (AdjacentOrLine) IsConnected(board *model.Board, placements []model.PlacedTile) bool {
	if adjacentToExisting(board, placements) {
		return true
	}
	return runOverlapsExisting(board, placements)
}

// AdjacentOnly is a strict variant requiring orthogonal adjacency
type AdjacentOnly struct{}

var _ ConnectivityStrategy = AdjacentOnly{}

func (AdjacentOnly) IsConnected(board *model.Board, placements []model.PlacedTile) bool {
	return adjacentToExisting(board, placements)
}

func adjacentToExisting(board *model.Board, placements []model.PlacedTile) bool {
	for _, p := range placements {
		pos := p.Position()
		neighbours := []model.Position{
			{Row: pos.Row - 1, Col: pos.Col},
			{Row: pos.Row + 1, Col: pos.Col},
			{Row: pos.Row, Col: pos.Col - 1},
			{Row: pos.Row, Col: pos.Col + 1},
		}
		for _, n := range neighbours {
			if board.InBounds(n) && !board.IsEmpty(n) {
				return true
			}
		}
	}
	return false
}

// runOverlapsExisting reports whether the span from the first to the
// last placement crosses a cell already occupied on the board
func runOverlapsExisting(board *model.Board, placements []model.PlacedTile) bool {
	first := placements[0].Position()
	minRow, maxRow := first.Row, first.Row
	minCol, maxCol := first.Col, first.Col
	for _, p := range placements[1:] {
		pos := p.Position()
		minRow, maxRow = min(minRow, pos.Row), max(maxRow, pos.Row)
		minCol, maxCol = min(minCol, pos.Col), max(maxCol, pos.Col)
	}

	if minRow == maxRow {
		for col := minCol; col <= maxCol; col++ {
			if !board.IsEmpty(model.Position{Row: minRow, Col: col}) {
				return true
			}
		}
	}
	if minCol == maxCol {
		for row := minRow; row <= maxRow; row++ {
			if !board.IsEmpty(model.Position{Row: row, Col: minCol}) {
				return true
			}
		}
	}
	return false
}
