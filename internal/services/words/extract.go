package words

import (
	"fmt"

	"github.com/wordtiles/wordtiles-go/internal/model"
)

// Extract returns every distinct word span a move touches. The board
// must already contain the placed tiles. For each placement the maximal
// horizontal and vertical occupied runs are expanded; single-cell runs
// are not words and are dropped, and spans shared by several placements
// are reported once.
func Extract(board *model.Board, placements []model.PlacedTile) []model.WordSpan {
	var spans []model.WordSpan
	seen := make(map[string]bool)

	for _, p := range placements {
		pos := p.Position()
		for _, horizontal := range []bool{true, false} {
			span, ok := SpanAt(board, pos, horizontal)
			if !ok {
				continue
			}
			key := spanKey(span)
			if seen[key] {
				continue
			}
			seen[key] = true
			spans = append(spans, span)
		}
	}
	return spans
}

// SpanAt expands the occupied run through pos in the given orientation.
// Returns false if the run is shorter than two cells.
func SpanAt(board *model.Board, pos model.Position, horizontal bool) (model.WordSpan, bool) {
	if board.IsEmpty(pos) {
		return model.WordSpan{}, false
	}

	dRow, dCol := 1, 0
	if horizontal {
		dRow, dCol = 0, 1
	}

	start := pos
	for {
		prev := model.Position{Row: start.Row - dRow, Col: start.Col - dCol}
		if !board.InBounds(prev) || board.IsEmpty(prev) {
			break
		}
		start = prev
	}

	var positions []model.Position
	for cur := start; board.InBounds(cur) && !board.IsEmpty(cur); cur = (model.Position{Row: cur.Row + dRow, Col: cur.Col + dCol}) {
		positions = append(positions, cur)
	}

	if len(positions) < 2 {
		return model.WordSpan{}, false
	}
	return model.WordSpan{Positions: positions, Horizontal: horizontal}, true
}

func spanKey(span model.WordSpan) string {
	start := span.Start()
	orientation := "v"
	if span.Horizontal {
		orientation = "h"
	}
	return fmt.Sprintf("%s:%d:%d", orientation, start.Row, start.Col)
}
