package placement

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/wordtiles/wordtiles-go/internal/model"
)

type ValidatorSuite struct {
	suite.Suite
	validator *Validator
	board     *model.Board
}

func TestValidatorSuite(t *testing.T) {
	suite.Run(t, new(ValidatorSuite))
}

func (s *ValidatorSuite) SetupTest() {
	s.validator = NewDefault()
	s.board = model.NewBoard()
}

func placed(row, col int, letter string) model.PlacedTile {
	return model.PlacedTile{
		Row:  row,
		Col:  col,
		Tile: model.Tile{ID: model.TileID(letter), Letter: letter, Value: 1},
	}
}

func (s *ValidatorSuite) assertInvalid(placements []model.PlacedTile, reason string) {
	err := s.validator.Validate(s.board, placements)
	s.Require().Error(err)

	var placementErr *model.InvalidPlacementError
	s.Require().ErrorAs(err, &placementErr)
	s.Equal(reason, placementErr.Reason)
}

func (s *ValidatorSuite) TestEmptyPlacement() {
	s.assertInvalid(nil, "no tiles placed")
}

func (s *ValidatorSuite) TestTooManyTiles() {
	placements := make([]model.PlacedTile, 8)
	for i := range placements {
		placements[i] = placed(7, i+1, "A")
	}
	s.assertInvalid(placements, "more than 7 tiles placed")
}

func (s *ValidatorSuite) TestOutOfBounds() {
	s.assertInvalid(
		[]model.PlacedTile{placed(7, 15, "A")},
		"position (7,15) is out of bounds")
}

func (s *ValidatorSuite) TestOccupiedCell() {
	s.board.Set(model.Position{Row: 7, Col: 7}, model.Tile{ID: "x", Letter: "X"})
	s.assertInvalid(
		[]model.PlacedTile{placed(7, 7, "A")},
		"cell (7,7) is already occupied")
}

func (s *ValidatorSuite) TestDuplicatePlacement() {
	s.assertInvalid(
		[]model.PlacedTile{placed(7, 7, "A"), placed(7, 7, "B")},
		"duplicate placement at (7,7)")
}

func (s *ValidatorSuite) TestUnassignedBlank() {
	blank := model.PlacedTile{
		Row:  7,
		Col:  7,
		Tile: model.Tile{ID: "b", IsBlank: true},
	}
	s.assertInvalid([]model.PlacedTile{blank}, "blank tile has no letter assigned")
}

func (s *ValidatorSuite) TestAssignedBlankIsFine() {
	blank := model.PlacedTile{
		Row:  7,
		Col:  7,
		Tile: model.Tile{ID: "b", IsBlank: true, ChosenLetter: "Q"},
	}
	s.NoError(s.validator.Validate(s.board, []model.PlacedTile{blank}))
}

func (s *ValidatorSuite) TestNotInLine() {
	s.assertInvalid(
		[]model.PlacedTile{placed(7, 7, "C"), placed(8, 8, "A")},
		"tiles must be placed in a single row or column")
}

func (s *ValidatorSuite) TestGapInRun() {
	s.assertInvalid(
		[]model.PlacedTile{placed(7, 7, "C"), placed(7, 9, "T")},
		"tiles must form a continuous word")
}

func (s *ValidatorSuite) TestGapFilledByBoardTile() {
	s.board.Set(model.Position{Row: 7, Col: 8}, model.Tile{ID: "x", Letter: "A"})
	placements := []model.PlacedTile{placed(7, 7, "C"), placed(7, 9, "T")}
	s.NoError(s.validator.Validate(s.board, placements))
}

func (s *ValidatorSuite) TestFirstMoveMustCoverCenter() {
	s.assertInvalid(
		[]model.PlacedTile{placed(0, 0, "A"), placed(0, 1, "T")},
		"first word must cover the center square")
}

func (s *ValidatorSuite) TestFirstMoveOnCenter() {
	placements := []model.PlacedTile{placed(7, 7, "A"), placed(7, 8, "T")}
	s.NoError(s.validator.Validate(s.board, placements))
}

func (s *ValidatorSuite) TestLaterMoveMustConnect() {
	s.board.Set(model.Position{Row: 7, Col: 7}, model.Tile{ID: "x", Letter: "A"})
	s.assertInvalid(
		[]model.PlacedTile{placed(0, 0, "A"), placed(0, 1, "T")},
		"word must connect to existing tiles")
}

func (s *ValidatorSuite) TestLaterMoveAdjacent() {
	s.board.Set(model.Position{Row: 7, Col: 7}, model.Tile{ID: "x", Letter: "A"})
	placements := []model.PlacedTile{placed(8, 7, "T")}
	s.NoError(s.validator.Validate(s.board, placements))
}

func (s *ValidatorSuite) TestVerticalWordThroughExisting() {
	s.board.Set(model.Position{Row: 7, Col: 7}, model.Tile{ID: "x", Letter: "A"})
	// C above and T below the existing A, same column
	placements := []model.PlacedTile{placed(6, 7, "C"), placed(8, 7, "T")}
	s.NoError(s.validator.Validate(s.board, placements))
}

func (s *ValidatorSuite) TestSingleTileVertical() {
	s.board.Set(model.Position{Row: 7, Col: 7}, model.Tile{ID: "x", Letter: "A"})
	s.NoError(s.validator.Validate(s.board, []model.PlacedTile{placed(7, 8, "T")}))
}

// Strategy tests

func TestStrategiesOnOverlapOnlyConnectivity(t *testing.T) {
	board := model.NewBoard()
	board.Set(model.Position{Row: 7, Col: 8}, model.Tile{ID: "x", Letter: "A"})

	// The run from (7,6) to (7,10) passes through the existing tile at
	// (7,8), but neither staged cell is orthogonally adjacent to it
	placements := []model.PlacedTile{placed(7, 6, "C"), placed(7, 10, "E")}

	if (AdjacentOnly{}).IsConnected(board, placements) {
		t.Fatal("AdjacentOnly should not accept overlap-only connectivity")
	}
	if !(AdjacentOrLine{}).IsConnected(board, placements) {
		t.Fatal("AdjacentOrLine should accept a run through an existing tile")
	}
}
