package model

// BoardSize is the fixed board dimension
const BoardSize = 15

// Position identifies a cell on the board
type Position struct {
	Row int `json:"row"` // 0-indexed from top
	Col int `json:"col"` // 0-indexed from left
}

// Center is the star square a game's first word must cover
var Center = Position{Row: 7, Col: 7}

// SquareType classifies a board cell's premium behaviour
type SquareType string

const (
	SquareNormal       SquareType = "normal"
	SquareDoubleLetter SquareType = "double_letter"
	SquareTripleLetter SquareType = "triple_letter"
	SquareDoubleWord   SquareType = "double_word"
	SquareTripleWord   SquareType = "triple_word"
	SquareCenter       SquareType = "center"
)

var tripleWordSquares = []Position{
	{0, 0}, {0, 7}, {0, 14},
	{7, 0}, {7, 14},
	{14, 0}, {14, 7}, {14, 14},
}

var doubleWordSquares = []Position{
	{1, 1}, {1, 13},
	{2, 2}, {2, 12},
	{3, 3}, {3, 11},
	{4, 4}, {4, 10},
	{10, 4}, {10, 10},
	{11, 3}, {11, 11},
	{12, 2}, {12, 12},
	{13, 1}, {13, 13},
}

var tripleLetterSquares = []Position{
	{1, 5}, {1, 9},
	{5, 1}, {5, 5}, {5, 9}, {5, 13},
	{9, 1}, {9, 5}, {9, 9}, {9, 13},
	{13, 5}, {13, 9},
}

var doubleLetterSquares = []Position{
	{0, 3}, {0, 11},
	{2, 6}, {2, 8},
	{3, 0}, {3, 7}, {3, 14},
	{6, 2}, {6, 6}, {6, 8}, {6, 12},
	{7, 3}, {7, 11},
	{8, 2}, {8, 6}, {8, 8}, {8, 12},
	{11, 0}, {11, 7}, {11, 14},
	{12, 6}, {12, 8},
	{14, 3}, {14, 11},
}

var squareTypes = buildSquareTypes()

func buildSquareTypes() map[Position]SquareType {
	m := make(map[Position]SquareType)
	for _, p := range tripleWordSquares {
		m[p] = SquareTripleWord
	}
	for _, p := range doubleWordSquares {
		m[p] = SquareDoubleWord
	}
	for _, p := range tripleLetterSquares {
		m[p] = SquareTripleLetter
	}
	for _, p := range doubleLetterSquares {
		m[p] = SquareDoubleLetter
	}
	m[Center] = SquareCenter
	return m
}

// ClassifySquare returns the premium type of a board position
func ClassifySquare(pos Position) SquareType {
	if t, ok := squareTypes[pos]; ok {
		return t
	}
	return SquareNormal
}

// Board is the shared committed grid for a game. Cells are nil where empty.
type Board struct {
	Cells [][]*Tile `json:"cells"`
}

// NewBoard creates an empty board
func NewBoard() *Board {
	cells := make([][]*Tile, BoardSize)
	for i := range cells {
		cells[i] = make([]*Tile, BoardSize)
	}
	return &Board{Cells: cells}
}

// InBounds returns true if the position is on the board
func (b *Board) InBounds(pos Position) bool {
	return pos.Row >= 0 && pos.Row < BoardSize && pos.Col >= 0 && pos.Col < BoardSize
}

// Get returns the tile at the given position, or nil if empty or out of bounds
func (b *Board) Get(pos Position) *Tile {
	if !b.InBounds(pos) {
		return nil
	}
	return b.Cells[pos.Row][pos.Col]
}

// Set places a tile at the given position
func (b *Board) Set(pos Position, tile Tile) {
	if b.InBounds(pos) {
		t := tile
		b.Cells[pos.Row][pos.Col] = &t
	}
}

// Clear empties the given position
func (b *Board) Clear(pos Position) {
	if b.InBounds(pos) {
		b.Cells[pos.Row][pos.Col] = nil
	}
}

// IsEmpty returns true if the cell at the given position holds no tile
func (b *Board) IsEmpty(pos Position) bool {
	return b.Get(pos) == nil
}

// Empty returns true if no tile has been committed to the board
func (b *Board) Empty() bool {
	return b.OccupiedCount() == 0
}

// OccupiedCount returns the number of cells holding a tile
func (b *Board) OccupiedCount() int {
	count := 0
	for row := range b.Cells {
		for col := range b.Cells[row] {
			if b.Cells[row][col] != nil {
				count++
			}
		}
	}
	return count
}

// Clone returns a deep copy of the board
func (b *Board) Clone() *Board {
	if b == nil {
		return nil
	}
	clone := NewBoard()
	for row := range b.Cells {
		for col := range b.Cells[row] {
			if t := b.Cells[row][col]; t != nil {
				tc := *t
				clone.Cells[row][col] = &tc
			}
		}
	}
	return clone
}

// WordSpan is a maximal run of occupied cells read as one word
type WordSpan struct {
	Positions  []Position `json:"positions"`
	Horizontal bool       `json:"horizontal"` // true = left-to-right, false = top-to-bottom
}

// Start returns the first cell of the span
func (w WordSpan) Start() Position {
	return w.Positions[0]
}

// Text reads the span off the board using each tile's display letter
func (w WordSpan) Text(b *Board) string {
	word := ""
	for _, pos := range w.Positions {
		if t := b.Get(pos); t != nil {
			word += t.DisplayLetter()
		}
	}
	return word
}
