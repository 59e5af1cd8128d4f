package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Player:
		o.printPlayer(v)
	case AuthResult:
		o.printAuthResult(v)
	case Room:
		o.printRoom(v)
	case GameView:
		o.printGameView(v)
	case MoveResult:
		o.printMoveResult(v)
	case ChallengeResult:
		o.printChallengeResult(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Player response type (matches API)
type Player struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	IsGuest     bool   `json:"is_guest"`
}

// AuthResult combines player and token
type AuthResult struct {
	Player       Player `json:"player"`
	SessionToken string `json:"session_token"`
}

// Room response type
type Room struct {
	Code        string   `json:"code"`
	HostID      string   `json:"host_id"`
	Players     []string `json:"players"`
	CurrentGame *string  `json:"current_game"`
}

// Tile response type
type Tile struct {
	ID      string `json:"id"`
	Letter  string `json:"letter"`
	Value   int    `json:"value"`
	IsBlank bool   `json:"is_blank,omitempty"`
}

// Board response type; nil cells are empty
type Board struct {
	Cells [][]*Tile `json:"cells"`
}

// StagedTile response type
type StagedTile struct {
	Row  int  `json:"row"`
	Col  int  `json:"col"`
	Tile Tile `json:"tile"`
}

// Opponent response type
type Opponent struct {
	PlayerID string `json:"player_id"`
	RackSize int    `json:"rack_size"`
	Score    int    `json:"score"`
}

// PendingMove response type
type PendingMove struct {
	PlayerID    string    `json:"player_id"`
	TilesPlaced int       `json:"tiles_placed"`
	Score       int       `json:"score"`
	SubmittedAt time.Time `json:"submitted_at"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// GameView response type
type GameView struct {
	ID          string       `json:"id"`
	RoomCode    string       `json:"room_code"`
	Players     []string     `json:"players"`
	TurnPlayer  string       `json:"turn_player"`
	Board       Board        `json:"board"`
	MyRack      []Tile       `json:"my_rack"`
	MyStaged    []StagedTile `json:"my_staged,omitempty"`
	MyScore     int          `json:"my_score"`
	Opponents   []Opponent   `json:"opponents"`
	BagCount    int          `json:"bag_count"`
	PendingMove *PendingMove `json:"pending_move,omitempty"`
}

// MoveResult response type
type MoveResult struct {
	Score int      `json:"score"`
	Words []string `json:"words"`
	Bingo bool     `json:"bingo"`
	Game  GameView `json:"game"`
}

// ChallengeResult response type
type ChallengeResult struct {
	Successful   bool     `json:"successful"`
	Words        []string `json:"words"`
	InvalidWords []string `json:"invalid_words,omitempty"`
	Game         GameView `json:"game"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printPlayer(p Player) {
	guestStr := "no"
	if p.IsGuest {
		guestStr = "yes"
	}
	fmt.Printf("Player: %s (%s)\n", p.DisplayName, p.ID)
	fmt.Printf("Guest: %s\n", guestStr)
}

func (o *Output) printAuthResult(a AuthResult) {
	o.printPlayer(a.Player)
	fmt.Printf("Token: %s\n", a.SessionToken)
}

func (o *Output) printRoom(r Room) {
	fmt.Printf("Room: %s\n", r.Code)
	fmt.Printf("Host: %s\n", r.HostID)
	if r.CurrentGame != nil {
		fmt.Printf("Current Game: %s\n", *r.CurrentGame)
	}
	fmt.Printf("Players (%d):\n", len(r.Players))
	for _, p := range r.Players {
		hostStr := ""
		if p == r.HostID {
			hostStr = " [host]"
		}
		fmt.Printf("  - %s%s\n", p, hostStr)
	}
}

func (o *Output) printGameView(g GameView) {
	fmt.Printf("Game: %s (room %s)\n", g.ID, g.RoomCode)
	fmt.Printf("Turn: %s\n", g.TurnPlayer)
	fmt.Printf("Bag: %d tiles\n", g.BagCount)

	if g.PendingMove != nil {
		fmt.Printf("Pending move: %s placed %d tiles for %d points (challengeable until %s)\n",
			g.PendingMove.PlayerID,
			g.PendingMove.TilesPlaced,
			g.PendingMove.Score,
			g.PendingMove.ExpiresAt.Format(time.RFC3339))
	}

	fmt.Println("\nBoard:")
	o.printBoard(g.Board, g.MyStaged)

	fmt.Printf("\nYour rack: %s\n", formatRack(g.MyRack))
	if len(g.MyStaged) > 0 {
		staged := make([]string, len(g.MyStaged))
		for i, s := range g.MyStaged {
			staged[i] = fmt.Sprintf("%s@(%d,%d)", s.Tile.Letter, s.Row, s.Col)
		}
		fmt.Printf("Staged: %s\n", strings.Join(staged, " "))
	}

	fmt.Printf("\nScores:\n")
	fmt.Printf("  you: %d\n", g.MyScore)
	for _, opp := range g.Opponents {
		fmt.Printf("  %s: %d (%d tiles in hand)\n", opp.PlayerID, opp.Score, opp.RackSize)
	}
}

func formatRack(rack []Tile) string {
	parts := make([]string, len(rack))
	for i, t := range rack {
		parts[i] = fmt.Sprintf("%s(%d)", t.Letter, t.Value)
	}
	return strings.Join(parts, " ")
}

func (o *Output) printBoard(b Board, staged []StagedTile) {
	size := len(b.Cells)
	if size == 0 {
		return
	}

	stagedAt := make(map[[2]int]string, len(staged))
	for _, s := range staged {
		stagedAt[[2]int{s.Row, s.Col}] = s.Tile.Letter
	}

	// Print column headers
	fmt.Print("    ")
	for col := 0; col < size; col++ {
		fmt.Printf("%2d ", col)
	}
	fmt.Println()

	// Print top border
	fmt.Print("   +")
	for col := 0; col < size; col++ {
		fmt.Print("---")
	}
	fmt.Println("+")

	// Print rows; staged tiles render lowercase to stand apart from
	// committed ones
	for row := 0; row < size; row++ {
		fmt.Printf("%2d |", row)
		for col := 0; col < size; col++ {
			if letter, ok := stagedAt[[2]int{row, col}]; ok {
				fmt.Printf(" %s ", strings.ToLower(letter))
			} else if cell := b.Cells[row][col]; cell != nil {
				fmt.Printf(" %s ", cell.Letter)
			} else {
				fmt.Print(" . ")
			}
		}
		fmt.Println("|")
	}

	// Print bottom border
	fmt.Print("   +")
	for col := 0; col < size; col++ {
		fmt.Print("---")
	}
	fmt.Println("+")
}

func (o *Output) printMoveResult(m MoveResult) {
	fmt.Printf("Move submitted: %d points\n", m.Score)
	if len(m.Words) > 0 {
		fmt.Printf("Words: %s\n", strings.Join(m.Words, ", "))
	}
	if m.Bingo {
		fmt.Println("Bingo! All seven tiles used.")
	}
	fmt.Println()
	o.printGameView(m.Game)
}

func (o *Output) printChallengeResult(c ChallengeResult) {
	if c.Successful {
		fmt.Println("Challenge successful! The move was rolled back.")
		if len(c.InvalidWords) > 0 {
			fmt.Printf("Invalid words: %s\n", strings.Join(c.InvalidWords, ", "))
		}
	} else {
		fmt.Println("Challenge failed: all words are valid.")
		if len(c.Words) > 0 {
			fmt.Printf("Words: %s\n", strings.Join(c.Words, ", "))
		}
	}
	fmt.Println()
	o.printGameView(c.Game)
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
