package game

import (
	"context"
	"log/slog"
	"unicode"

	"github.com/wordtiles/wordtiles-go/internal/dependencies/clock"
	"github.com/wordtiles/wordtiles-go/internal/dependencies/random"
	"github.com/wordtiles/wordtiles-go/internal/model"
	"github.com/wordtiles/wordtiles-go/internal/services/dictionary"
	"github.com/wordtiles/wordtiles-go/internal/services/placement"
	"github.com/wordtiles/wordtiles-go/internal/services/scoring"
	"github.com/wordtiles/wordtiles-go/internal/services/tiles"
	"github.com/wordtiles/wordtiles-go/internal/services/words"
	"github.com/wordtiles/wordtiles-go/internal/storage"
)

// MoveResult reports a submitted move back to the caller
type MoveResult struct {
	Score int      `json:"score"`
	Words []string `json:"words"`
	Bingo bool     `json:"bingo"`
	Game  *model.Game
}

// ChallengeResult reports the outcome of a challenge
type ChallengeResult struct {
	Successful   bool     `json:"successful"`
	Words        []string `json:"words"`
	InvalidWords []string `json:"invalid_words,omitempty"`
	Game         *model.Game
}

// Controller drives the turn and challenge state machine. Every
// operation loads the game, applies one transition, and commits it with
// a single versioned save.
type Controller struct {
	storage      storage.Storage
	tilesService *tiles.Service
	validator    *placement.Validator
	scoring      *scoring.Service
	oracle       dictionary.Oracle
	clock        clock.Clock
	random       random.Random
	cfg          Config
	logger       *slog.Logger
}

// NewController creates a new game controller
func NewController(
	storage storage.Storage,
	tilesService *tiles.Service,
	validator *placement.Validator,
	scoringService *scoring.Service,
	oracle dictionary.Oracle,
	clock clock.Clock,
	random random.Random,
	cfg Config,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:      storage,
		tilesService: tilesService,
		validator:    validator,
		scoring:      scoringService,
		oracle:       oracle,
		clock:        clock,
		random:       random,
		cfg:          cfg,
		logger:       logger,
	}
}

// CreateGame initializes a new game: full bag, 7 tiles to each player,
// first player in the list to move
func (c *Controller) CreateGame(ctx context.Context, roomCode model.RoomCode, players []model.PlayerID) (*model.Game, error) {
	if len(players) < 2 {
		return nil, model.ErrInsufficientPlayers
	}

	now := c.clock.Now()
	gameID := model.GameID(c.random.String(12, "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"))

	bag := c.tilesService.NewBag()
	racks := make(map[model.PlayerID][]model.Tile, len(players))
	scores := make(map[model.PlayerID]int, len(players))
	for _, playerID := range players {
		var drawn []model.Tile
		drawn, bag = c.tilesService.Draw(bag, model.RackCapacity)
		racks[playerID] = drawn
		scores[playerID] = 0
	}

	game := &model.Game{
		ID:        gameID,
		RoomCode:  roomCode,
		Players:   append([]model.PlayerID(nil), players...),
		Racks:     racks,
		Scores:    scores,
		Board:     model.NewBoard(),
		Bag:       bag,
		TurnIndex: 0,
		Staged:    make(map[model.PlayerID][]model.PlacedTile),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := c.storage.SaveGame(ctx, game); err != nil {
		c.logger.Error("failed to save game",
			slog.String("game_id", string(gameID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("game created",
		slog.String("game_id", string(gameID)),
		slog.String("room_code", string(roomCode)),
		slog.Int("player_count", len(players)),
	)

	return game, nil
}

// GetGame retrieves a game by ID
func (c *Controller) GetGame(ctx context.Context, gameID model.GameID) (*model.Game, error) {
	return c.storage.GetGame(ctx, gameID)
}

// PlaceTile stages one rack tile onto an empty board cell. The tile
// leaves the rack but the committed board is untouched until submit.
func (c *Controller) PlaceTile(ctx context.Context, gameID model.GameID, playerID model.PlayerID, pos model.Position, tileID model.TileID) (*model.Game, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if !game.HasPlayer(playerID) {
		return nil, model.ErrPlayerNotFound
	}
	if game.CurrentPlayer() != playerID {
		return nil, model.ErrNotYourTurn
	}
	if !game.Board.InBounds(pos) {
		return nil, model.ErrInvalidPosition
	}
	if !game.Board.IsEmpty(pos) {
		return nil, model.ErrCellOccupied
	}
	for _, staged := range game.Staged[playerID] {
		if staged.Position() == pos {
			return nil, model.ErrCellOccupied
		}
	}

	rack := game.Racks[playerID]
	idx := tileIndex(rack, tileID)
	if idx == -1 {
		return nil, model.ErrTileNotOnRack
	}

	tile := rack[idx]
	game.Racks[playerID] = append(rack[:idx:idx], rack[idx+1:]...)
	game.Staged[playerID] = append(game.Staged[playerID], model.PlacedTile{
		Row:  pos.Row,
		Col:  pos.Col,
		Tile: tile,
	})
	game.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}
	return game, nil
}

// AssignBlank sets a blank tile's chosen letter. The tile may be on the
// player's rack or already staged.
func (c *Controller) AssignBlank(ctx context.Context, gameID model.GameID, playerID model.PlayerID, tileID model.TileID, letter string) (*model.Game, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if !game.HasPlayer(playerID) {
		return nil, model.ErrPlayerNotFound
	}

	normalized, err := normalizeLetter(letter)
	if err != nil {
		return nil, err
	}

	rack := game.Racks[playerID]
	if idx := tileIndex(rack, tileID); idx != -1 {
		if !rack[idx].IsBlank {
			return nil, model.ErrNotBlankTile
		}
		rack[idx].ChosenLetter = normalized
	} else {
		staged := game.Staged[playerID]
		found := false
		for i := range staged {
			if staged[i].Tile.ID == tileID {
				if !staged[i].Tile.IsBlank {
					return nil, model.ErrNotBlankTile
				}
				staged[i].Tile.ChosenLetter = normalized
				found = true
				break
			}
		}
		if !found {
			return nil, model.ErrTileNotOnRack
		}
	}

	game.UpdatedAt = c.clock.Now()
	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}
	return game, nil
}

// RetrieveAll pulls every staged tile back to the turn player's rack,
// resetting blanks. Only possible before submit; never touches a
// pending move.
func (c *Controller) RetrieveAll(ctx context.Context, gameID model.GameID, playerID model.PlayerID) (*model.Game, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if !game.HasPlayer(playerID) {
		return nil, model.ErrPlayerNotFound
	}
	if game.CurrentPlayer() != playerID {
		return nil, model.ErrNotYourTurn
	}

	staged := game.Staged[playerID]
	for _, p := range staged {
		game.Racks[playerID] = append(game.Racks[playerID], tiles.ResetBlank(p.Tile))
	}
	delete(game.Staged, playerID)
	game.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}
	return game, nil
}

// ShuffleRack reorders the player's rack. Allowed for any player at any
// time; it changes nothing but presentation order.
func (c *Controller) ShuffleRack(ctx context.Context, gameID model.GameID, playerID model.PlayerID) (*model.Game, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if !game.HasPlayer(playerID) {
		return nil, model.ErrPlayerNotFound
	}

	game.Racks[playerID] = c.tilesService.ShuffleRack(game.Racks[playerID])
	game.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}
	return game, nil
}

// SubmitMove commits the turn player's staged tiles: validate, place on
// the board, score, draw replacements, open a challenge window and
// advance the turn. An earlier pending move that was never challenged
// is closed out here.
func (c *Controller) SubmitMove(ctx context.Context, gameID model.GameID, playerID model.PlayerID) (*MoveResult, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if !game.HasPlayer(playerID) {
		return nil, model.ErrPlayerNotFound
	}
	if game.CurrentPlayer() != playerID {
		return nil, model.ErrNotYourTurn
	}

	staged := game.Staged[playerID]
	if err := c.validator.Validate(game.Board, staged); err != nil {
		return nil, err
	}

	// Previous move's window closes unchallenged
	if game.PendingMove != nil {
		c.logger.Info("previous move stands unchallenged",
			slog.String("game_id", string(gameID)),
			slog.String("player_id", string(game.PendingMove.OriginalPlayerID)),
		)
		game.PendingMove = nil
	}

	firstMove := game.Board.Empty()
	boardBefore := game.Board.Clone()
	rackBefore := append([]model.Tile(nil), game.Racks[playerID]...)

	for _, p := range staged {
		game.Board.Set(p.Position(), p.Tile)
	}
	delete(game.Staged, playerID)

	moveScore := c.scoring.ScoreMove(game.Board, staged, firstMove)
	game.Scores[playerID] += moveScore.Total

	drawn, remaining := c.tilesService.Draw(game.Bag, model.RackCapacity-len(game.Racks[playerID]))
	game.Racks[playerID] = append(game.Racks[playerID], drawn...)
	game.Bag = remaining

	now := c.clock.Now()
	game.PendingMove = &model.PendingMove{
		OriginalPlayerID: playerID,
		PlacedTiles:      append([]model.PlacedTile(nil), staged...),
		Score:            moveScore.Total,
		BoardBefore:      boardBefore,
		RackBefore:       rackBefore,
		DrawnTiles:       drawn,
		SubmittedAt:      now,
		ExpiresAt:        now.Add(c.cfg.ChallengeWindow),
	}
	game.AdvanceTurn()
	game.UpdatedAt = now

	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}

	wordList := make([]string, 0, len(moveScore.Words))
	for _, w := range moveScore.Words {
		wordList = append(wordList, w.Word)
	}

	c.logger.Info("move submitted",
		slog.String("game_id", string(gameID)),
		slog.String("player_id", string(playerID)),
		slog.Int("score", moveScore.Total),
		slog.Int("tiles_placed", len(staged)),
		slog.Bool("bingo", moveScore.Bingo),
	)

	return &MoveResult{
		Score: moveScore.Total,
		Words: wordList,
		Bingo: moveScore.Bingo,
		Game:  game,
	}, nil
}

// ChallengeMove disputes the pending move. Every word the move formed
// is checked against the dictionary oracle; if any is invalid the move
// is rolled back, otherwise the challenge fails and (by default) the
// challenger forfeits their upcoming turn.
func (c *Controller) ChallengeMove(ctx context.Context, gameID model.GameID, challengerID model.PlayerID) (*ChallengeResult, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if !game.HasPlayer(challengerID) {
		return nil, model.ErrPlayerNotFound
	}

	pending := game.PendingMove
	if pending == nil {
		return nil, model.ErrNoActiveChallenge
	}
	if pending.OriginalPlayerID == challengerID {
		return nil, model.ErrChallengeOwnMove
	}

	now := c.clock.Now()
	if now.After(pending.ExpiresAt) {
		// Window closed; clear it and reject the challenge
		game.PendingMove = nil
		game.UpdatedAt = now
		if err := c.storage.SaveGame(ctx, game); err != nil {
			return nil, err
		}
		return nil, model.ErrNoActiveChallenge
	}

	wordList, invalidWords := c.checkWords(ctx, game, pending)

	if len(invalidWords) == 0 {
		// Challenge fails; the move stands
		game.PendingMove = nil
		if c.cfg.ChallengerLosesTurn && game.CurrentPlayer() == challengerID {
			game.AdvanceTurn()
		}
		game.UpdatedAt = now

		if err := c.storage.SaveGame(ctx, game); err != nil {
			return nil, err
		}

		c.logger.Info("challenge failed",
			slog.String("game_id", string(gameID)),
			slog.String("challenger_id", string(challengerID)),
		)
		return &ChallengeResult{
			Successful: false,
			Words:      wordList,
			Game:       game,
		}, nil
	}

	c.rollbackMove(game, pending)
	game.PendingMove = nil
	game.UpdatedAt = now

	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}

	c.logger.Info("challenge succeeded",
		slog.String("game_id", string(gameID)),
		slog.String("challenger_id", string(challengerID)),
		slog.String("mover_id", string(pending.OriginalPlayerID)),
		slog.Int("reversed_score", pending.Score),
	)

	return &ChallengeResult{
		Successful:   true,
		Words:        wordList,
		InvalidWords: invalidWords,
		Game:         game,
	}, nil
}

// ExpireChallenge closes an expired challenge window with no other
// effect. Returns true if a window was actually closed.
func (c *Controller) ExpireChallenge(ctx context.Context, gameID model.GameID) (bool, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return false, err
	}

	pending := game.PendingMove
	if pending == nil {
		return false, nil
	}

	now := c.clock.Now()
	if now.Before(pending.ExpiresAt) {
		return false, nil
	}

	game.PendingMove = nil
	game.UpdatedAt = now
	if err := c.storage.SaveGame(ctx, game); err != nil {
		return false, err
	}

	c.logger.Info("challenge window expired",
		slog.String("game_id", string(gameID)),
		slog.String("player_id", string(pending.OriginalPlayerID)),
	)
	return true, nil
}

// checkWords re-extracts the pending move's words from the committed
// board and asks the oracle about each. Oracle failures count the word
// as valid so a flaky dictionary can never sink a legitimate move.
func (c *Controller) checkWords(ctx context.Context, game *model.Game, pending *model.PendingMove) (wordList, invalidWords []string) {
	for _, span := range words.Extract(game.Board, pending.PlacedTiles) {
		word := span.Text(game.Board)
		wordList = append(wordList, word)

		valid, err := c.oracle.IsValidWord(ctx, word)
		if err != nil {
			c.logger.Warn("dictionary oracle unavailable, treating word as valid",
				slog.String("game_id", string(game.ID)),
				slog.String("word", word),
				slog.String("error", err.Error()),
			)
			continue
		}
		if !valid {
			invalidWords = append(invalidWords, word)
		}
	}
	return wordList, invalidWords
}

// rollbackMove undoes the pending move: board back to its snapshot,
// score reversed (floored at zero), placed tiles back on the mover's
// rack with blanks reset, drawn tiles pulled off the rack and
// reshuffled into the bag
func (c *Controller) rollbackMove(game *model.Game, pending *model.PendingMove) {
	mover := pending.OriginalPlayerID

	game.Board = pending.BoardBefore.Clone()

	newScore := game.Scores[mover] - pending.Score
	if newScore < 0 {
		newScore = 0
	}
	game.Scores[mover] = newScore

	rack := game.Racks[mover]

	// If the mover staged tiles for their next move, unstage them first
	// so drawn tiles can be found wherever they went
	for _, p := range game.Staged[mover] {
		rack = append(rack, tiles.ResetBlank(p.Tile))
	}
	delete(game.Staged, mover)

	for _, drawn := range pending.DrawnTiles {
		if idx := tileIndex(rack, drawn.ID); idx != -1 {
			rack = append(rack[:idx:idx], rack[idx+1:]...)
		}
	}

	for _, p := range pending.PlacedTiles {
		rack = append(rack, tiles.ResetBlank(p.Tile))
	}

	game.Racks[mover] = rack
	game.Bag = c.tilesService.Restore(tiles.ResetBlanks(pending.DrawnTiles), game.Bag)
}

func tileIndex(rack []model.Tile, tileID model.TileID) int {
	for i, t := range rack {
		if t.ID == tileID {
			return i
		}
	}
	return -1
}

// normalizeLetter validates and uppercases a single A-Z letter
func normalizeLetter(letter string) (string, error) {
	runes := []rune(letter)
	if len(runes) != 1 {
		return "", model.ErrInvalidLetter
	}
	r := unicode.ToUpper(runes[0])
	if r < 'A' || r > 'Z' {
		return "", model.ErrInvalidLetter
	}
	return string(r), nil
}

// ControllerInterface is the controller surface handlers depend on
type ControllerInterface interface {
	CreateGame(ctx context.Context, roomCode model.RoomCode, players []model.PlayerID) (*model.Game, error)
	GetGame(ctx context.Context, gameID model.GameID) (*model.Game, error)
	PlaceTile(ctx context.Context, gameID model.GameID, playerID model.PlayerID, pos model.Position, tileID model.TileID) (*model.Game, error)
	AssignBlank(ctx context.Context, gameID model.GameID, playerID model.PlayerID, tileID model.TileID, letter string) (*model.Game, error)
	RetrieveAll(ctx context.Context, gameID model.GameID, playerID model.PlayerID) (*model.Game, error)
	ShuffleRack(ctx context.Context, gameID model.GameID, playerID model.PlayerID) (*model.Game, error)
	SubmitMove(ctx context.Context, gameID model.GameID, playerID model.PlayerID) (*MoveResult, error)
	ChallengeMove(ctx context.Context, gameID model.GameID, challengerID model.PlayerID) (*ChallengeResult, error)
	ExpireChallenge(ctx context.Context, gameID model.GameID) (bool, error)
}

var _ ControllerInterface = (*Controller)(nil)
