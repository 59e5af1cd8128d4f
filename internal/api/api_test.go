package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wordtiles/wordtiles-go/internal/api"
	"github.com/wordtiles/wordtiles-go/internal/api/response"
	"github.com/wordtiles/wordtiles-go/internal/factory"
	"github.com/wordtiles/wordtiles-go/internal/storage/memory"
)

// testServer creates a test server with all dependencies
type testServer struct {
	handler http.Handler
	storage *memory.Storage
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	// API tests are integration tests - use production factory with real random/clock
	app, err := factory.New(factory.Config{})
	require.NoError(t, err)
	err = app.DictionaryService.LoadFromFile(context.Background(), "../../data/words.txt")
	require.NoError(t, err)

	router := api.NewRouter(api.RouterConfig{
		Logger:         logger,
		AuthService:    app.AuthService,
		RoomController: app.RoomController,
		GameController: app.GameController,
	})

	return &testServer{
		handler: router,
		storage: app.Storage.(*memory.Storage),
	}
}

func (ts *testServer) request(method, path string, body any, token string) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		b, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(b)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/health", nil, "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "ok")
}

func TestCreateGuestPlayer(t *testing.T) {
	ts := newTestServer(t)

	body := map[string]string{"display_name": "Alice"}
	rr := ts.request(http.MethodPost, "/api/v1/players/guest", body, "")

	assert.Equal(t, http.StatusCreated, rr.Code)

	var resp response.AuthResponse
	err := json.Unmarshal(rr.Body.Bytes(), &resp)
	require.NoError(t, err)

	assert.Equal(t, "Alice", resp.Player.DisplayName)
	assert.True(t, resp.Player.IsGuest)
	assert.NotEmpty(t, resp.SessionToken)
}

func TestCreateGuestRequiresDisplayName(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/players/guest", map[string]string{}, "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestRegisterAndLogin(t *testing.T) {
	ts := newTestServer(t)

	// Register
	registerBody := map[string]string{
		"username":     "alice",
		"password":     "secret123",
		"display_name": "Alice",
	}
	rr := ts.request(http.MethodPost, "/api/v1/players/register", registerBody, "")
	assert.Equal(t, http.StatusCreated, rr.Code)

	var registerResp response.AuthResponse
	err := json.Unmarshal(rr.Body.Bytes(), &registerResp)
	require.NoError(t, err)
	assert.False(t, registerResp.Player.IsGuest)

	// Duplicate username
	rr = ts.request(http.MethodPost, "/api/v1/players/register", registerBody, "")
	assert.Equal(t, http.StatusConflict, rr.Code)

	// Login
	loginBody := map[string]string{
		"username": "alice",
		"password": "secret123",
	}
	rr = ts.request(http.MethodPost, "/api/v1/players/login", loginBody, "")
	assert.Equal(t, http.StatusOK, rr.Code)

	var loginResp response.AuthResponse
	err = json.Unmarshal(rr.Body.Bytes(), &loginResp)
	require.NoError(t, err)
	assert.Equal(t, registerResp.Player.ID, loginResp.Player.ID)

	// Wrong password
	loginBody["password"] = "wrong"
	rr = ts.request(http.MethodPost, "/api/v1/players/login", loginBody, "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestGetMe(t *testing.T) {
	ts := newTestServer(t)
	token := createGuestPlayer(t, ts, "Bob")

	rr := ts.request(http.MethodGet, "/api/v1/players/me", nil, token)
	assert.Equal(t, http.StatusOK, rr.Code)

	var meResp response.Player
	err := json.Unmarshal(rr.Body.Bytes(), &meResp)
	require.NoError(t, err)
	assert.Equal(t, "Bob", meResp.DisplayName)
}

func TestUnauthorizedWithoutToken(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/players/me", nil, "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = ts.request(http.MethodPost, "/api/v1/rooms", nil, "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/games/whatever", nil, "bogus-token")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestCreateAndJoinRoom(t *testing.T) {
	ts := newTestServer(t)

	token1 := createGuestPlayer(t, ts, "Alice")
	token2 := createGuestPlayer(t, ts, "Bob")

	// Alice creates a room
	rr := ts.request(http.MethodPost, "/api/v1/rooms", nil, token1)
	assert.Equal(t, http.StatusCreated, rr.Code)

	var roomResp response.Room
	err := json.Unmarshal(rr.Body.Bytes(), &roomResp)
	require.NoError(t, err)

	assert.Len(t, roomResp.Code, 6)
	assert.Len(t, roomResp.Players, 1)
	assert.Nil(t, roomResp.CurrentGame)

	// Bob joins
	rr = ts.request(http.MethodPost, "/api/v1/rooms/"+roomResp.Code+"/join", nil, token2)
	assert.Equal(t, http.StatusOK, rr.Code)

	var joinResp response.Room
	err = json.Unmarshal(rr.Body.Bytes(), &joinResp)
	require.NoError(t, err)
	assert.Len(t, joinResp.Players, 2)

	// Joining twice conflicts
	rr = ts.request(http.MethodPost, "/api/v1/rooms/"+roomResp.Code+"/join", nil, token2)
	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestJoinMissingRoom(t *testing.T) {
	ts := newTestServer(t)
	token := createGuestPlayer(t, ts, "Alice")

	rr := ts.request(http.MethodPost, "/api/v1/rooms/ZZZZ99/join", nil, token)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestRoomFull(t *testing.T) {
	ts := newTestServer(t)

	host := createGuestPlayer(t, ts, "Host")
	code := createRoom(t, ts, host)

	for _, name := range []string{"P2", "P3", "P4"} {
		token := createGuestPlayer(t, ts, name)
		rr := ts.request(http.MethodPost, "/api/v1/rooms/"+code+"/join", nil, token)
		require.Equal(t, http.StatusOK, rr.Code)
	}

	late := createGuestPlayer(t, ts, "P5")
	rr := ts.request(http.MethodPost, "/api/v1/rooms/"+code+"/join", nil, late)
	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestLeaveRoom(t *testing.T) {
	ts := newTestServer(t)

	token1 := createGuestPlayer(t, ts, "Alice")
	token2 := createGuestPlayer(t, ts, "Bob")
	code := createRoom(t, ts, token1)

	rr := ts.request(http.MethodPost, "/api/v1/rooms/"+code+"/join", nil, token2)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = ts.request(http.MethodPost, "/api/v1/rooms/"+code+"/leave", nil, token2)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/rooms/"+code, nil, token1)
	assert.Equal(t, http.StatusOK, rr.Code)

	var roomResp response.Room
	err := json.Unmarshal(rr.Body.Bytes(), &roomResp)
	require.NoError(t, err)
	assert.Len(t, roomResp.Players, 1)
}

func TestStartGameRequiresHost(t *testing.T) {
	ts := newTestServer(t)

	token1 := createGuestPlayer(t, ts, "Alice")
	token2 := createGuestPlayer(t, ts, "Bob")
	code := createRoom(t, ts, token1)

	rr := ts.request(http.MethodPost, "/api/v1/rooms/"+code+"/join", nil, token2)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = ts.request(http.MethodPost, "/api/v1/rooms/"+code+"/game", nil, token2)
	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestStartGameNeedsTwoPlayers(t *testing.T) {
	ts := newTestServer(t)

	token := createGuestPlayer(t, ts, "Alice")
	code := createRoom(t, ts, token)

	rr := ts.request(http.MethodPost, "/api/v1/rooms/"+code+"/game", nil, token)
	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestGameFlow(t *testing.T) {
	ts := newTestServer(t)

	token1 := createGuestPlayer(t, ts, "Alice")
	token2 := createGuestPlayer(t, ts, "Bob")
	code := createRoom(t, ts, token1)

	rr := ts.request(http.MethodPost, "/api/v1/rooms/"+code+"/join", nil, token2)
	require.Equal(t, http.StatusOK, rr.Code)

	// Start the game
	rr = ts.request(http.MethodPost, "/api/v1/rooms/"+code+"/game", nil, token1)
	require.Equal(t, http.StatusCreated, rr.Code)

	var view response.GameView
	err := json.Unmarshal(rr.Body.Bytes(), &view)
	require.NoError(t, err)

	gameID := view.ID
	require.NotEmpty(t, gameID)
	assert.Len(t, view.MyRack, 7)
	assert.Len(t, view.Players, 2)
	assert.Len(t, view.Opponents, 1)
	assert.Equal(t, 7, view.Opponents[0].RackSize)
	assert.Equal(t, 86, view.BagCount)

	// Each player sees their own rack and the same turn player
	rr = ts.request(http.MethodGet, "/api/v1/games/"+gameID, nil, token2)
	require.Equal(t, http.StatusOK, rr.Code)

	var view2 response.GameView
	err = json.Unmarshal(rr.Body.Bytes(), &view2)
	require.NoError(t, err)
	assert.Len(t, view2.MyRack, 7)
	assert.Equal(t, view.TurnPlayer, view2.TurnPlayer)

	// The host moves first: stage a single tile on the center square
	// (skipping blanks, which need a letter before submit)
	tileID := firstRegularTile(t, view.MyRack)
	placeBody := map[string]any{"row": 7, "col": 7, "tile_id": tileID}
	rr = ts.request(http.MethodPost, "/api/v1/games/"+gameID+"/place", placeBody, token1)
	require.Equal(t, http.StatusOK, rr.Code)

	var placed response.GameView
	err = json.Unmarshal(rr.Body.Bytes(), &placed)
	require.NoError(t, err)
	assert.Len(t, placed.MyRack, 6)
	assert.Len(t, placed.MyStaged, 1)

	// The opponent cannot place out of turn
	rr = ts.request(http.MethodPost, "/api/v1/games/"+gameID+"/place",
		map[string]any{"row": 8, "col": 7, "tile_id": view2.MyRack[0].ID}, token2)
	assert.Equal(t, http.StatusForbidden, rr.Code)

	// Submit the single-tile opener
	rr = ts.request(http.MethodPost, "/api/v1/games/"+gameID+"/submit", nil, token1)
	require.Equal(t, http.StatusOK, rr.Code)

	var moveResp response.MoveResponse
	err = json.Unmarshal(rr.Body.Bytes(), &moveResp)
	require.NoError(t, err)

	// A lone tile forms no words and scores nothing
	assert.Equal(t, 0, moveResp.Score)
	assert.Empty(t, moveResp.Words)
	assert.Len(t, moveResp.Game.MyRack, 7)
	require.NotNil(t, moveResp.Game.PendingMove)
	assert.Equal(t, 1, moveResp.Game.PendingMove.TilesPlaced)

	// A wordless move gives a challenger nothing to dispute
	rr = ts.request(http.MethodPost, "/api/v1/games/"+gameID+"/challenge", nil, token2)
	require.Equal(t, http.StatusOK, rr.Code)

	var challengeResp response.ChallengeResponse
	err = json.Unmarshal(rr.Body.Bytes(), &challengeResp)
	require.NoError(t, err)
	assert.False(t, challengeResp.Successful)
	assert.Empty(t, challengeResp.InvalidWords)
}

func TestRetrieveAndShuffle(t *testing.T) {
	ts := newTestServer(t)

	token1 := createGuestPlayer(t, ts, "Alice")
	token2 := createGuestPlayer(t, ts, "Bob")
	code := createRoom(t, ts, token1)

	rr := ts.request(http.MethodPost, "/api/v1/rooms/"+code+"/join", nil, token2)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = ts.request(http.MethodPost, "/api/v1/rooms/"+code+"/game", nil, token1)
	require.Equal(t, http.StatusCreated, rr.Code)

	var view response.GameView
	err := json.Unmarshal(rr.Body.Bytes(), &view)
	require.NoError(t, err)
	gameID := view.ID

	// Stage two tiles, then pull them back
	for i, tile := range view.MyRack[:2] {
		body := map[string]any{"row": 7, "col": 7 + i, "tile_id": tile.ID}
		rr = ts.request(http.MethodPost, "/api/v1/games/"+gameID+"/place", body, token1)
		require.Equal(t, http.StatusOK, rr.Code)
	}

	rr = ts.request(http.MethodPost, "/api/v1/games/"+gameID+"/retrieve", nil, token1)
	require.Equal(t, http.StatusOK, rr.Code)

	var retrieved response.GameView
	err = json.Unmarshal(rr.Body.Bytes(), &retrieved)
	require.NoError(t, err)
	assert.Len(t, retrieved.MyRack, 7)
	assert.Empty(t, retrieved.MyStaged)

	// Shuffling is allowed even off-turn
	rr = ts.request(http.MethodPost, "/api/v1/games/"+gameID+"/shuffle", nil, token2)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestGameAccessDeniedToOutsiders(t *testing.T) {
	ts := newTestServer(t)

	token1 := createGuestPlayer(t, ts, "Alice")
	token2 := createGuestPlayer(t, ts, "Bob")
	outsider := createGuestPlayer(t, ts, "Eve")
	code := createRoom(t, ts, token1)

	rr := ts.request(http.MethodPost, "/api/v1/rooms/"+code+"/join", nil, token2)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = ts.request(http.MethodPost, "/api/v1/rooms/"+code+"/game", nil, token1)
	require.Equal(t, http.StatusCreated, rr.Code)

	var view response.GameView
	err := json.Unmarshal(rr.Body.Bytes(), &view)
	require.NoError(t, err)

	rr = ts.request(http.MethodGet, "/api/v1/games/"+view.ID, nil, outsider)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestGetMissingGame(t *testing.T) {
	ts := newTestServer(t)
	token := createGuestPlayer(t, ts, "Alice")

	rr := ts.request(http.MethodGet, "/api/v1/games/NOSUCHGAME12", nil, token)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

// Helper functions

func createGuestPlayer(t *testing.T, ts *testServer, displayName string) string {
	t.Helper()

	body := map[string]string{"display_name": displayName}
	rr := ts.request(http.MethodPost, "/api/v1/players/guest", body, "")
	require.Equal(t, http.StatusCreated, rr.Code)

	var resp response.AuthResponse
	err := json.Unmarshal(rr.Body.Bytes(), &resp)
	require.NoError(t, err)

	return resp.SessionToken
}

func firstRegularTile(t *testing.T, rack []response.Tile) string {
	t.Helper()

	for _, tile := range rack {
		if !tile.IsBlank {
			return tile.ID
		}
	}
	t.Fatal("rack holds only blanks")
	return ""
}

func createRoom(t *testing.T, ts *testServer, token string) string {
	t.Helper()

	rr := ts.request(http.MethodPost, "/api/v1/rooms", nil, token)
	require.Equal(t, http.StatusCreated, rr.Code)

	var resp response.Room
	err := json.Unmarshal(rr.Body.Bytes(), &resp)
	require.NoError(t, err)

	return resp.Code
}
