package factory

import (
	"time"

	"github.com/wordtiles/wordtiles-go/internal/dependencies/mocks"
	"github.com/wordtiles/wordtiles-go/internal/services/auth"
	"github.com/wordtiles/wordtiles-go/internal/services/game"
	"github.com/wordtiles/wordtiles-go/internal/storage/memory"
	"github.com/wordtiles/wordtiles-go/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app, err := newWithDependencies(store, mockClock, mockRandom, auth.DefaultConfig(), game.DefaultConfig(), 0, testutil.NopLogger())
	if err != nil {
		panic(err)
	}

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}

// LoadTestDictionary loads a small dictionary for testing
func (t *TestApp) LoadTestDictionary() error {
	words := []string{
		// 2-letter words
		"aa", "ab", "ad", "at", "be", "do", "go", "he", "if", "in", "is", "it", "me",
		"my", "no", "of", "on", "or", "so", "to", "up", "us", "we",
		// 3-letter words
		"ace", "act", "and", "ant", "are", "arm", "art", "ask", "ate",
		"bat", "bee", "cab", "cad", "can", "cap", "car", "cat", "cow", "cup",
		"dog", "ear", "eat", "end", "fan", "fat", "fit", "fox", "gas",
		"hat", "hen", "ice", "jam", "key", "law", "leg", "lot", "man",
		"map", "mat", "net", "nut", "oak", "one", "pan", "pat", "pen",
		"pet", "pig", "pin", "pot", "rat", "red", "rub", "run", "sat",
		"sea", "set", "sun", "tan", "tap", "tea", "ten", "tie", "tin",
		"top", "toy", "two", "use", "van", "war", "wax", "web", "win",
		// 4-letter words
		"able", "also", "area", "ball", "base", "bear", "bird", "blue",
		"boat", "book", "card", "care", "case", "city", "dark", "date",
		"deep", "door", "east", "easy", "face", "fact", "farm", "fire",
		"fish", "food", "game", "gold", "hand", "head", "hill", "home",
		"king", "lake", "land", "life", "line", "love", "moon", "name",
		"nose", "open", "page", "park", "rain", "ring", "road", "rock",
		"room", "ship", "side", "snow", "song", "star", "time", "tree",
		"wall", "warm", "wave", "wind", "wolf", "wood", "word", "yard",
		// 5-letter words
		"apple", "beach", "board", "brain", "bread", "chair", "child",
		"clock", "cloud", "dance", "earth", "field", "glass", "grass",
		"green", "heart", "horse", "house", "light", "money", "mouse",
		"music", "night", "ocean", "paper", "plant", "quiet", "river",
		"sound", "space", "stone", "storm", "table", "tiger", "train",
		"water", "wheel", "white", "world", "youth",
	}
	return t.DictionaryService.LoadWords(words)
}
