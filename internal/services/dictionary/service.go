package dictionary

import (
	"bufio"
	"context"
	"os"
	"strings"
	"sync"

	"github.com/wordtiles/wordtiles-go/internal/model"
	"github.com/wordtiles/wordtiles-go/internal/storage"
)

// Oracle answers word validity questions for the challenge resolver.
// An error means the oracle could not answer, not that the word is bad.
type Oracle interface {
	IsValidWord(ctx context.Context, word string) (bool, error)
}

// Service is the storage-backed word list oracle
type Service struct {
	storage storage.Storage

	mu     sync.RWMutex
	words  map[string]struct{}
	loaded bool
}

// Ensure Service implements Oracle
var _ Oracle = (*Service)(nil)

// New creates a new dictionary service
func New(storage storage.Storage) *Service {
	return &Service{
		storage: storage,
		words:   make(map[string]struct{}),
	}
}

// LoadFromStorage loads dictionary words from storage
func (s *Service) LoadFromStorage(ctx context.Context) error {
	words, err := s.storage.GetDictionaryWords(ctx)
	if err != nil {
		return err
	}
	return s.loadWords(words)
}

// LoadFromFile loads dictionary words from a file (one word per line)
// and saves them to storage for future loads
func (s *Service) LoadFromFile(ctx context.Context, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word != "" {
			words = append(words, word)
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	if err := s.storage.SaveDictionaryWords(ctx, words); err != nil {
		return err
	}

	return s.loadWords(words)
}

// LoadWords directly loads a slice of words (useful for testing)
func (s *Service) LoadWords(words []string) error {
	return s.loadWords(words)
}

func (s *Service) loadWords(words []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.words = make(map[string]struct{}, len(words))
	for _, word := range words {
		// Store lowercase for case-insensitive matching
		s.words[strings.ToLower(word)] = struct{}{}
	}
	s.loaded = true
	return nil
}

// IsValidWord checks if a word exists in the dictionary. Words shorter
// than 2 letters are never valid. An unloaded dictionary returns
// model.ErrDictionaryNotLoaded so callers can decide the fallback.
func (s *Service) IsValidWord(ctx context.Context, word string) (bool, error) {
	if len(word) < 2 {
		return false, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.loaded {
		return false, model.ErrDictionaryNotLoaded
	}

	_, ok := s.words[strings.ToLower(word)]
	return ok, nil
}

// IsLoaded returns whether the dictionary has been loaded
func (s *Service) IsLoaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// WordCount returns the number of words in the dictionary
func (s *Service) WordCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.words)
}
