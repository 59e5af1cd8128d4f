package dictionary

import (
	"context"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize is the default number of lookup results to keep
const DefaultCacheSize = 4096

// CachedOracle memoizes oracle answers in an LRU cache. Challenge
// resolution hits the same handful of words repeatedly, so a small
// cache absorbs most lookups.
type CachedOracle struct {
	inner Oracle
	cache *lru.Cache[string, bool]
}

// Ensure CachedOracle implements Oracle
var _ Oracle = (*CachedOracle)(nil)

// NewCachedOracle wraps an oracle with an LRU cache of the given size
func NewCachedOracle(inner Oracle, size int) (*CachedOracle, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	cache, err := lru.New[string, bool](size)
	if err != nil {
		return nil, err
	}
	return &CachedOracle{
		inner: inner,
		cache: cache,
	}, nil
}

// IsValidWord answers from the cache when possible. Errors from the
// inner oracle are never cached.
func (c *CachedOracle) IsValidWord(ctx context.Context, word string) (bool, error) {
	key := strings.ToLower(word)
	if valid, ok := c.cache.Get(key); ok {
		return valid, nil
	}

	valid, err := c.inner.IsValidWord(ctx, key)
	if err != nil {
		return false, err
	}

	c.cache.Add(key, valid)
	return valid, nil
}

// Purge drops all cached answers (used after dictionary reloads)
func (c *CachedOracle) Purge() {
	c.cache.Purge()
}
