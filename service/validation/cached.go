package validation

import (
	"context"
	"sort"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize is the number of verdicts kept by Cached
const DefaultCacheSize = 256

// Cached memoizes successful verdicts of another Service
type Cached struct {
	service Service
	cache   *lru.Cache[string, Result]
}

func (c *Cached) Validate(ctx context.Context, expression string, allowedSymbols []string) (*Result, error) {
	key := cacheKey(expression, allowedSymbols)
	if result, ok := c.cache.Get(key); ok {
		return &result, nil
	}
	result, err := c.service.Validate(ctx, expression, allowedSymbols)
	if err != nil {
		return nil, err
	}
	c.cache.Add(key, *result)
	return result, nil
}

// Len returns the number of cached verdicts
func (c *Cached) Len() int {
	return c.cache.Len()
}

func cacheKey(expression string, allowedSymbols []string) string {
	symbols := append([]string(nil), allowedSymbols...)
	sort.Strings(symbols)
	return expression + "\x00" + strings.Join(symbols, "\x00")
}

// NewCached wraps service with an LRU cache of size entries
func NewCached(service Service, size int) (*Cached, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	cache, err := lru.New[string, Result](size)
	if err != nil {
		return nil, err
	}
	return &Cached{service: service, cache: cache}, nil
}
