package pattern

import (
	"sync"

	"github.com/Flyrell/timepattern/internal/locale"
)

type cacheKey struct {
	pattern  string
	localeID string
}

// Cache memoizes compiled matchers per (pattern, locale). Failed compiles
// are not cached. It is safe for concurrent use.
type Cache struct {
	provider locale.Provider

	mu       sync.Mutex
	matchers map[cacheKey]*Matcher
}

// NewCache returns an empty cache compiling against provider.
func NewCache(provider locale.Provider) *Cache {
	return &Cache{
		provider: provider,
		matchers: make(map[cacheKey]*Matcher),
	}
}

// Get returns the cached matcher for (pattern, localeID), compiling it on
// first use. hit reports whether the matcher came from the cache.
func (c *Cache) Get(pattern, localeID string) (m *Matcher, hit bool, err error) {
	key := cacheKey{pattern: pattern, localeID: localeID}

	c.mu.Lock()
	defer c.mu.Unlock()

	if m, ok := c.matchers[key]; ok {
		return m, true, nil
	}
	m, err = Compile(pattern, localeID, c.provider)
	if err != nil {
		return nil, false, err
	}
	c.matchers[key] = m
	return m, false, nil
}

// Len returns the number of cached matchers.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.matchers)
}
