package langid

import (
	"sync"

	"github.com/maxbolgarin/errm"
	"github.com/maxbolgarin/lang"
	"github.com/maypok86/otter"
	"github.com/panjf2000/ants/v2"
)

const defaultCacheCapacity = 1000

// ParseCache memoizes parse results so that hot identifiers (HTTP
// Accept-Language values, locale settings, storage keys) are parsed once and
// reused as process-wide immutable values. Safe for concurrent use.
type ParseCache struct {
	cache otter.Cache[string, LanguageIdentifier]
	pool  *ants.Pool
}

// NewParseCache creates a cache for up to capacity distinct inputs.
// Zero or negative capacity falls back to the default.
func NewParseCache(capacity int) (*ParseCache, error) {
	capacity = lang.Check(capacity, defaultCacheCapacity)

	c, err := otter.MustBuilder[string, LanguageIdentifier](capacity).Build()
	if err != nil {
		return nil, errm.Wrap(err, "build cache")
	}
	pool, err := ants.NewPool(capacity, ants.WithPreAlloc(true))
	if err != nil {
		return nil, errm.Wrap(err, "new pool")
	}
	return &ParseCache{cache: c, pool: pool}, nil
}

// Parse returns the cached identifier for input, parsing and caching it on
// first use. Errors are not cached: malformed inputs fail on every call.
func (p *ParseCache) Parse(input string) (LanguageIdentifier, error) {
	if id, ok := p.cache.Get(input); ok {
		return id, nil
	}
	id, err := Parse(input)
	if err != nil {
		return LanguageIdentifier{}, err
	}
	p.cache.Set(input, id)
	return id, nil
}

// Warm parses the given inputs on the worker pool and caches the valid ones,
// blocking until all of them are handled. Invalid inputs are skipped.
func (p *ParseCache) Warm(inputs []string) {
	var wg sync.WaitGroup
	for _, input := range inputs {
		input := input
		wg.Add(1)
		if err := p.pool.Submit(func() {
			defer wg.Done()
			_, _ = p.Parse(input)
		}); err != nil {
			wg.Done()
		}
	}
	wg.Wait()
}

// Close releases the worker pool and the cached entries.
func (p *ParseCache) Close() {
	p.pool.Release()
	p.cache.Close()
}
