package research

import (
	"context"
	"log"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	domres "ventureforge/domain/research"
)

// DefaultTTL bounds how long one research outcome stays authoritative for
// a subject.
const DefaultTTL = time.Hour

// Cache stores one research outcome per subject key. Entries expire
// logically on lookup after the TTL; there is no other eviction, the store
// grows with distinct subjects for the life of the process. Constructed at
// startup and injected, never a package-level singleton.
type Cache struct {
	ttl     time.Duration
	mu      sync.RWMutex
	entries map[string]domres.Entry
	flight  singleflight.Group
	clock   func() time.Time
}

// NewCache creates a cache with the given TTL. A non-positive TTL falls
// back to DefaultTTL.
func NewCache(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{
		ttl:     ttl,
		entries: make(map[string]domres.Entry),
		clock:   time.Now,
	}
}

// Get returns the entry for a subject key, treating an expired entry as a
// miss and dropping it.
func (c *Cache) Get(subjectKey string) (domres.Entry, bool) {
	c.mu.RLock()
	entry, ok := c.entries[subjectKey]
	c.mu.RUnlock()

	if !ok {
		return domres.Entry{}, false
	}
	if !c.valid(entry) {
		c.mu.Lock()
		// Re-check under the write lock; a fresh entry may have landed.
		if current, still := c.entries[subjectKey]; still && !c.valid(current) {
			delete(c.entries, subjectKey)
		}
		c.mu.Unlock()
		return domres.Entry{}, false
	}
	return entry, true
}

// Put stores a freshly constructed entry. Overwrite is the only mutation;
// an entry's trust decision never changes in place.
func (c *Cache) Put(subjectKey string, entry domres.Entry) {
	c.mu.Lock()
	c.entries[subjectKey] = entry
	c.mu.Unlock()
}

func (c *Cache) valid(entry domres.Entry) bool {
	return c.clock().Sub(entry.CreatedAt) < c.ttl
}

// GetOrRun returns the cached entry for the subject, or runs the supplied
// orchestration exactly once across concurrent misses for the same key and
// caches its result. On context cancellation nothing is cached and the
// context error is returned.
func (c *Cache) GetOrRun(ctx context.Context, subjectKey string, run func(ctx context.Context) domres.Entry) (domres.Entry, error) {
	if entry, ok := c.Get(subjectKey); ok {
		return entry, nil
	}

	result, err, shared := c.flight.Do(subjectKey, func() (interface{}, error) {
		// A concurrent flight may have filled the cache while we waited.
		if entry, ok := c.Get(subjectKey); ok {
			return entry, nil
		}

		entry := run(ctx)
		if ctx.Err() != nil {
			return domres.Entry{}, ctx.Err()
		}
		c.Put(subjectKey, entry)
		return entry, nil
	})
	if err != nil {
		return domres.Entry{}, err
	}
	if shared {
		log.Printf("[ResearchCache] Coalesced concurrent research for subject %q", subjectKey)
	}
	return result.(domres.Entry), nil
}
