// Package cache provides the TTL-bounded key/value store used for
// rarely-changing reference data (categories, round-exercise metadata).
//
// The cache is an injected dependency, never a package singleton, so tests
// can substitute their own. A race where two requests populate the same key
// is acceptable: values are idempotent and last write wins.
package cache

import (
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/openfloor/scorecast/pkg/metrics"
)

// DefaultTTL bounds staleness of cached reference data.
const DefaultTTL = 5 * time.Minute

// Cache is a time-bounded key/value store.
type Cache interface {
	// Get returns the cached value and whether it was present and fresh.
	Get(key string) (any, bool)
	// Set stores value under key with the cache's default TTL.
	Set(key string, value any)
	// SetWithTTL stores value under key with an explicit TTL.
	SetWithTTL(key string, value any, ttl time.Duration)
}

// memoryCache adapts go-cache to the Cache contract.
type memoryCache struct {
	backing *gocache.Cache
}

// New creates an in-memory TTL cache.
func New(opts ...Option) Cache {
	s := settings{ttl: DefaultTTL}
	for _, opt := range opts {
		opt(&s)
	}
	// Sweep expired entries at the TTL interval; precision of eviction
	// timing does not matter for stale-tolerant reference data.
	return &memoryCache{backing: gocache.New(s.ttl, s.ttl)}
}

func (m *memoryCache) Get(key string) (any, bool) {
	value, ok := m.backing.Get(key)
	if ok {
		metrics.RecordCacheHit()
	} else {
		metrics.RecordCacheMiss()
	}
	return value, ok
}

func (m *memoryCache) Set(key string, value any) {
	m.backing.Set(key, value, gocache.DefaultExpiration)
}

func (m *memoryCache) SetWithTTL(key string, value any, ttl time.Duration) {
	m.backing.Set(key, value, ttl)
}

// CategoriesKey builds the cache key for a categories lookup; catID is empty
// for the full list.
func CategoriesKey(catID string) string {
	return "categories_" + catID
}

// CategoryRoundExercisesKey builds the cache key for a category's full
// round-exercise metadata.
func CategoryRoundExercisesKey(catID string) string {
	return "categoryRoundExercises_" + catID
}

// CategoryRoundExerciseKey builds the cache key for a single (category,
// exercise number) metadata row.
func CategoryRoundExerciseKey(catID string, exerciseNumber int) string {
	return fmt.Sprintf("categoryRoundExercises_%s_%d", catID, exerciseNumber)
}
