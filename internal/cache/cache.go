package cache

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Cache is a key-value store for normalized subtitle content. Implementations
// may keep entries in memory or in an external backend like Redis/Valkey.
type Cache interface {
	// Get retrieves a value by key. Returns the value and true on a hit.
	Get(key string) ([]byte, bool)

	// Set stores a value, overwriting any existing entry for the key.
	Set(key string, value []byte)

	// Contains reports whether a key exists without affecting LRU ordering.
	Contains(key string) bool

	// Len returns the number of entries currently stored.
	Len() int

	// Close releases resources held by the cache. A no-op for in-memory caches.
	Close() error
}

// Settings configures a cache instance.
type Settings struct {
	// Size is the maximum number of entries for LRU-bounded backends.
	Size int

	// TTL is the time-to-live of entries.
	TTL time.Duration

	// Logger receives error reports from cache operations.
	Logger zerolog.Logger

	// RedisAddress, RedisPassword and RedisDB configure the Redis backend.
	RedisAddress  string
	RedisPassword string
	RedisDB       int

	// Name labels the cache in Prometheus metrics. When non-empty, the cache
	// is wrapped with hit/miss instrumentation.
	Name string
}

// Provider constructs a Cache from settings.
type Provider func(settings Settings) (Cache, error)

var (
	mu        sync.RWMutex
	providers = make(map[string]Provider)
)

// Register registers a cache provider under the given name. It panics on a
// duplicate name or a nil provider.
func Register(name string, p Provider) {
	mu.Lock()
	defer mu.Unlock()

	if p == nil {
		panic("cache: Register provider is nil")
	}
	if _, exists := providers[name]; exists {
		panic(fmt.Sprintf("cache: provider %q already registered", name))
	}
	providers[name] = p
}

// New creates a Cache using the named provider. When settings.Name is
// non-empty the cache records hit/miss counters under that label.
func New(name string, settings Settings) (Cache, error) {
	mu.RLock()
	p, ok := providers[name]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("cache: unknown provider %q (registered: %v)", name, RegisteredProviders())
	}

	inner, err := p(settings)
	if err != nil {
		return nil, err
	}

	if settings.Name == "" {
		return inner, nil
	}
	return newInstrumentedCache(inner, settings.Name), nil
}

// RegisteredProviders returns a sorted list of registered provider names.
func RegisteredProviders() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(providers))
	for name := range providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
