package cache

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Cache-level Prometheus metrics. The "cache" label carries the Name from
// Settings so multiple cache instances stay distinguishable.
var (
	// HitsTotal counts successful cache lookups per cache name.
	HitsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Total number of cache hits.",
		},
		[]string{"cache"},
	)

	// MissesTotal counts failed cache lookups per cache name.
	MissesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Total number of cache misses.",
		},
		[]string{"cache"},
	)
)

func init() {
	prometheus.MustRegister(
		HitsTotal,
		MissesTotal,
	)
}

// instrumentedCache wraps a Cache and records hit/miss counters under the
// given name so callers do not manage metrics themselves.
type instrumentedCache struct {
	inner Cache
	name  string
}

func newInstrumentedCache(inner Cache, name string) *instrumentedCache {
	return &instrumentedCache{inner: inner, name: name}
}

func (c *instrumentedCache) Get(key string) ([]byte, bool) {
	value, ok := c.inner.Get(key)
	if ok {
		HitsTotal.WithLabelValues(c.name).Inc()
	} else {
		MissesTotal.WithLabelValues(c.name).Inc()
	}
	return value, ok
}

func (c *instrumentedCache) Set(key string, value []byte) {
	c.inner.Set(key, value)
}

func (c *instrumentedCache) Contains(key string) bool {
	return c.inner.Contains(key)
}

func (c *instrumentedCache) Len() int {
	return c.inner.Len()
}

func (c *instrumentedCache) Close() error {
	return c.inner.Close()
}
