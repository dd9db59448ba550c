package cache

import "time"

type settings struct {
	ttl time.Duration
}

// Option applies a configuration option to the cache.
type Option func(*settings)

// WithTTL sets the default entry TTL.
func WithTTL(ttl time.Duration) Option {
	return func(s *settings) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}
