package repository

import "time"

// Option applies a configuration option to the PostgresStore.
type Option func(*PostgresStore)

// WithRetryAttempts caps query attempts, the first try included.
func WithRetryAttempts(attempts int) Option {
	return func(s *PostgresStore) {
		if attempts > 0 {
			s.retryAttempts = uint(attempts)
		}
	}
}

// WithRetryDelay sets the fixed delay between query retries.
func WithRetryDelay(delay time.Duration) Option {
	return func(s *PostgresStore) {
		if delay > 0 {
			s.retryDelay = delay
		}
	}
}
