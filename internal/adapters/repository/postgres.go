package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/openfloor/scorecast/pkg/logger"
	"github.com/openfloor/scorecast/pkg/metrics"
)

// Default retry policy for transient query failures.
const (
	defaultRetryAttempts = 3
	defaultRetryDelay    = 500 * time.Millisecond
)

// Queryer is the slice of pgxpool.Pool the store needs. Extracting it keeps
// the store testable against a fake without a running database.
type Queryer interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

// PostgresStore reads the scoring database through a pgx connection pool.
type PostgresStore struct {
	db            Queryer
	pool          *pgxpool.Pool
	retryAttempts uint
	retryDelay    time.Duration
	log           logger.Logger
}

// NewPostgres wraps an existing Queryer. Used by tests and by Connect.
func NewPostgres(db Queryer, opts ...Option) *PostgresStore {
	s := &PostgresStore{
		db:            db,
		retryAttempts: defaultRetryAttempts,
		retryDelay:    defaultRetryDelay,
		log:           logger.Named("repository"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Connect opens a pgx pool against the scoring database and wraps it.
func Connect(ctx context.Context, databaseURL string, opts ...Option) (*PostgresStore, error) {
	pool, err := pgxpool.Connect(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConnect, err)
	}
	s := NewPostgres(pool, opts...)
	s.pool = pool
	return s, nil
}

// Close releases the underlying pool, if this store owns one.
func (s *PostgresStore) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// PoolStat reports pool connection counts for the metrics updater. Zeroes
// when the store wraps an injected Queryer instead of owning a pool.
func (s *PostgresStore) PoolStat() (total, idle, acquired int) {
	if s.pool == nil {
		return 0, 0, 0
	}
	stat := s.pool.Stat()
	return int(stat.TotalConns()), int(stat.IdleConns()), int(stat.AcquiredConns())
}

// collect runs one parameterized query under the retry policy and scans every
// row with scan. The whole query, scan included, retries as a unit: pgx rows
// are invalid once their query fails.
func collect[T any](ctx context.Context, s *PostgresStore, query string, args []any, scan func(pgx.Rows) (T, error)) ([]T, error) {
	var out []T
	err := retry.Do(
		func() error {
			start := time.Now()
			rows, err := s.db.Query(ctx, query, args...)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrQueryFailed, err)
			}
			defer rows.Close()

			collected := make([]T, 0)
			for rows.Next() {
				v, err := scan(rows)
				if err != nil {
					return fmt.Errorf("%w: %w", ErrScanFailed, err)
				}
				collected = append(collected, v)
			}
			if err := rows.Err(); err != nil {
				return fmt.Errorf("%w: %w", ErrQueryFailed, err)
			}

			metrics.RecordStoreQueryLatency(float64(time.Since(start).Milliseconds()))
			out = collected
			return nil
		},
		retry.Attempts(s.retryAttempts),
		retry.Delay(s.retryDelay),
		retry.DelayType(retry.FixedDelay),
		retry.Context(ctx),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			metrics.RecordStoreQueryRetry()
			s.log.Warn(ctx, "retrying query",
				logger.Int("attempt", int(n)+1),
				logger.Error(err))
		}),
	)
	if err != nil {
		metrics.RecordStoreQueryError()
		return nil, err
	}
	return out, nil
}

// queryRowScan runs a single-row query under the same retry policy as collect.
func (s *PostgresStore) queryRowScan(ctx context.Context, query string, args []any, dest ...any) error {
	err := retry.Do(
		func() error {
			start := time.Now()
			if err := s.db.QueryRow(ctx, query, args...).Scan(dest...); err != nil {
				return fmt.Errorf("%w: %w", ErrQueryFailed, err)
			}
			metrics.RecordStoreQueryLatency(float64(time.Since(start).Milliseconds()))
			return nil
		},
		retry.Attempts(s.retryAttempts),
		retry.Delay(s.retryDelay),
		retry.DelayType(retry.FixedDelay),
		retry.Context(ctx),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			metrics.RecordStoreQueryRetry()
			s.log.Warn(ctx, "retrying query",
				logger.Int("attempt", int(n)+1),
				logger.Error(err))
		}),
	)
	if err != nil {
		metrics.RecordStoreQueryError()
	}
	return err
}

// int64Set converts competitor ids for a bigint[] = ANY($n) parameter.
func int64Set(ids []int) []int64 {
	out := make([]int64, len(ids))
	for i, id := range ids {
		out[i] = int64(id)
	}
	return out
}
