// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/openfloor/scorecast/internal/adapters/cache"
	"github.com/openfloor/scorecast/internal/adapters/repository"
	"github.com/openfloor/scorecast/internal/domain/board"
	"github.com/openfloor/scorecast/internal/domain/model"
	"github.com/openfloor/scorecast/internal/domain/results"
	"github.com/openfloor/scorecast/pkg/logger"
	"github.com/openfloor/scorecast/pkg/metrics"
)

// Service implements the API dependencies for the display system: shaped
// scoreboard reads on top of the store, the TTL cache for reference data, and
// the per-process judge-detail schema check.
type Service struct {
	mu sync.RWMutex

	// Core components
	store repository.Store
	pg    *repository.PostgresStore
	cache cache.Cache

	// Configuration
	databaseURL   string
	retryAttempts int
	retryDelay    time.Duration
	cacheTTL      time.Duration

	// Judge-detail schema check. Checked once per process; a failed check is
	// retried on the next request rather than cached.
	detailMu      sync.Mutex
	detailChecked bool
	detailTables  bool

	// State
	started bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithDatabaseURL sets the scoring database connection string.
func WithDatabaseURL(url string) Option {
	return func(s *Service) {
		if url != "" {
			s.databaseURL = url
		}
	}
}

// WithRetryPolicy sets the store's query retry attempts and delay.
func WithRetryPolicy(attempts int, delay time.Duration) Option {
	return func(s *Service) {
		if attempts > 0 {
			s.retryAttempts = attempts
		}
		if delay > 0 {
			s.retryDelay = delay
		}
	}
}

// WithCacheTTL sets the reference data cache TTL.
func WithCacheTTL(ttl time.Duration) Option {
	return func(s *Service) {
		if ttl > 0 {
			s.cacheTTL = ttl
		}
	}
}

// WithStore injects a store, bypassing the database connection on Start.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithCache injects a cache implementation.
func WithCache(c cache.Cache) Option {
	return func(s *Service) {
		if c != nil {
			s.cache = c
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(logger logger.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		retryAttempts: 3,
		retryDelay:    500 * time.Millisecond,
		cacheTTL:      cache.DefaultTTL,
		logger:        nil, // Will be replaced when service starts
	}

	// Apply all options
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start connects to the scoring database and prepares the cache.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	// Initialize logger if not already set
	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting display service...")

	if s.store == nil {
		pg, err := repository.Connect(ctx, s.databaseURL,
			repository.WithRetryAttempts(s.retryAttempts),
			repository.WithRetryDelay(s.retryDelay),
		)
		if err != nil {
			return err
		}
		s.pg = pg
		s.store = pg
	}
	if s.cache == nil {
		s.cache = cache.New(cache.WithTTL(s.cacheTTL))
	}

	s.started = true
	s.logger.Info(ctx, "display service started",
		logger.Int("retryAttempts", s.retryAttempts),
		logger.Duration("cacheTTL", s.cacheTTL),
	)

	return nil
}

// Stop gracefully shuts down the service.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	s.logger.Info(context.Background(), "stopping display service...")

	if s.pg != nil {
		s.pg.Close()
	}

	s.started = false
	s.logger.Info(context.Background(), "display service stopped")
}

// PoolStat reports database pool connection counts for the metrics updater.
func (s *Service) PoolStat() (total, idle, acquired int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.pg == nil {
		return 0, 0, 0
	}
	return s.pg.PoolStat()
}

// Latest returns the shaped "current competitor" view for a panel, or nil
// when the panel has no non-withdrawn rows.
func (s *Service) Latest(ctx context.Context, panelNumber int) (*model.LatestView, error) {
	row, err := s.store.LatestForPanel(ctx, panelNumber)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, nil
	}

	meta, err := s.roundExerciseMeta(ctx, row.CatID)
	if err != nil {
		return nil, err
	}
	exercise, err := results.ResolveLatest(*row, meta)
	if err != nil {
		return nil, err
	}

	return &model.LatestView{
		Identity:    model.IdentityOf(*row),
		PanelNo:     row.PanelNo,
		Withdrawn:   row.Withdrawn,
		LastUpdated: row.LastUpdated,
		F1Total:     row.F1Total,
		Rank:        results.ProjectRank(*row),
		Exercise:    exercise,
	}, nil
}

// LatestScore returns the most recent raw display row for a panel.
func (s *Service) LatestScore(ctx context.Context, panelNumber int) ([]model.CompetitorRow, error) {
	return s.store.LatestScoreForPanel(ctx, panelNumber)
}

// OnlineResults builds the shaped scoreboard for a category: competitor rows
// in rank order, detail tables fanned out in parallel once the competitor set
// is known, joined per (competitor, exercise).
func (s *Service) OnlineResults(ctx context.Context, catID string, compType int) ([]model.ResultView, error) {
	start := time.Now()

	competitors, err := s.store.CompetitorsByCategory(ctx, catID, compType)
	if err != nil {
		return nil, err
	}
	if len(competitors) == 0 {
		return []model.ResultView{}, nil
	}

	ids := make([]int, len(competitors))
	for i, c := range competitors {
		ids[i] = c.CompetitorID
	}

	withDetail, err := s.judgeDetailTables(ctx)
	if err != nil {
		return nil, err
	}

	var detail results.Detail
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := s.store.ExerciseTotals(gctx, ids)
		detail.ExerciseTotals = rows
		return err
	})
	g.Go(func() error {
		rows, err := s.store.RoundTotals(gctx, ids)
		detail.RoundTotals = rows
		return err
	})
	g.Go(func() error {
		rows, err := s.store.ExerciseMedians(gctx, ids)
		detail.Medians = rows
		return err
	})
	g.Go(func() error {
		rows, err := s.store.ExerciseDeductions(gctx, ids)
		detail.Deductions = rows
		return err
	})
	g.Go(func() error {
		rows, err := s.store.ExerciseVideos(gctx, ids)
		detail.Videos = rows
		return err
	})
	if withDetail {
		g.Go(func() error {
			rows, err := s.store.ExerciseHDDeductions(gctx, ids)
			detail.HDDeductions = rows
			return err
		})
		g.Go(func() error {
			rows, err := s.store.ExerciseTSValues(gctx, ids)
			detail.TSValues = rows
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	views := results.Aggregate(catID, competitors, detail)

	metrics.RecordCompetitorsShaped(len(views))
	metrics.RecordAggregationLatency(float64(time.Since(start).Milliseconds()))
	return views, nil
}

// PanelBoard builds the per-panel "now showing" view.
func (s *Service) PanelBoard(ctx context.Context) ([]model.PanelBoardEntry, error) {
	rows, err := s.store.PanelRows(ctx)
	if err != nil {
		return nil, err
	}
	return board.Build(rows, func(catID string) (map[int]string, error) {
		return s.roundExerciseMeta(ctx, catID)
	})
}

// Rankings builds the big-screen leaderboard rotation.
func (s *Service) Rankings(ctx context.Context) ([]model.RankingGroup, error) {
	rows, err := s.store.LatestRoundRankings(ctx)
	if err != nil {
		return nil, err
	}
	return board.Rankings(rows), nil
}

// Categories returns category rows, cached under the category key.
func (s *Service) Categories(ctx context.Context, catID string) ([]model.Category, error) {
	key := cache.CategoriesKey(catID)
	if v, ok := s.cache.Get(key); ok {
		if cats, ok := v.([]model.Category); ok {
			return cats, nil
		}
	}
	cats, err := s.store.Categories(ctx, catID)
	if err != nil {
		return nil, err
	}
	s.cache.Set(key, cats)
	return cats, nil
}

// DisplayCategories returns the categories flagged for display rotation.
func (s *Service) DisplayCategories(ctx context.Context) ([]model.Category, error) {
	return s.store.DisplayCategories(ctx)
}

// Rounds returns a category's rounds.
func (s *Service) Rounds(ctx context.Context, catID string) ([]model.Round, error) {
	return s.store.Rounds(ctx, catID)
}

// CategoryRoundExercises returns a category's full exercise-number metadata,
// cached.
func (s *Service) CategoryRoundExercises(ctx context.Context, catID string) ([]model.CategoryRoundExercise, error) {
	key := cache.CategoryRoundExercisesKey(catID)
	if v, ok := s.cache.Get(key); ok {
		if rows, ok := v.([]model.CategoryRoundExercise); ok {
			return rows, nil
		}
	}
	rows, err := s.store.CategoryRoundExercises(ctx, catID)
	if err != nil {
		return nil, err
	}
	s.cache.Set(key, rows)
	return rows, nil
}

// CategoryRoundExercise returns the metadata row for one exercise number,
// cached.
func (s *Service) CategoryRoundExercise(ctx context.Context, catID string, exerciseNumber int) ([]model.CategoryRoundExercise, error) {
	key := cache.CategoryRoundExerciseKey(catID, exerciseNumber)
	if v, ok := s.cache.Get(key); ok {
		if rows, ok := v.([]model.CategoryRoundExercise); ok {
			return rows, nil
		}
	}
	rows, err := s.store.CategoryRoundExercise(ctx, catID, exerciseNumber)
	if err != nil {
		return nil, err
	}
	s.cache.Set(key, rows)
	return rows, nil
}

// ExerciseNumbers returns a category's exercise-number progression.
func (s *Service) ExerciseNumbers(ctx context.Context, catID string) ([]model.ExerciseNumberRow, error) {
	return s.store.ExerciseNumbers(ctx, catID)
}

// CompetitorRanks returns the top-8 ranking strip for a category.
func (s *Service) CompetitorRanks(ctx context.Context, catID string, compType int) ([]model.CompetitorRankRow, error) {
	return s.store.CompetitorRanks(ctx, catID, compType)
}

// QualifyingStartList returns the top-8 qualifying start window.
func (s *Service) QualifyingStartList(ctx context.Context, catID string) ([]model.StartListCompetitor, error) {
	return s.store.QualifyingStartList(ctx, catID)
}

// RoundStartList returns competitor ids in round start order.
func (s *Service) RoundStartList(ctx context.Context, catID, roundName string) ([]model.RoundStartEntry, error) {
	return s.store.RoundStartList(ctx, catID, roundName)
}

// RoundStartListCompetitors returns named competitors in round start order.
func (s *Service) RoundStartListCompetitors(ctx context.Context, catID, roundName string) ([]model.StartListCompetitor, error) {
	return s.store.RoundStartListCompetitors(ctx, catID, roundName)
}

// CompetitorRoundTotals returns one competitor's round progression rows.
func (s *Service) CompetitorRoundTotals(ctx context.Context, competitorID int) ([]model.RoundTotalDetailRow, error) {
	return s.store.CompetitorRoundTotals(ctx, competitorID)
}

// StartListRounds returns the rounds whose start lists may be displayed.
func (s *Service) StartListRounds(ctx context.Context) ([]model.StartListRound, error) {
	return s.store.StartListRounds(ctx)
}

// PanelStatuses returns panel status rows, optionally for a single panel.
func (s *Service) PanelStatuses(ctx context.Context, panelNumber *int) ([]model.PanelStatus, error) {
	return s.store.PanelStatuses(ctx, panelNumber)
}

// EventInfo returns the competition description rows.
func (s *Service) EventInfo(ctx context.Context) ([]model.EventInfo, error) {
	return s.store.EventInfo(ctx)
}

// roundExerciseMeta resolves a category's exercise-number-to-round-name map
// through the cached metadata rows.
func (s *Service) roundExerciseMeta(ctx context.Context, catID string) (map[int]string, error) {
	rows, err := s.CategoryRoundExercises(ctx, catID)
	if err != nil {
		return nil, err
	}
	meta := make(map[int]string, len(rows))
	for _, row := range rows {
		meta[row.ExerciseNumber] = row.RoundName
	}
	return meta, nil
}

// judgeDetailTables reports whether the optional judge-detail tables exist.
// The first successful check sticks for the process lifetime: schema shape
// does not change at runtime.
func (s *Service) judgeDetailTables(ctx context.Context) (bool, error) {
	s.detailMu.Lock()
	defer s.detailMu.Unlock()

	if s.detailChecked {
		return s.detailTables, nil
	}
	exists, err := s.store.JudgeDetailTablesExist(ctx)
	if err != nil {
		return false, err
	}
	s.detailChecked = true
	s.detailTables = exists
	return exists, nil
}
