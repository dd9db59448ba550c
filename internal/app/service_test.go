package service

import (
	"context"
	"errors"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/openfloor/scorecast/internal/domain/model"
	"github.com/openfloor/scorecast/pkg/logger"
)

func TestMain(m *testing.M) {
	if err := logger.Init(); err != nil {
		panic(err)
	}
	m.Run()
}

func intPtr(n int) *int           { return &n }
func floatPtr(f float64) *float64 { return &f }
func strPtr(s string) *string     { return &s }

// fakeStore serves canned rows and counts calls per table.
type fakeStore struct {
	latest         *model.CompetitorRow
	competitors    []model.CompetitorRow
	exerciseTotals []model.ExerciseTotalRow
	roundTotals    []model.RoundTotalRow
	medians        []model.JudgeRow
	deductions     []model.JudgeRow
	hdDeductions   []model.JudgeRow
	tsValues       []model.JudgeRow
	videos         []model.VideoRow
	panelRows      []model.PanelRow
	rankingRows    []model.RankingRow
	categories     []model.Category
	roundExercises []model.CategoryRoundExercise
	detailTables   bool

	err   error
	calls map[string]int
}

func newFakeStore() *fakeStore {
	return &fakeStore{calls: map[string]int{}}
}

func (f *fakeStore) count(name string) { f.calls[name]++ }

func (f *fakeStore) LatestForPanel(context.Context, int) (*model.CompetitorRow, error) {
	f.count("LatestForPanel")
	return f.latest, f.err
}

func (f *fakeStore) LatestScoreForPanel(context.Context, int) ([]model.CompetitorRow, error) {
	f.count("LatestScoreForPanel")
	if f.latest == nil {
		return []model.CompetitorRow{}, f.err
	}
	return []model.CompetitorRow{*f.latest}, f.err
}

func (f *fakeStore) CompetitorsByCategory(context.Context, string, int) ([]model.CompetitorRow, error) {
	f.count("CompetitorsByCategory")
	return f.competitors, f.err
}

func (f *fakeStore) ExerciseTotals(context.Context, []int) ([]model.ExerciseTotalRow, error) {
	f.count("ExerciseTotals")
	return f.exerciseTotals, f.err
}

func (f *fakeStore) RoundTotals(context.Context, []int) ([]model.RoundTotalRow, error) {
	f.count("RoundTotals")
	return f.roundTotals, f.err
}

func (f *fakeStore) ExerciseMedians(context.Context, []int) ([]model.JudgeRow, error) {
	f.count("ExerciseMedians")
	return f.medians, f.err
}

func (f *fakeStore) ExerciseDeductions(context.Context, []int) ([]model.JudgeRow, error) {
	f.count("ExerciseDeductions")
	return f.deductions, f.err
}

func (f *fakeStore) ExerciseHDDeductions(context.Context, []int) ([]model.JudgeRow, error) {
	f.count("ExerciseHDDeductions")
	return f.hdDeductions, f.err
}

func (f *fakeStore) ExerciseTSValues(context.Context, []int) ([]model.JudgeRow, error) {
	f.count("ExerciseTSValues")
	return f.tsValues, f.err
}

func (f *fakeStore) ExerciseVideos(context.Context, []int) ([]model.VideoRow, error) {
	f.count("ExerciseVideos")
	return f.videos, f.err
}

func (f *fakeStore) JudgeDetailTablesExist(context.Context) (bool, error) {
	f.count("JudgeDetailTablesExist")
	return f.detailTables, f.err
}

func (f *fakeStore) PanelRows(context.Context) ([]model.PanelRow, error) {
	f.count("PanelRows")
	return f.panelRows, f.err
}

func (f *fakeStore) LatestRoundRankings(context.Context) ([]model.RankingRow, error) {
	f.count("LatestRoundRankings")
	return f.rankingRows, f.err
}

func (f *fakeStore) Categories(context.Context, string) ([]model.Category, error) {
	f.count("Categories")
	return f.categories, f.err
}

func (f *fakeStore) DisplayCategories(context.Context) ([]model.Category, error) {
	f.count("DisplayCategories")
	return f.categories, f.err
}

func (f *fakeStore) Rounds(context.Context, string) ([]model.Round, error) {
	f.count("Rounds")
	return nil, f.err
}

func (f *fakeStore) CategoryRoundExercises(context.Context, string) ([]model.CategoryRoundExercise, error) {
	f.count("CategoryRoundExercises")
	return f.roundExercises, f.err
}

func (f *fakeStore) CategoryRoundExercise(context.Context, string, int) ([]model.CategoryRoundExercise, error) {
	f.count("CategoryRoundExercise")
	return f.roundExercises, f.err
}

func (f *fakeStore) ExerciseNumbers(context.Context, string) ([]model.ExerciseNumberRow, error) {
	f.count("ExerciseNumbers")
	return nil, f.err
}

func (f *fakeStore) CompetitorRanks(context.Context, string, int) ([]model.CompetitorRankRow, error) {
	f.count("CompetitorRanks")
	return nil, f.err
}

func (f *fakeStore) QualifyingStartList(context.Context, string) ([]model.StartListCompetitor, error) {
	f.count("QualifyingStartList")
	return nil, f.err
}

func (f *fakeStore) RoundStartList(context.Context, string, string) ([]model.RoundStartEntry, error) {
	f.count("RoundStartList")
	return nil, f.err
}

func (f *fakeStore) RoundStartListCompetitors(context.Context, string, string) ([]model.StartListCompetitor, error) {
	f.count("RoundStartListCompetitors")
	return nil, f.err
}

func (f *fakeStore) CompetitorRoundTotals(context.Context, int) ([]model.RoundTotalDetailRow, error) {
	f.count("CompetitorRoundTotals")
	return nil, f.err
}

func (f *fakeStore) StartListRounds(context.Context) ([]model.StartListRound, error) {
	f.count("StartListRounds")
	return nil, f.err
}

func (f *fakeStore) PanelStatuses(context.Context, *int) ([]model.PanelStatus, error) {
	f.count("PanelStatuses")
	return nil, f.err
}

func (f *fakeStore) EventInfo(context.Context) ([]model.EventInfo, error) {
	f.count("EventInfo")
	return nil, f.err
}

// fakeCache is a plain map with no expiry.
type fakeCache struct {
	entries map[string]any
}

func newFakeCache() *fakeCache { return &fakeCache{entries: map[string]any{}} }

func (c *fakeCache) Get(key string) (any, bool) {
	v, ok := c.entries[key]
	return v, ok
}

func (c *fakeCache) Set(key string, value any) { c.entries[key] = value }

func (c *fakeCache) SetWithTTL(key string, value any, _ time.Duration) { c.entries[key] = value }

func startedService(store *fakeStore) *Service {
	svc := New(WithStore(store), WithCache(newFakeCache()))
	if err := svc.Start(context.Background()); err != nil {
		panic(err)
	}
	return svc
}

func competitorFixture(id int) model.CompetitorRow {
	row := model.CompetitorRow{
		CompetitorID: id,
		CatID:        "IWY",
		Discipline:   "TRA",
		Category:     "Women Youth",
		FirstName1:   "Ana",
		Surname1:     "Silva",
	}
	row.ZeroRank = intPtr(1)
	row.DisplayCumulativeRank = strPtr("1")
	row.Slots[0].Total = floatPtr(50.5)
	return row
}

func TestLatest(t *testing.T) {
	Convey("Given a started service", t, func() {
		ctx := context.Background()

		Convey("When the panel has no rows", func() {
			svc := startedService(newFakeStore())
			view, err := svc.Latest(ctx, 1)

			So(err, ShouldBeNil)
			So(view, ShouldBeNil)
		})

		Convey("When the panel has a scored row", func() {
			store := newFakeStore()
			row := competitorFixture(42)
			updated := time.Date(2026, 8, 29, 14, 5, 0, 0, time.UTC)
			row.LastUpdated = &updated
			store.latest = &row
			store.roundExercises = []model.CategoryRoundExercise{
				{CategoryID: "IWY", ExerciseNumber: 1, RoundName: "Qualifying 1"},
			}
			svc := startedService(store)

			view, err := svc.Latest(ctx, 1)

			Convey("Then the view carries the resolved exercise and rank", func() {
				So(err, ShouldBeNil)
				So(view, ShouldNotBeNil)
				So(view.CompetitorID, ShouldEqual, 42)
				So(view.Rank, ShouldEqual, "1")
				So(view.Exercise.Exercise, ShouldEqual, 1)
				So(view.Exercise.RoundName, ShouldEqual, "Qualifying 1")
			})

			Convey("And the freshness fields survive shaping", func() {
				So(err, ShouldBeNil)
				So(view.LastUpdated, ShouldNotBeNil)
				So(view.LastUpdated.Equal(updated), ShouldBeTrue)
				So(view.Withdrawn, ShouldBeNil)
				So(view.F1Total, ShouldResemble, row.F1Total)
			})
		})

		Convey("When a scored exercise has no round metadata", func() {
			store := newFakeStore()
			row := competitorFixture(42)
			store.latest = &row
			svc := startedService(store)

			_, err := svc.Latest(ctx, 1)

			So(err, ShouldNotBeNil)
		})
	})
}

func TestOnlineResults(t *testing.T) {
	Convey("Given a started service", t, func() {
		ctx := context.Background()

		Convey("When the category is empty", func() {
			svc := startedService(newFakeStore())
			views, err := svc.OnlineResults(ctx, "IWY", 0)

			So(err, ShouldBeNil)
			So(views, ShouldNotBeNil)
			So(len(views), ShouldEqual, 0)
		})

		Convey("When the category has competitors and full judge detail", func() {
			store := newFakeStore()
			store.detailTables = true
			store.competitors = []model.CompetitorRow{competitorFixture(1), competitorFixture(2)}
			store.exerciseTotals = []model.ExerciseTotalRow{
				{CompetitorID: 1, ExerciseNumber: 1, Total: floatPtr(50.5)},
			}
			store.medians = []model.JudgeRow{
				{CompetitorID: 1, ExerciseNumber: 1, DeductionNumber: 11, Value: floatPtr(0.3)},
			}
			svc := startedService(store)

			views, err := svc.OnlineResults(ctx, "IWY", 0)

			Convey("Then all detail tables are fetched and joined", func() {
				So(err, ShouldBeNil)
				So(len(views), ShouldEqual, 2)
				So(len(views[0].Exercises), ShouldEqual, 1)
				So(views[0].Exercises[0].Medians[0].DeductionNumber.Landing, ShouldBeTrue)
				So(store.calls["ExerciseHDDeductions"], ShouldEqual, 1)
				So(store.calls["ExerciseTSValues"], ShouldEqual, 1)
			})
		})

		Convey("When the judge-detail tables are absent", func() {
			store := newFakeStore()
			store.competitors = []model.CompetitorRow{competitorFixture(1)}
			svc := startedService(store)

			_, err := svc.OnlineResults(ctx, "IWY", 0)

			Convey("Then the extension tables are never queried", func() {
				So(err, ShouldBeNil)
				So(store.calls["ExerciseHDDeductions"], ShouldEqual, 0)
				So(store.calls["ExerciseTSValues"], ShouldEqual, 0)
			})
		})

		Convey("When two requests run back to back", func() {
			store := newFakeStore()
			store.competitors = []model.CompetitorRow{competitorFixture(1)}
			svc := startedService(store)

			_, err := svc.OnlineResults(ctx, "IWY", 0)
			So(err, ShouldBeNil)
			_, err = svc.OnlineResults(ctx, "IWY", 0)
			So(err, ShouldBeNil)

			Convey("Then the schema existence query runs once per process", func() {
				So(store.calls["JudgeDetailTablesExist"], ShouldEqual, 1)
			})
		})

		Convey("When a detail query fails", func() {
			store := newFakeStore()
			store.competitors = []model.CompetitorRow{competitorFixture(1)}
			svc := startedService(store)
			store.err = errors.New("boom")

			_, err := svc.OnlineResults(ctx, "IWY", 0)

			Convey("Then the whole request fails, no partial result", func() {
				So(err, ShouldNotBeNil)
			})
		})
	})
}

func TestReferenceCaching(t *testing.T) {
	Convey("Given a started service", t, func() {
		ctx := context.Background()
		store := newFakeStore()
		store.categories = []model.Category{{CatID: "IWY", Discipline: "TRA"}}
		store.roundExercises = []model.CategoryRoundExercise{
			{CategoryID: "IWY", ExerciseNumber: 1, RoundName: "Qualifying 1"},
		}
		svc := startedService(store)

		Convey("When categories are fetched twice", func() {
			first, err := svc.Categories(ctx, "IWY")
			So(err, ShouldBeNil)
			second, err := svc.Categories(ctx, "IWY")
			So(err, ShouldBeNil)

			Convey("Then the second read comes from the cache", func() {
				So(store.calls["Categories"], ShouldEqual, 1)
				So(second, ShouldResemble, first)
			})
		})

		Convey("When round-exercise metadata is fetched twice", func() {
			_, err := svc.CategoryRoundExercises(ctx, "IWY")
			So(err, ShouldBeNil)
			_, err = svc.CategoryRoundExercises(ctx, "IWY")
			So(err, ShouldBeNil)

			So(store.calls["CategoryRoundExercises"], ShouldEqual, 1)
		})
	})
}

func TestPanelBoardAndRankings(t *testing.T) {
	Convey("Given a started service", t, func() {
		ctx := context.Background()

		Convey("When building the panel board", func() {
			store := newFakeStore()
			row := model.PanelRow{CompetitorRow: competitorFixture(1), RowNumber: 1}
			row.PanelNo = intPtr(2)
			store.panelRows = []model.PanelRow{row}
			store.roundExercises = []model.CategoryRoundExercise{
				{CategoryID: "IWY", ExerciseNumber: 1, RoundName: "Qualifying 1"},
			}
			svc := startedService(store)

			entries, err := svc.PanelBoard(ctx)

			So(err, ShouldBeNil)
			So(len(entries), ShouldEqual, 1)
			So(entries[0].Panel, ShouldEqual, 2)
			So(entries[0].CurrentScore, ShouldNotBeNil)
		})

		Convey("When building the rankings rotation", func() {
			store := newFakeStore()
			store.rankingRows = []model.RankingRow{
				{Discipline: "TRA", Category: "Women Youth", RoundName: "Qualifying",
					CompetitorID: 1, FirstName1: "Ana", Surname1: "Silva", RoundRank: intPtr(1)},
			}
			svc := startedService(store)

			groups, err := svc.Rankings(ctx)

			So(err, ShouldBeNil)
			So(len(groups), ShouldEqual, 1)
			So(groups[0].Competitors[0].Rank, ShouldEqual, "1")
		})
	})
}
