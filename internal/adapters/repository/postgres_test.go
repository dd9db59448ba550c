package repository_test

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgproto3/v2"
	"github.com/jackc/pgx/v4"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/openfloor/scorecast/internal/adapters/repository"
	"github.com/openfloor/scorecast/pkg/logger"
)

func TestMain(m *testing.M) {
	if err := logger.Init(); err != nil {
		panic(err)
	}
	m.Run()
}

// fakeRows replays canned row values through the pgx.Rows contract.
type fakeRows struct {
	values [][]any
	pos    int
	err    error
}

func (r *fakeRows) Close()                                         {}
func (r *fakeRows) Err() error                                     { return r.err }
func (r *fakeRows) CommandTag() pgconn.CommandTag                  { return nil }
func (r *fakeRows) FieldDescriptions() []pgproto3.FieldDescription { return nil }
func (r *fakeRows) Values() ([]interface{}, error)                 { return nil, nil }
func (r *fakeRows) RawValues() [][]byte                            { return nil }

func (r *fakeRows) Next() bool {
	if r.pos >= len(r.values) {
		return false
	}
	r.pos++
	return true
}

func (r *fakeRows) Scan(dest ...interface{}) error {
	row := r.values[r.pos-1]
	for i, d := range dest {
		if i >= len(row) || row[i] == nil {
			continue
		}
		reflect.ValueOf(d).Elem().Set(reflect.ValueOf(row[i]))
	}
	return nil
}

type fakeRow struct {
	values []any
	err    error
}

func (r *fakeRow) Scan(dest ...interface{}) error {
	if r.err != nil {
		return r.err
	}
	for i, d := range dest {
		if row := r.values; i < len(row) && row[i] != nil {
			reflect.ValueOf(d).Elem().Set(reflect.ValueOf(row[i]))
		}
	}
	return nil
}

// fakeQueryer records issued queries and replays canned results or errors.
type fakeQueryer struct {
	queries []string
	args    [][]any
	rows    *fakeRows
	row     *fakeRow
	err     error
	calls   int
}

func (q *fakeQueryer) Query(_ context.Context, sql string, args ...interface{}) (pgx.Rows, error) {
	q.calls++
	q.queries = append(q.queries, sql)
	q.args = append(q.args, args)
	if q.err != nil {
		return nil, q.err
	}
	rows := *q.rows
	return &rows, nil
}

func (q *fakeQueryer) QueryRow(_ context.Context, sql string, args ...interface{}) pgx.Row {
	q.calls++
	q.queries = append(q.queries, sql)
	q.args = append(q.args, args)
	return q.row
}

func TestCategories(t *testing.T) {
	Convey("Given a store over a fake queryer", t, func() {
		ctx := context.Background()

		Convey("When fetching all categories", func() {
			db := &fakeQueryer{rows: &fakeRows{values: [][]any{
				{"IWY", "TRA", "Women Youth", 0, 1},
				{"DMJ", "DMT", "Men Junior", 1, 1},
			}}}
			store := repository.NewPostgres(db)

			cats, err := store.Categories(ctx, "")

			Convey("Then all rows come back unfiltered", func() {
				So(err, ShouldBeNil)
				So(len(cats), ShouldEqual, 2)
				So(cats[0].CatID, ShouldEqual, "IWY")
				So(cats[1].Discipline, ShouldEqual, "DMT")
				So(db.queries[0], ShouldNotContainSubstring, "WHERE")
			})
		})

		Convey("When fetching one category", func() {
			db := &fakeQueryer{rows: &fakeRows{values: [][]any{
				{"IWY", "TRA", "Women Youth", 0, 1},
			}}}
			store := repository.NewPostgres(db)

			cats, err := store.Categories(ctx, "IWY")

			Convey("Then the query filters by category id", func() {
				So(err, ShouldBeNil)
				So(len(cats), ShouldEqual, 1)
				So(db.queries[0], ShouldContainSubstring, "WHERE CatId = $1")
				So(db.args[0], ShouldResemble, []any{"IWY"})
			})
		})
	})
}

func TestQueryRetry(t *testing.T) {
	Convey("Given a queryer that always fails", t, func() {
		ctx := context.Background()
		db := &fakeQueryer{err: errors.New("connection reset")}
		store := repository.NewPostgres(db,
			repository.WithRetryAttempts(3),
			repository.WithRetryDelay(time.Millisecond))

		Convey("When fetching", func() {
			_, err := store.DisplayCategories(ctx)

			Convey("Then the query is retried and the failure surfaces", func() {
				So(err, ShouldNotBeNil)
				So(errors.Is(err, repository.ErrQueryFailed), ShouldBeTrue)
				So(db.calls, ShouldEqual, 3)
			})
		})
	})
}

func TestJudgeDetailTablesExist(t *testing.T) {
	Convey("Given a store over a fake queryer", t, func() {
		ctx := context.Background()

		Convey("When the extension tables exist", func() {
			db := &fakeQueryer{row: &fakeRow{values: []any{true}}}
			store := repository.NewPostgres(db)

			exists, err := store.JudgeDetailTablesExist(ctx)

			So(err, ShouldBeNil)
			So(exists, ShouldBeTrue)
		})

		Convey("When the extension tables are absent", func() {
			db := &fakeQueryer{row: &fakeRow{values: []any{false}}}
			store := repository.NewPostgres(db)

			exists, err := store.JudgeDetailTablesExist(ctx)

			So(err, ShouldBeNil)
			So(exists, ShouldBeFalse)
		})
	})
}

func TestLatestForPanel(t *testing.T) {
	Convey("Given a panel with no display rows", t, func() {
		ctx := context.Background()
		db := &fakeQueryer{rows: &fakeRows{}}
		store := repository.NewPostgres(db)

		Convey("When fetching the latest row", func() {
			row, err := store.LatestForPanel(ctx, 1)

			Convey("Then nil comes back without an error", func() {
				So(err, ShouldBeNil)
				So(row, ShouldBeNil)
				So(db.queries[0], ShouldContainSubstring, "ORDER BY LastUpdatedTimestamp DESC LIMIT 1")
				So(db.queries[0], ShouldContainSubstring, "Withdrawn")
			})
		})
	})
}

func TestCompetitorsByCategoryOrdering(t *testing.T) {
	Convey("Given the two competition types", t, func() {
		ctx := context.Background()

		Convey("When the competition is zero-ranked", func() {
			db := &fakeQueryer{rows: &fakeRows{}}
			store := repository.NewPostgres(db)
			_, err := store.CompetitorsByCategory(ctx, "IWY", 0)

			So(err, ShouldBeNil)
			So(db.queries[0], ShouldContainSubstring, "CASE WHEN ZeroRank IS NULL")
			So(db.queries[0], ShouldContainSubstring, "Q1Flight, Q1StartNo")
		})

		Convey("When the competition is cumulative", func() {
			db := &fakeQueryer{rows: &fakeRows{}}
			store := repository.NewPostgres(db)
			_, err := store.CompetitorsByCategory(ctx, "IWY", 1)

			So(err, ShouldBeNil)
			So(db.queries[0], ShouldContainSubstring, "CASE WHEN CumulativeRank IS NULL")
		})
	})
}
