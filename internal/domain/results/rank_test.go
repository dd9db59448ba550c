package results_test

import (
	"testing"

	"github.com/openfloor/scorecast/internal/domain/model"
	"github.com/openfloor/scorecast/internal/domain/results"
	. "github.com/smartystreets/goconvey/convey"
)

func intPtr(n int) *int           { return &n }
func floatPtr(f float64) *float64 { return &f }
func strPtr(s string) *string     { return &s }

func TestProjectRank(t *testing.T) {
	Convey("Given a competitor row", t, func() {
		row := model.CompetitorRow{
			CompetitorID:          42,
			CatID:                 "IWY",
			CompType:              0,
			ZeroRank:              intPtr(3),
			CumulativeRank:        intPtr(5),
			DisplayZeroRank:       strPtr("3"),
			DisplayCumulativeRank: strPtr("5"),
		}

		Convey("When the competitor has no zero rank at all", func() {
			row.ZeroRank = nil
			So(results.ProjectRank(row), ShouldEqual, "-")
		})

		Convey("When the zero phase is active and scoring has begun", func() {
			row.F1Total = floatPtr(27.5)
			So(results.ProjectRank(row), ShouldEqual, "3")
		})

		Convey("When the first-exercise total is exactly zero", func() {
			// A zero first total means scoring has not begun; fall back to
			// the cumulative scheme.
			row.F1Total = floatPtr(0)
			So(results.ProjectRank(row), ShouldEqual, "5")
		})

		Convey("When the first-exercise total is absent", func() {
			row.F1Total = nil
			So(results.ProjectRank(row), ShouldEqual, "5")
		})

		Convey("When the competition is cumulative-typed", func() {
			row.CompType = 1
			row.F1Total = floatPtr(27.5)
			So(results.ProjectRank(row), ShouldEqual, "5")
		})

		Convey("When the selected display rank is missing", func() {
			row.CompType = 1
			row.DisplayCumulativeRank = nil
			So(results.ProjectRank(row), ShouldEqual, "-")
		})
	})
}
