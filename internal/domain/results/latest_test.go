package results_test

import (
	"encoding/json"
	"testing"

	"github.com/openfloor/scorecast/internal/domain/model"
	"github.com/openfloor/scorecast/internal/domain/results"
	. "github.com/smartystreets/goconvey/convey"
)

func TestResolveLatest(t *testing.T) {
	Convey("Given a competitor with flattened exercise totals", t, func() {
		meta := map[int]string{1: "Qualifying 1", 2: "Qualifying 2", 3: "Final"}
		row := model.CompetitorRow{CompetitorID: 42, CatID: "IWY"}

		Convey("When exercises 1 and 2 are scored", func() {
			row.Slots[0].Total = floatPtr(52.1)
			row.Slots[1].Total = floatPtr(53.4)
			row.Slots[1].Execution = floatPtr(17.2)

			ex, err := results.ResolveLatest(row, meta)
			So(err, ShouldBeNil)

			Convey("Then the highest scored exercise wins", func() {
				So(ex.Exercise, ShouldEqual, 2)
				So(ex.RoundName, ShouldEqual, "Qualifying 2")
				So(*ex.Total, ShouldEqual, 53.4)
				So(*ex.Execution, ShouldEqual, 17.2)
			})
		})

		Convey("When the only recorded total is zero", func() {
			// Scored zero is a completed exercise; NULL is not.
			row.Slots[0].Total = floatPtr(0)

			ex, err := results.ResolveLatest(row, meta)
			So(err, ShouldBeNil)
			So(ex.Exercise, ShouldEqual, 1)
			So(*ex.Total, ShouldEqual, 0.0)

			Convey("And the zero total survives serialisation", func() {
				out, merr := json.Marshal(ex)
				So(merr, ShouldBeNil)
				So(string(out), ShouldContainSubstring, `"Total":0`)
			})
		})

		Convey("When nothing is scored yet", func() {
			ex, err := results.ResolveLatest(row, meta)
			So(err, ShouldBeNil)
			So(ex.IsZero(), ShouldBeTrue)

			Convey("Then the exercise serialises as an empty object", func() {
				out, merr := json.Marshal(ex)
				So(merr, ShouldBeNil)
				So(string(out), ShouldEqual, "{}")
			})
		})

		Convey("When a scored exercise has no round metadata", func() {
			row.Slots[3].Total = floatPtr(49.9)

			_, err := results.ResolveLatest(row, meta)

			Convey("Then the resolver fails the request", func() {
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldContainSubstring, "exercise 4")
			})
		})
	})
}
