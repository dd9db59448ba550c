// Package model contains the row and view types shared across the application.
//
// Row types mirror the columns of the scoring database and keep nullable
// columns as pointers. View types are the shapes the API serialises; they
// deliberately lack the raw flattened per-exercise columns and the raw ranking
// columns, so a shaped response can never leak them.
package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// MaxExercises is the number of flattened per-exercise column groups on a
// display screen row (Ex1* .. Ex5*).
const MaxExercises = 5

// ExerciseSlot holds one flattened Ex{n}* column group of a display screen row.
type ExerciseSlot struct {
	Execution              *float64
	Difficulty             *float64
	Bonus                  *float64
	HorizontalDisplacement *float64
	TimeOfFlight           *float64
	Synchronisation        *float64
	Penalty                *float64
	Total                  *float64
	Rank                   *int
}

// HasTotal reports whether the slot carries a recorded total. A total of zero
// is a recorded score; only NULL means "not yet scored".
func (s ExerciseSlot) HasTotal() bool {
	return s.Total != nil
}

// CompetitorRow is one DisplayScreen row: competitor identity plus the
// flattened per-exercise totals and both ranking schemes.
type CompetitorRow struct {
	CompetitorID int
	CatID        string
	Discipline   string
	Category     string
	CompType     int
	PanelNo      *int

	FirstName1  string
	Surname1    string
	FirstName2  *string
	Surname2    *string
	Nation      *string
	Club        *string
	DisplayClub *string

	Withdrawn   *int
	LastUpdated *time.Time

	Q1Flight  *int
	Q1StartNo *int
	Q1Scoring *int
	F1Total   *float64

	ZeroRank              *int
	CumulativeRank        *int
	DisplayZeroRank       *string
	DisplayCumulativeRank *string

	Slots [MaxExercises]ExerciseSlot
}

// Slot returns the flattened column group for a 1-based exercise number.
func (c *CompetitorRow) Slot(n int) ExerciseSlot {
	return c.Slots[n-1]
}

// MarshalJSON emits the row in its raw wire shape, flattened Ex{n}* keys
// included. Only the pass-through endpoints use this; shaped endpoints go
// through the view types instead.
func (c CompetitorRow) MarshalJSON() ([]byte, error) {
	raw := map[string]any{
		"CompetitorId":          c.CompetitorID,
		"CatId":                 c.CatID,
		"Discipline":            c.Discipline,
		"Category":              c.Category,
		"CompType":              c.CompType,
		"PanelNo":               c.PanelNo,
		"FirstName1":            c.FirstName1,
		"Surname1":              c.Surname1,
		"FirstName2":            c.FirstName2,
		"Surname2":              c.Surname2,
		"Nation":                c.Nation,
		"Club":                  c.Club,
		"DisplayClub":           c.DisplayClub,
		"Withdrawn":             c.Withdrawn,
		"LastUpdatedTimestamp":  c.LastUpdated,
		"Q1Flight":              c.Q1Flight,
		"Q1StartNo":             c.Q1StartNo,
		"Q1Scoring":             c.Q1Scoring,
		"F1Total":               c.F1Total,
		"ZeroRank":              c.ZeroRank,
		"CumulativeRank":        c.CumulativeRank,
		"DisplayZeroRank":       c.DisplayZeroRank,
		"DisplayCumulativeRank": c.DisplayCumulativeRank,
	}
	for i, s := range c.Slots {
		prefix := fmt.Sprintf("Ex%d", i+1)
		raw[prefix+"E"] = s.Execution
		raw[prefix+"D"] = s.Difficulty
		raw[prefix+"B"] = s.Bonus
		raw[prefix+"HD"] = s.HorizontalDisplacement
		raw[prefix+"ToF"] = s.TimeOfFlight
		raw[prefix+"S"] = s.Synchronisation
		raw[prefix+"Pen"] = s.Penalty
		raw[prefix+"Total"] = s.Total
		raw[prefix+"Rank"] = s.Rank
	}
	return json.Marshal(raw)
}

// Identity carries the competitor fields every shaped view exposes.
type Identity struct {
	CompetitorID int     `json:"CompetitorId"`
	FirstName1   string  `json:"FirstName1"`
	FirstName2   *string `json:"FirstName2,omitempty"`
	Surname1     string  `json:"Surname1"`
	Surname2     *string `json:"Surname2,omitempty"`
	Nation       *string `json:"Nation,omitempty"`
	DisplayClub  *string `json:"DisplayClub,omitempty"`
	CatID        string  `json:"CatId"`
	Discipline   string  `json:"Discipline"`
	Category     string  `json:"Category"`
	CompType     int     `json:"CompType"`
}

// IdentityOf projects the shared identity fields out of a raw row.
func IdentityOf(row CompetitorRow) Identity {
	return Identity{
		CompetitorID: row.CompetitorID,
		FirstName1:   row.FirstName1,
		FirstName2:   row.FirstName2,
		Surname1:     row.Surname1,
		Surname2:     row.Surname2,
		Nation:       row.Nation,
		DisplayClub:  row.DisplayClub,
		CatID:        row.CatID,
		Discipline:   row.Discipline,
		Category:     row.Category,
		CompType:     row.CompType,
	}
}

// LatestView is the shaped "current competitor" object served per panel.
// Exercise is always present and marshals as {} when nothing is scored yet.
// LastUpdated is kept so polling displays can tell a fresh row from a rerun.
type LatestView struct {
	Identity
	PanelNo     *int           `json:"PanelNo,omitempty"`
	Withdrawn   *int           `json:"Withdrawn"`
	LastUpdated *time.Time     `json:"LastUpdatedTimestamp"`
	F1Total     *float64       `json:"F1Total"`
	Rank        string         `json:"Rank"`
	Exercise    LatestExercise `json:"Exercise"`
}

// ResultView is one shaped competitor in the online results list.
type ResultView struct {
	Identity
	Rank        string           `json:"Rank"`
	Exercises   []ExerciseView   `json:"Exercises"`
	RoundTotals []RoundTotalView `json:"RoundTotals,omitempty"`
}

// LatestExercise is the structured "most recently completed exercise" object.
// The zero value marshals as {} and stands for "nothing scored yet".
type LatestExercise struct {
	Exercise               int      `json:"Exercise,omitempty"`
	RoundName              string   `json:"RoundName,omitempty"`
	Execution              *float64 `json:"Execution,omitempty"`
	Difficulty             *float64 `json:"Difficulty,omitempty"`
	Bonus                  *float64 `json:"Bonus,omitempty"`
	HorizontalDisplacement *float64 `json:"HorizontalDisplacement,omitempty"`
	TimeOfFlight           *float64 `json:"TimeOfFlight,omitempty"`
	Synchronisation        *float64 `json:"Synchronisation,omitempty"`
	Penalty                *float64 `json:"Penalty,omitempty"`
	Total                  *float64 `json:"Total,omitempty"`
}

// IsZero reports whether no exercise was resolved.
func (e LatestExercise) IsZero() bool {
	return e.Exercise == 0
}
