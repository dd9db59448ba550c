package model

import "time"

// Category is one Categories row.
type Category struct {
	CatID      string `json:"CatId"`
	Discipline string `json:"Discipline"`
	Category   string `json:"Category"`
	CompType   int    `json:"CompType"`
	Display    int    `json:"Display"`
}

// Round is one Rounds row.
type Round struct {
	RoundID    int    `json:"RoundId"`
	CategoryID string `json:"CategoryId"`
	RoundName  string `json:"RoundName"`
	RoundOrder int    `json:"RoundOrder"`
	SignedOff  *int   `json:"SignedOff,omitempty"`
}

// CategoryRoundExercise maps an exercise number within a category to the
// round it belongs to. Read-mostly and cached.
type CategoryRoundExercise struct {
	CategoryID     string `json:"CategoryId"`
	ExerciseNumber int    `json:"ExerciseNumber"`
	RoundName      string `json:"RoundName"`
}

// ExerciseNumberRow is one entry of a category's exercise-number progression.
type ExerciseNumberRow struct {
	ExerciseNumber int    `json:"ExerciseNumber"`
	RoundName      string `json:"RoundName"`
}

// PanelStatus is one PanelStatus row.
type PanelStatus struct {
	PanelNo   int        `json:"PanelNo"`
	Status    *int       `json:"Status,omitempty"`
	CatID     *string    `json:"CatId,omitempty"`
	RoundName *string    `json:"RoundName,omitempty"`
	Updated   *time.Time `json:"LastUpdatedTimestamp,omitempty"`
}

// EventInfo describes the competition the database belongs to.
type EventInfo struct {
	EventID   string  `json:"EventId"`
	EventName string  `json:"EventName"`
	Venue     *string `json:"Venue,omitempty"`
	StartDate *string `json:"StartDate,omitempty"`
	EndDate   *string `json:"EndDate,omitempty"`
}

// CompetitorRankRow is one line of the top-8 ranking strip.
type CompetitorRankRow struct {
	CompetitorID          int     `json:"CompetitorId"`
	FirstName1            string  `json:"FirstName1"`
	FirstName2            *string `json:"FirstName2,omitempty"`
	Surname1              string  `json:"Surname1"`
	Surname2              *string `json:"Surname2,omitempty"`
	Nation                *string `json:"Nation,omitempty"`
	DisplayClub           *string `json:"DisplayClub,omitempty"`
	ZeroRank              *int    `json:"ZeroRank,omitempty"`
	DisplayZeroRank       *string `json:"DisplayZeroRank,omitempty"`
	DisplayCumulativeRank *string `json:"DisplayCumulativeRank,omitempty"`
}

// StartListCompetitor is one line of a start list.
type StartListCompetitor struct {
	CompetitorID int     `json:"CompetitorId,omitempty"`
	FirstName1   string  `json:"FirstName1"`
	FirstName2   *string `json:"FirstName2,omitempty"`
	Surname1     string  `json:"Surname1"`
	Surname2     *string `json:"Surname2,omitempty"`
	Nation       *string `json:"Nation,omitempty"`
	DisplayClub  *string `json:"DisplayClub,omitempty"`
}

// RoundStartEntry is one competitor id in round start order.
type RoundStartEntry struct {
	CompetitorID int `json:"CompetitorId"`
}

// StartListRound names a round whose start list may be displayed: the first
// round of a category, or any round whose predecessor is signed off.
type StartListRound struct {
	CategoryID string `json:"CategoryId"`
	RoundName  string `json:"RoundName"`
	Discipline string `json:"Discipline"`
	Category   string `json:"Category"`
}

// RoundTotalDetailRow is one DisplayScreenRoundTotals row, served raw for a
// single competitor's round progression.
type RoundTotalDetailRow struct {
	CompetitorID   int      `json:"CompetitorId"`
	CatID          string   `json:"CatId"`
	ExerciseNumber int      `json:"ExerciseNumber"`
	RoundName      string   `json:"RoundName"`
	RoundTotal     *float64 `json:"RoundTotal,omitempty"`
	RoundRank      *int     `json:"RoundRank,omitempty"`
}
