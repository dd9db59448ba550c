package model

// ExerciseTotalRow is one DisplayScreenExerciseTotals row: the un-flattened
// score breakdown for one (competitor, exercise number) pair.
type ExerciseTotalRow struct {
	CompetitorID           int
	ExerciseNumber         int
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

// JudgeRow is one judge-level detail row: a median, a raw deduction, an HD
// deduction or a TS value, keyed by deduction slot.
type JudgeRow struct {
	CompetitorID    int
	ExerciseNumber  int
	JudgeNumber     *int
	DeductionNumber int
	Value           *float64
}

// VideoRow is one ExerciseVideos row: a recorded camera angle of an exercise.
type VideoRow struct {
	CompetitorID   int
	ExerciseNumber int
	CameraAngle    *string
	Event          *string
	FileName       string
}

// RoundTotalRow is one RoundTotals row.
type RoundTotalRow struct {
	CompetitorID int
	RoundName    string
	RoundTotal   *float64
	RoundRank    *int
}

// ExerciseView is one exercise in a shaped online-results competitor, with the
// judge detail attached. Judge collections are omitted when empty.
type ExerciseView struct {
	ExerciseNumber         int         `json:"ExerciseNumber"`
	Execution              *float64    `json:"Execution,omitempty"`
	Difficulty             *float64    `json:"Difficulty,omitempty"`
	Bonus                  *float64    `json:"Bonus,omitempty"`
	HorizontalDisplacement *float64    `json:"HorizontalDisplacement,omitempty"`
	TimeOfFlight           *float64    `json:"TimeOfFlight,omitempty"`
	Synchronisation        *float64    `json:"Synchronisation,omitempty"`
	Penalty                *float64    `json:"Penalty,omitempty"`
	Total                  *float64    `json:"Total,omitempty"`
	Rank                   *int        `json:"Rank,omitempty"`
	Medians                []JudgeView `json:"Medians,omitempty"`
	Deductions             []JudgeView `json:"Deductions,omitempty"`
	HDDeductions           []JudgeView `json:"HDDeductions,omitempty"`
	TSValues               []JudgeView `json:"TSValues,omitempty"`
	Videos                 []VideoView `json:"Videos,omitempty"`
}

// JudgeView is a relabeled judge detail row.
type JudgeView struct {
	JudgeNumber     *int          `json:"JudgeNumber,omitempty"`
	DeductionNumber DeductionSlot `json:"DeductionNumber"`
	Value           *float64      `json:"Value,omitempty"`
}

// VideoView is a video reference attached to an exercise.
type VideoView struct {
	CameraAngle *string `json:"CameraAngle,omitempty"`
	Event       *string `json:"Event,omitempty"`
	FileName    string  `json:"FileName"`
}

// RoundTotalView is a round total attached to a shaped competitor.
type RoundTotalView struct {
	RoundName  string   `json:"RoundName"`
	RoundTotal *float64 `json:"RoundTotal,omitempty"`
	RoundRank  *int     `json:"RoundRank,omitempty"`
}
