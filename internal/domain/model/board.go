package model

// Panel score statuses as written by the scoring system.
const (
	// ScoreStatusNextUp marks a row whose gymnast is about to compete.
	ScoreStatusNextUp = 1
	// ScoreStatusCompleted marks a row whose gymnast has just competed.
	ScoreStatusCompleted = 2
)

// GymnastRef names a neighbouring competitor on a panel row (the next one to
// compete or the last one who did).
type GymnastRef struct {
	FirstName1 *string
	Surname1   *string
	Surname2   *string
	Club       *string
	Category   *string
}

// IsZero reports whether the reference carries no competitor.
func (g GymnastRef) IsZero() bool {
	return g.Surname1 == nil || *g.Surname1 == ""
}

// PanelRow is one of the two most recent scored display rows of a judging
// panel. RowNumber is the recency rank within the panel: 1 is the most recent.
type PanelRow struct {
	CompetitorRow
	RowNumber   int
	ScoreStatus *int
	Next        GymnastRef
	Last        GymnastRef
}

// PanelBoardEntry is the "now showing" view of one judging panel.
type PanelBoardEntry struct {
	Panel          int             `json:"Panel"`
	CurrentGymnast *GymnastView    `json:"CurrentGymnast,omitempty"`
	CurrentScore   *PanelScoreView `json:"CurrentScore,omitempty"`
	PreviousScore  *PanelScoreView `json:"PreviousScore,omitempty"`
}

// GymnastView describes a competitor on the panel board.
type GymnastView struct {
	Name     string `json:"Name"`
	Club     string `json:"Club,omitempty"`
	Category string `json:"Category,omitempty"`
}

// PanelScoreView is one completed score on the panel board.
type PanelScoreView struct {
	Name     string         `json:"Name"`
	Club     string         `json:"Club,omitempty"`
	Category string         `json:"Category"`
	Rank     string         `json:"Rank"`
	Exercise LatestExercise `json:"Exercise"`
}

// RankingRow is one competitor's total for a category's latest signed-off
// round, as fed to the rankings transformer (rank ascending per category).
type RankingRow struct {
	Discipline   string
	Category     string
	RoundName    string
	CompetitorID int
	FirstName1   string
	FirstName2   *string
	Surname1     string
	Surname2     *string
	DisplayClub  *string
	RoundTotal   *float64
	RoundRank    *int
}

// RankingGroup is one leaderboard on the big screen rankings rotation.
type RankingGroup struct {
	Discipline  string         `json:"Discipline"`
	Category    string         `json:"Category"`
	RoundName   string         `json:"RoundName"`
	Competitors []RankingEntry `json:"Competitors"`
}

// RankingEntry is one leaderboard line.
type RankingEntry struct {
	CompetitorID int      `json:"CompetitorId"`
	Name         string   `json:"Name"`
	Club         string   `json:"Club,omitempty"`
	Total        *float64 `json:"Total,omitempty"`
	Rank         string   `json:"Rank"`
}
