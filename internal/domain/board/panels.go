// Package board builds the big-screen views: the per-panel "now showing"
// board and the rotating per-category rankings.
package board

import (
	"sort"

	"github.com/openfloor/scorecast/internal/domain/model"
	"github.com/openfloor/scorecast/internal/domain/results"
)

// MetaFunc resolves the exercise-number-to-round-name metadata for a
// category. The app layer backs it with the TTL cache.
type MetaFunc func(catID string) (map[int]string, error)

// Build groups the most recent scored rows by judging panel. The input holds
// at most the two freshest rows per panel (RowNumber 1 and 2); row 1 becomes
// the current score and, when its status names a neighbouring gymnast, the
// "current gymnast" descriptor; row 2 becomes the previous score. Panels are
// returned in ascending order.
func Build(rows []model.PanelRow, meta MetaFunc) ([]model.PanelBoardEntry, error) {
	byPanel := make(map[int][]model.PanelRow)
	for _, row := range rows {
		if row.PanelNo == nil {
			continue
		}
		byPanel[*row.PanelNo] = append(byPanel[*row.PanelNo], row)
	}

	panels := make([]int, 0, len(byPanel))
	for panel := range byPanel {
		panels = append(panels, panel)
	}
	sort.Ints(panels)

	entries := make([]model.PanelBoardEntry, 0, len(panels))
	for _, panel := range panels {
		entry := model.PanelBoardEntry{Panel: panel}
		for _, row := range byPanel[panel] {
			score, err := scoreView(row, meta)
			if err != nil {
				return nil, err
			}
			switch row.RowNumber {
			case 1:
				entry.CurrentScore = score
				entry.CurrentGymnast = currentGymnast(row)
			case 2:
				entry.PreviousScore = score
			}
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// currentGymnast derives the "now on the floor" descriptor from the row
// status: next-up rows point at the gymnast about to compete, completed rows
// at the one who just did. Any other status yields no descriptor.
func currentGymnast(row model.PanelRow) *model.GymnastView {
	if row.ScoreStatus == nil {
		return nil
	}
	var ref model.GymnastRef
	switch *row.ScoreStatus {
	case model.ScoreStatusNextUp:
		ref = row.Next
	case model.ScoreStatusCompleted:
		ref = row.Last
	default:
		return nil
	}
	if ref.IsZero() {
		return nil
	}
	return &model.GymnastView{
		Name:     refName(ref),
		Club:     deref(ref.Club),
		Category: deref(ref.Category),
	}
}

func scoreView(row model.PanelRow, meta MetaFunc) (*model.PanelScoreView, error) {
	m, err := meta(row.CatID)
	if err != nil {
		return nil, err
	}
	exercise, err := results.ResolveLatest(row.CompetitorRow, m)
	if err != nil {
		return nil, err
	}
	return &model.PanelScoreView{
		Name:     displayName(row.FirstName1, row.Surname1, row.Surname2),
		Club:     deref(row.DisplayClub),
		Category: row.Category,
		Rank:     results.ProjectRank(row.CompetitorRow),
		Exercise: exercise,
	}, nil
}

// displayName renders "SURNAME1, SURNAME2" for synchronised pairs and
// "SURNAME FirstName" otherwise.
func displayName(first1, surname1 string, surname2 *string) string {
	if surname2 != nil && *surname2 != "" {
		return surname1 + ", " + *surname2
	}
	if first1 == "" {
		return surname1
	}
	return surname1 + " " + first1
}

func refName(ref model.GymnastRef) string {
	return displayName(deref(ref.FirstName1), deref(ref.Surname1), ref.Surname2)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
