package board

import (
	"strconv"

	"github.com/openfloor/scorecast/internal/domain/model"
)

// Rankings groups round-total rows into per-(discipline, category, round)
// leaderboards. The input arrives ordered by group and then rank ascending;
// both orders are preserved as-is.
func Rankings(rows []model.RankingRow) []model.RankingGroup {
	groups := make([]model.RankingGroup, 0)
	for _, row := range rows {
		entry := model.RankingEntry{
			CompetitorID: row.CompetitorID,
			Name:         displayName(row.FirstName1, row.Surname1, row.Surname2),
			Club:         deref(row.DisplayClub),
			Total:        row.RoundTotal,
			Rank:         rankLabel(row.RoundRank),
		}
		n := len(groups)
		if n == 0 || !sameGroup(groups[n-1], row) {
			groups = append(groups, model.RankingGroup{
				Discipline:  row.Discipline,
				Category:    row.Category,
				RoundName:   row.RoundName,
				Competitors: []model.RankingEntry{entry},
			})
			continue
		}
		groups[n-1].Competitors = append(groups[n-1].Competitors, entry)
	}
	return groups
}

func sameGroup(g model.RankingGroup, row model.RankingRow) bool {
	return g.Discipline == row.Discipline && g.Category == row.Category && g.RoundName == row.RoundName
}

func rankLabel(rank *int) string {
	if rank == nil {
		return "-"
	}
	return strconv.Itoa(*rank)
}
