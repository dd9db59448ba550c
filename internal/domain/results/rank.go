package results

import "github.com/openfloor/scorecast/internal/domain/model"

// noRank is shown for competitors not yet ranked in the zero scheme.
const noRank = "-"

// ProjectRank derives the single display rank for a competitor.
//
// A competition may start under the "zero score" ranking convention and move
// to cumulative ranking in later rounds; this is the one place that encodes
// the transition. The zero-scheme rank applies only while the competition is
// in its zero-ranked phase and scoring has actually begun: CompType 0 and a
// strictly positive first-exercise total. A first total of exactly zero does
// not count as "scoring begun".
func ProjectRank(row model.CompetitorRow) string {
	if row.ZeroRank == nil {
		return noRank
	}
	if row.CompType == 0 && row.F1Total != nil && *row.F1Total > 0 {
		return derefRank(row.DisplayZeroRank)
	}
	return derefRank(row.DisplayCumulativeRank)
}

func derefRank(r *string) string {
	if r == nil || *r == "" {
		return noRank
	}
	return *r
}
