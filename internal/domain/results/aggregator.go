package results

import "github.com/openfloor/scorecast/internal/domain/model"

// Detail bundles the per-category detail rows fetched alongside the
// competitor set. HDDeductions and TSValues stay empty when the extension
// tables are absent from the schema.
type Detail struct {
	ExerciseTotals []model.ExerciseTotalRow
	RoundTotals    []model.RoundTotalRow
	Medians        []model.JudgeRow
	Deductions     []model.JudgeRow
	HDDeductions   []model.JudgeRow
	TSValues       []model.JudgeRow
	Videos         []model.VideoRow
}

type exerciseKey struct {
	competitorID   int
	exerciseNumber int
}

// Aggregate joins the detail rows onto the competitors, preserving the given
// competitor order. Every competitor gets an Exercises list (empty when
// nothing is scored), round totals when present, and per-exercise judge
// detail with deduction slots relabeled. The flattened Ex{n}* columns never
// reach the view: ResultView simply has no place for them.
func Aggregate(catID string, competitors []model.CompetitorRow, d Detail) []model.ResultView {
	exercisesByCompetitor := make(map[int][]model.ExerciseTotalRow)
	for _, row := range d.ExerciseTotals {
		exercisesByCompetitor[row.CompetitorID] = append(exercisesByCompetitor[row.CompetitorID], row)
	}
	roundsByCompetitor := make(map[int][]model.RoundTotalRow)
	for _, row := range d.RoundTotals {
		roundsByCompetitor[row.CompetitorID] = append(roundsByCompetitor[row.CompetitorID], row)
	}
	medians := indexJudgeRows(d.Medians)
	deductions := indexJudgeRows(d.Deductions)
	hdDeductions := indexJudgeRows(d.HDDeductions)
	tsValues := indexJudgeRows(d.TSValues)
	videos := make(map[exerciseKey][]model.VideoRow)
	for _, row := range d.Videos {
		k := exerciseKey{row.CompetitorID, row.ExerciseNumber}
		videos[k] = append(videos[k], row)
	}

	views := make([]model.ResultView, 0, len(competitors))
	for _, competitor := range competitors {
		view := model.ResultView{
			Identity:  model.IdentityOf(competitor),
			Rank:      ProjectRank(competitor),
			Exercises: []model.ExerciseView{},
		}
		for _, ex := range exercisesByCompetitor[competitor.CompetitorID] {
			k := exerciseKey{competitor.CompetitorID, ex.ExerciseNumber}
			view.Exercises = append(view.Exercises, model.ExerciseView{
				ExerciseNumber:         ex.ExerciseNumber,
				Execution:              ex.Execution,
				Difficulty:             ex.Difficulty,
				Bonus:                  ex.Bonus,
				HorizontalDisplacement: ex.HorizontalDisplacement,
				TimeOfFlight:           ex.TimeOfFlight,
				Synchronisation:        ex.Synchronisation,
				Penalty:                ex.Penalty,
				Total:                  ex.Total,
				Rank:                   ex.Rank,
				Medians:                RelabelJudgeRows(catID, medians[k]),
				Deductions:             RelabelJudgeRows(catID, deductions[k]),
				HDDeductions:           RelabelJudgeRows(catID, hdDeductions[k]),
				TSValues:               JudgeViews(tsValues[k]),
				Videos:                 videoViews(videos[k]),
			})
		}
		for _, rt := range roundsByCompetitor[competitor.CompetitorID] {
			view.RoundTotals = append(view.RoundTotals, model.RoundTotalView{
				RoundName:  rt.RoundName,
				RoundTotal: rt.RoundTotal,
				RoundRank:  rt.RoundRank,
			})
		}
		views = append(views, view)
	}
	return views
}

func indexJudgeRows(rows []model.JudgeRow) map[exerciseKey][]model.JudgeRow {
	idx := make(map[exerciseKey][]model.JudgeRow, len(rows))
	for _, row := range rows {
		k := exerciseKey{row.CompetitorID, row.ExerciseNumber}
		idx[k] = append(idx[k], row)
	}
	return idx
}

func videoViews(rows []model.VideoRow) []model.VideoView {
	if len(rows) == 0 {
		return nil
	}
	views := make([]model.VideoView, 0, len(rows))
	for _, r := range rows {
		views = append(views, model.VideoView{
			CameraAngle: r.CameraAngle,
			Event:       r.Event,
			FileName:    r.FileName,
		})
	}
	return views
}
