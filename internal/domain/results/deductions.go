// Package results implements the result-aggregation and shaping core: joining
// detail rows onto competitors, resolving the latest completed exercise,
// projecting a single display rank and relabeling deduction slots.
package results

import "github.com/openfloor/scorecast/internal/domain/model"

// Final deduction slot per discipline prefix. Individual and synchro sheets
// have eleven slots, DMT has three, tumbling has nine; the last one is the
// landing deduction.
const (
	landingSlotTrampoline = 11
	landingSlotTumbling   = 9
	landingSlotDMT        = 3
)

// Relabel maps a deduction slot number to its display identity for the given
// category. The final slot of each discipline becomes the landing marker "L";
// every other slot keeps its number. Idempotent by construction.
func Relabel(catID string, slot int) model.DeductionSlot {
	if catID == "" {
		return model.DeductionSlot{Number: slot}
	}
	landing := false
	switch catID[0] {
	case 'I', 'S':
		landing = slot == landingSlotTrampoline
	case 'U':
		landing = slot == landingSlotTumbling
	case 'D':
		landing = slot == landingSlotDMT
	}
	return model.DeductionSlot{Number: slot, Landing: landing}
}

// RelabelJudgeRows shapes judge detail rows for one exercise, applying the
// landing relabeling. Returns nil for an empty input so the field is omitted.
func RelabelJudgeRows(catID string, rows []model.JudgeRow) []model.JudgeView {
	if len(rows) == 0 {
		return nil
	}
	views := make([]model.JudgeView, 0, len(rows))
	for _, r := range rows {
		views = append(views, model.JudgeView{
			JudgeNumber:     r.JudgeNumber,
			DeductionNumber: Relabel(catID, r.DeductionNumber),
			Value:           r.Value,
		})
	}
	return views
}

// JudgeViews shapes judge detail rows without relabeling. Time-of-flight and
// travel values are per-skill measurements, not deduction sheets, so a slot
// number that collides with a landing slot stays numeric.
func JudgeViews(rows []model.JudgeRow) []model.JudgeView {
	if len(rows) == 0 {
		return nil
	}
	views := make([]model.JudgeView, 0, len(rows))
	for _, r := range rows {
		views = append(views, model.JudgeView{
			JudgeNumber:     r.JudgeNumber,
			DeductionNumber: model.DeductionSlot{Number: r.DeductionNumber},
			Value:           r.Value,
		})
	}
	return views
}
