package results

import (
	"fmt"

	"github.com/openfloor/scorecast/internal/domain/model"
)

// ResolveLatest determines the most recently completed exercise from a row's
// flattened slots. Slots are scanned 5 down to 1; the first with a recorded
// total wins (zero is a recorded total). meta maps exercise number to round
// name for the competitor's category.
//
// Returns the zero LatestExercise when nothing is scored yet. Returns
// ErrNoRoundName when a scored exercise has no metadata entry; that indicates
// corrupt reference data and must fail the request.
func ResolveLatest(row model.CompetitorRow, meta map[int]string) (model.LatestExercise, error) {
	for n := model.MaxExercises; n >= 1; n-- {
		slot := row.Slot(n)
		if !slot.HasTotal() {
			continue
		}
		roundName, ok := meta[n]
		if !ok {
			return model.LatestExercise{}, fmt.Errorf(
				"competitor %d category %q exercise %d: %w",
				row.CompetitorID, row.CatID, n, ErrNoRoundName)
		}
		return model.LatestExercise{
			Exercise:               n,
			RoundName:              roundName,
			Execution:              slot.Execution,
			Difficulty:             slot.Difficulty,
			Bonus:                  slot.Bonus,
			HorizontalDisplacement: slot.HorizontalDisplacement,
			TimeOfFlight:           slot.TimeOfFlight,
			Synchronisation:        slot.Synchronisation,
			Penalty:                slot.Penalty,
			Total:                  slot.Total,
		}, nil
	}
	return model.LatestExercise{}, nil
}
