// Package repository provides read access to the scoring database.
//
// Every method issues a single parameterized query. The service owns no data:
// all rows belong to the external scoring system and are read-only here.
package repository

import (
	"context"

	"github.com/openfloor/scorecast/internal/domain/model"
)

// Store is the read surface of the scoring database.
type Store interface {
	// LatestForPanel returns the most recent non-withdrawn display row for a
	// judging panel, or nil when the panel has no rows.
	LatestForPanel(ctx context.Context, panelNumber int) (*model.CompetitorRow, error)

	// LatestScoreForPanel returns the most recent display row for a panel,
	// withdrawn competitors included, as a raw row list.
	LatestScoreForPanel(ctx context.Context, panelNumber int) ([]model.CompetitorRow, error)

	// CompetitorsByCategory returns the non-withdrawn display rows of a
	// category ordered by the competition type's rank scheme, NULL ranks last,
	// ties broken by qualifying flight and start number.
	CompetitorsByCategory(ctx context.Context, catID string, compType int) ([]model.CompetitorRow, error)

	// Per-competitor-set detail tables. Each is filtered to the given
	// competitor ids, not the whole category.
	ExerciseTotals(ctx context.Context, competitorIDs []int) ([]model.ExerciseTotalRow, error)
	RoundTotals(ctx context.Context, competitorIDs []int) ([]model.RoundTotalRow, error)
	ExerciseMedians(ctx context.Context, competitorIDs []int) ([]model.JudgeRow, error)
	ExerciseDeductions(ctx context.Context, competitorIDs []int) ([]model.JudgeRow, error)
	ExerciseHDDeductions(ctx context.Context, competitorIDs []int) ([]model.JudgeRow, error)
	ExerciseTSValues(ctx context.Context, competitorIDs []int) ([]model.JudgeRow, error)
	ExerciseVideos(ctx context.Context, competitorIDs []int) ([]model.VideoRow, error)

	// JudgeDetailTablesExist reports whether the optional judge-detail
	// extension tables (HD deductions, TS values) are present in the schema.
	JudgeDetailTablesExist(ctx context.Context) (bool, error)

	// PanelRows returns the two most recent non-withdrawn display rows per
	// panel, RowNumber 1 being the most recent.
	PanelRows(ctx context.Context) ([]model.PanelRow, error)

	// LatestRoundRankings returns round totals for each category's latest
	// signed-off round, rank ascending with NULL ranks last.
	LatestRoundRankings(ctx context.Context) ([]model.RankingRow, error)

	// Reference and pass-through reads.
	Categories(ctx context.Context, catID string) ([]model.Category, error)
	DisplayCategories(ctx context.Context) ([]model.Category, error)
	Rounds(ctx context.Context, catID string) ([]model.Round, error)
	CategoryRoundExercises(ctx context.Context, catID string) ([]model.CategoryRoundExercise, error)
	CategoryRoundExercise(ctx context.Context, catID string, exerciseNumber int) ([]model.CategoryRoundExercise, error)
	ExerciseNumbers(ctx context.Context, catID string) ([]model.ExerciseNumberRow, error)
	CompetitorRanks(ctx context.Context, catID string, compType int) ([]model.CompetitorRankRow, error)
	QualifyingStartList(ctx context.Context, catID string) ([]model.StartListCompetitor, error)
	RoundStartList(ctx context.Context, catID, roundName string) ([]model.RoundStartEntry, error)
	RoundStartListCompetitors(ctx context.Context, catID, roundName string) ([]model.StartListCompetitor, error)
	CompetitorRoundTotals(ctx context.Context, competitorID int) ([]model.RoundTotalDetailRow, error)
	StartListRounds(ctx context.Context) ([]model.StartListRound, error)
	PanelStatuses(ctx context.Context, panelNumber *int) ([]model.PanelStatus, error)
	EventInfo(ctx context.Context) ([]model.EventInfo, error)
}
