package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v4"

	"github.com/openfloor/scorecast/internal/domain/model"
)

// displayScreenColumns is the explicit column list of a DisplayScreen row, in
// the order competitorScanDest expects. Slot columns come last, grouped per
// exercise number.
const displayScreenColumns = `CompetitorId, CatId, Discipline, Category, CompType, PanelNo,
	FirstName1, Surname1, FirstName2, Surname2, Nation, Club, DisplayClub,
	Withdrawn, LastUpdatedTimestamp, Q1Flight, Q1StartNo, Q1Scoring, F1Total,
	ZeroRank, CumulativeRank, DisplayZeroRank, DisplayCumulativeRank,
	Ex1E, Ex1D, Ex1B, Ex1HD, Ex1ToF, Ex1S, Ex1Pen, Ex1Total, Ex1Rank,
	Ex2E, Ex2D, Ex2B, Ex2HD, Ex2ToF, Ex2S, Ex2Pen, Ex2Total, Ex2Rank,
	Ex3E, Ex3D, Ex3B, Ex3HD, Ex3ToF, Ex3S, Ex3Pen, Ex3Total, Ex3Rank,
	Ex4E, Ex4D, Ex4B, Ex4HD, Ex4ToF, Ex4S, Ex4Pen, Ex4Total, Ex4Rank,
	Ex5E, Ex5D, Ex5B, Ex5HD, Ex5ToF, Ex5S, Ex5Pen, Ex5Total, Ex5Rank`

const notWithdrawn = `(Withdrawn IS NULL OR Withdrawn != 1)`

// competitorScanDest builds the scan targets matching displayScreenColumns.
func competitorScanDest(c *model.CompetitorRow) []any {
	dest := []any{
		&c.CompetitorID, &c.CatID, &c.Discipline, &c.Category, &c.CompType, &c.PanelNo,
		&c.FirstName1, &c.Surname1, &c.FirstName2, &c.Surname2, &c.Nation, &c.Club, &c.DisplayClub,
		&c.Withdrawn, &c.LastUpdated, &c.Q1Flight, &c.Q1StartNo, &c.Q1Scoring, &c.F1Total,
		&c.ZeroRank, &c.CumulativeRank, &c.DisplayZeroRank, &c.DisplayCumulativeRank,
	}
	for i := range c.Slots {
		s := &c.Slots[i]
		dest = append(dest,
			&s.Execution, &s.Difficulty, &s.Bonus, &s.HorizontalDisplacement,
			&s.TimeOfFlight, &s.Synchronisation, &s.Penalty, &s.Total, &s.Rank)
	}
	return dest
}

func scanCompetitor(rows pgx.Rows) (model.CompetitorRow, error) {
	var c model.CompetitorRow
	err := rows.Scan(competitorScanDest(&c)...)
	return c, err
}

func scanJudgeRow(rows pgx.Rows) (model.JudgeRow, error) {
	var j model.JudgeRow
	err := rows.Scan(&j.CompetitorID, &j.ExerciseNumber, &j.JudgeNumber, &j.DeductionNumber, &j.Value)
	return j, err
}

func (s *PostgresStore) LatestForPanel(ctx context.Context, panelNumber int) (*model.CompetitorRow, error) {
	query := fmt.Sprintf(`SELECT %s FROM DisplayScreen
		WHERE PanelNo = $1 AND %s
		ORDER BY LastUpdatedTimestamp DESC LIMIT 1`, displayScreenColumns, notWithdrawn)
	rows, err := collect(ctx, s, query, []any{panelNumber}, scanCompetitor)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

func (s *PostgresStore) LatestScoreForPanel(ctx context.Context, panelNumber int) ([]model.CompetitorRow, error) {
	query := fmt.Sprintf(`SELECT %s FROM DisplayScreen
		WHERE PanelNo = $1
		ORDER BY LastUpdatedTimestamp DESC LIMIT 1`, displayScreenColumns)
	return collect(ctx, s, query, []any{panelNumber}, scanCompetitor)
}

func (s *PostgresStore) CompetitorsByCategory(ctx context.Context, catID string, compType int) ([]model.CompetitorRow, error) {
	rankColumn := "CumulativeRank"
	if compType == 0 {
		rankColumn = "ZeroRank"
	}
	query := fmt.Sprintf(`SELECT %s FROM DisplayScreen
		WHERE CatId = $1 AND %s
		ORDER BY (CASE WHEN %[3]s IS NULL THEN 1 ELSE 0 END), %[3]s, Q1Flight, Q1StartNo`,
		displayScreenColumns, notWithdrawn, rankColumn)
	return collect(ctx, s, query, []any{catID}, scanCompetitor)
}

func (s *PostgresStore) ExerciseTotals(ctx context.Context, competitorIDs []int) ([]model.ExerciseTotalRow, error) {
	query := `SELECT CompetitorId, ExerciseNumber, Execution, Difficulty, Bonus,
			HorizontalDisplacement, TimeOfFlight, Synchronisation, Penalty, Total, Rank
		FROM DisplayScreenExerciseTotals
		WHERE CompetitorId = ANY($1)
		ORDER BY CompetitorId, ExerciseNumber`
	return collect(ctx, s, query, []any{int64Set(competitorIDs)}, func(rows pgx.Rows) (model.ExerciseTotalRow, error) {
		var e model.ExerciseTotalRow
		err := rows.Scan(&e.CompetitorID, &e.ExerciseNumber, &e.Execution, &e.Difficulty, &e.Bonus,
			&e.HorizontalDisplacement, &e.TimeOfFlight, &e.Synchronisation, &e.Penalty, &e.Total, &e.Rank)
		return e, err
	})
}

func (s *PostgresStore) RoundTotals(ctx context.Context, competitorIDs []int) ([]model.RoundTotalRow, error) {
	query := `SELECT CompetitorId, RoundName, RoundTotal, RoundRank
		FROM RoundTotals
		WHERE CompetitorId = ANY($1)
		ORDER BY CompetitorId`
	return collect(ctx, s, query, []any{int64Set(competitorIDs)}, func(rows pgx.Rows) (model.RoundTotalRow, error) {
		var r model.RoundTotalRow
		err := rows.Scan(&r.CompetitorID, &r.RoundName, &r.RoundTotal, &r.RoundRank)
		return r, err
	})
}

func (s *PostgresStore) ExerciseMedians(ctx context.Context, competitorIDs []int) ([]model.JudgeRow, error) {
	return s.judgeRows(ctx, "ExerciseMedians", competitorIDs)
}

func (s *PostgresStore) ExerciseDeductions(ctx context.Context, competitorIDs []int) ([]model.JudgeRow, error) {
	return s.judgeRows(ctx, "ExerciseDeductions", competitorIDs)
}

func (s *PostgresStore) ExerciseHDDeductions(ctx context.Context, competitorIDs []int) ([]model.JudgeRow, error) {
	return s.judgeRows(ctx, "ExerciseHDDeductions", competitorIDs)
}

func (s *PostgresStore) ExerciseTSValues(ctx context.Context, competitorIDs []int) ([]model.JudgeRow, error) {
	return s.judgeRows(ctx, "ExerciseTSValues", competitorIDs)
}

// judgeRows reads one of the four same-shaped judge-detail tables. The table
// name comes from the fixed set above, never from input.
func (s *PostgresStore) judgeRows(ctx context.Context, table string, competitorIDs []int) ([]model.JudgeRow, error) {
	query := fmt.Sprintf(`SELECT CompetitorId, ExerciseNumber, JudgeNumber, DeductionNumber, Value
		FROM %s
		WHERE CompetitorId = ANY($1)
		ORDER BY CompetitorId, ExerciseNumber, DeductionNumber`, table)
	return collect(ctx, s, query, []any{int64Set(competitorIDs)}, scanJudgeRow)
}

func (s *PostgresStore) ExerciseVideos(ctx context.Context, competitorIDs []int) ([]model.VideoRow, error) {
	query := `SELECT CompetitorId, ExerciseNumber, CameraAngle, Event, FileName
		FROM ExerciseVideos
		WHERE CompetitorId = ANY($1)
		ORDER BY CompetitorId, ExerciseNumber`
	return collect(ctx, s, query, []any{int64Set(competitorIDs)}, func(rows pgx.Rows) (model.VideoRow, error) {
		var v model.VideoRow
		err := rows.Scan(&v.CompetitorID, &v.ExerciseNumber, &v.CameraAngle, &v.Event, &v.FileName)
		return v, err
	})
}

func (s *PostgresStore) JudgeDetailTablesExist(ctx context.Context) (bool, error) {
	query := `SELECT to_regclass('ExerciseHDDeductions') IS NOT NULL
		AND to_regclass('ExerciseTSValues') IS NOT NULL`
	var exists bool
	err := s.queryRowScan(ctx, query, nil, &exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (s *PostgresStore) PanelRows(ctx context.Context) ([]model.PanelRow, error) {
	query := fmt.Sprintf(`SELECT %s, rn, ScoreStatus,
			NextFirstName1, NextSurname1, NextSurname2, NextClub, NextCategory,
			LastFirstName1, LastSurname1, LastSurname2, LastClub, LastCategory
		FROM (
			SELECT *, ROW_NUMBER() OVER (PARTITION BY PanelNo ORDER BY LastUpdatedTimestamp DESC) AS rn
			FROM DisplayScreen
			WHERE PanelNo IS NOT NULL AND %s
		) recent
		WHERE rn <= 2`, displayScreenColumns, notWithdrawn)
	return collect(ctx, s, query, nil, func(rows pgx.Rows) (model.PanelRow, error) {
		var p model.PanelRow
		dest := competitorScanDest(&p.CompetitorRow)
		dest = append(dest, &p.RowNumber, &p.ScoreStatus,
			&p.Next.FirstName1, &p.Next.Surname1, &p.Next.Surname2, &p.Next.Club, &p.Next.Category,
			&p.Last.FirstName1, &p.Last.Surname1, &p.Last.Surname2, &p.Last.Club, &p.Last.Category)
		err := rows.Scan(dest...)
		return p, err
	})
}

func (s *PostgresStore) LatestRoundRankings(ctx context.Context) ([]model.RankingRow, error) {
	query := fmt.Sprintf(`SELECT c.Discipline, c.Category, r.RoundName, d.CompetitorId,
			d.FirstName1, d.FirstName2, d.Surname1, d.Surname2, d.DisplayClub,
			rt.RoundTotal, rt.RoundRank
		FROM Rounds r
		INNER JOIN Categories c ON c.CatId = r.CategoryId
		INNER JOIN DisplayScreen d ON d.CatId = r.CategoryId AND d.%s
		INNER JOIN RoundTotals rt ON rt.CompetitorId = d.CompetitorId AND rt.RoundName = r.RoundName
		WHERE r.SignedOff = 1
			AND r.RoundOrder = (SELECT MAX(prev.RoundOrder) FROM Rounds prev
				WHERE prev.CategoryId = r.CategoryId AND prev.SignedOff = 1)
		ORDER BY c.Discipline, c.Category, r.RoundName,
			(CASE WHEN rt.RoundRank IS NULL THEN 1 ELSE 0 END), rt.RoundRank`,
		notWithdrawn)
	return collect(ctx, s, query, nil, func(rows pgx.Rows) (model.RankingRow, error) {
		var r model.RankingRow
		err := rows.Scan(&r.Discipline, &r.Category, &r.RoundName, &r.CompetitorID,
			&r.FirstName1, &r.FirstName2, &r.Surname1, &r.Surname2, &r.DisplayClub,
			&r.RoundTotal, &r.RoundRank)
		return r, err
	})
}

func (s *PostgresStore) Categories(ctx context.Context, catID string) ([]model.Category, error) {
	query := `SELECT CatId, Discipline, Category, CompType, Display FROM Categories`
	var args []any
	if catID != "" {
		query += ` WHERE CatId = $1`
		args = []any{catID}
	}
	return collect(ctx, s, query, args, scanCategory)
}

func (s *PostgresStore) DisplayCategories(ctx context.Context) ([]model.Category, error) {
	query := `SELECT CatId, Discipline, Category, CompType, Display FROM Categories WHERE Display = 1`
	return collect(ctx, s, query, nil, scanCategory)
}

func scanCategory(rows pgx.Rows) (model.Category, error) {
	var c model.Category
	err := rows.Scan(&c.CatID, &c.Discipline, &c.Category, &c.CompType, &c.Display)
	return c, err
}

func (s *PostgresStore) Rounds(ctx context.Context, catID string) ([]model.Round, error) {
	query := `SELECT RoundId, CategoryId, RoundName, RoundOrder, SignedOff
		FROM Rounds WHERE CategoryId = $1 ORDER BY RoundOrder`
	return collect(ctx, s, query, []any{catID}, func(rows pgx.Rows) (model.Round, error) {
		var r model.Round
		err := rows.Scan(&r.RoundID, &r.CategoryID, &r.RoundName, &r.RoundOrder, &r.SignedOff)
		return r, err
	})
}

func (s *PostgresStore) CategoryRoundExercises(ctx context.Context, catID string) ([]model.CategoryRoundExercise, error) {
	query := `SELECT CategoryId, ExerciseNumber, RoundName
		FROM CategoryRoundExercises WHERE CategoryId = $1 ORDER BY ExerciseNumber`
	return collect(ctx, s, query, []any{catID}, scanCategoryRoundExercise)
}

func (s *PostgresStore) CategoryRoundExercise(ctx context.Context, catID string, exerciseNumber int) ([]model.CategoryRoundExercise, error) {
	query := `SELECT CategoryId, ExerciseNumber, RoundName
		FROM CategoryRoundExercises WHERE CategoryId = $1 AND ExerciseNumber = $2`
	return collect(ctx, s, query, []any{catID, exerciseNumber}, scanCategoryRoundExercise)
}

func scanCategoryRoundExercise(rows pgx.Rows) (model.CategoryRoundExercise, error) {
	var c model.CategoryRoundExercise
	err := rows.Scan(&c.CategoryID, &c.ExerciseNumber, &c.RoundName)
	return c, err
}

func (s *PostgresStore) ExerciseNumbers(ctx context.Context, catID string) ([]model.ExerciseNumberRow, error) {
	// The competitor who has progressed furthest defines the category's
	// exercise-number to round-name progression.
	query := `SELECT ExerciseNumber, RoundName FROM DisplayScreenRoundTotals
		WHERE CompetitorId IN (
			SELECT CompetitorId FROM DisplayScreenRoundTotals
			WHERE CatId = $1 ORDER BY ExerciseNumber DESC LIMIT 1
		)
		ORDER BY ExerciseNumber`
	return collect(ctx, s, query, []any{catID}, func(rows pgx.Rows) (model.ExerciseNumberRow, error) {
		var e model.ExerciseNumberRow
		err := rows.Scan(&e.ExerciseNumber, &e.RoundName)
		return e, err
	})
}

func (s *PostgresStore) CompetitorRanks(ctx context.Context, catID string, compType int) ([]model.CompetitorRankRow, error) {
	rankColumn := "CumulativeRank"
	if compType == 0 {
		rankColumn = "ZeroRank"
	}
	// DISTINCT and ORDER BY must agree, so the ordering column rides along in
	// the inner select and is dropped in the outer one.
	query := fmt.Sprintf(`SELECT CompetitorId, FirstName1, FirstName2, Surname1, Surname2,
			Nation, DisplayClub, ZeroRank, DisplayZeroRank, DisplayCumulativeRank
		FROM (
			SELECT DISTINCT CompetitorId, FirstName1, FirstName2, Surname1, Surname2,
				Nation, DisplayClub, ZeroRank, DisplayZeroRank, DisplayCumulativeRank, %[1]s
			FROM DisplayScreenRoundTotals WHERE CatId = $1
		) ranked
		ORDER BY %[1]s LIMIT 8`, rankColumn)
	return collect(ctx, s, query, []any{catID}, func(rows pgx.Rows) (model.CompetitorRankRow, error) {
		var r model.CompetitorRankRow
		err := rows.Scan(&r.CompetitorID, &r.FirstName1, &r.FirstName2, &r.Surname1, &r.Surname2,
			&r.Nation, &r.DisplayClub, &r.ZeroRank, &r.DisplayZeroRank, &r.DisplayCumulativeRank)
		return r, err
	})
}

func (s *PostgresStore) QualifyingStartList(ctx context.Context, catID string) ([]model.StartListCompetitor, error) {
	query := fmt.Sprintf(`SELECT CompetitorId, FirstName1, FirstName2, Surname1, Surname2, Nation, DisplayClub
		FROM (
			SELECT DISTINCT CompetitorId, FirstName1, FirstName2, Surname1, Surname2,
				Nation, DisplayClub, Q1Flight, Q1StartNo
			FROM DisplayScreen WHERE CatId = $1 AND %s
		) starters
		ORDER BY Q1Flight, Q1StartNo LIMIT 8`, notWithdrawn)
	return collect(ctx, s, query, []any{catID}, func(rows pgx.Rows) (model.StartListCompetitor, error) {
		var c model.StartListCompetitor
		err := rows.Scan(&c.CompetitorID, &c.FirstName1, &c.FirstName2, &c.Surname1, &c.Surname2,
			&c.Nation, &c.DisplayClub)
		return c, err
	})
}

func (s *PostgresStore) RoundStartList(ctx context.Context, catID, roundName string) ([]model.RoundStartEntry, error) {
	query := `SELECT rc.CompetitorId
		FROM RoundCompetitors rc
		INNER JOIN Rounds r ON rc.RoundId = r.RoundId
		WHERE r.CategoryId = $1 AND r.RoundName = $2
		ORDER BY rc.FlightId, rc.StartNo`
	return collect(ctx, s, query, []any{catID, roundName}, func(rows pgx.Rows) (model.RoundStartEntry, error) {
		var e model.RoundStartEntry
		err := rows.Scan(&e.CompetitorID)
		return e, err
	})
}

func (s *PostgresStore) RoundStartListCompetitors(ctx context.Context, catID, roundName string) ([]model.StartListCompetitor, error) {
	query := `SELECT c.FirstName1, c.FirstName2, c.Surname1, c.Surname2, c.DisplayClub
		FROM Competitors c
		INNER JOIN RoundCompetitors rc ON c.CompetitorId = rc.CompetitorId
		INNER JOIN Rounds r ON rc.RoundId = r.RoundId AND r.CategoryId = $1 AND r.RoundName = $2
		INNER JOIN Flights f ON f.FlightId = rc.FlightId
		ORDER BY f.FlightNumber, rc.StartNo`
	return collect(ctx, s, query, []any{catID, roundName}, func(rows pgx.Rows) (model.StartListCompetitor, error) {
		var c model.StartListCompetitor
		err := rows.Scan(&c.FirstName1, &c.FirstName2, &c.Surname1, &c.Surname2, &c.DisplayClub)
		return c, err
	})
}

func (s *PostgresStore) CompetitorRoundTotals(ctx context.Context, competitorID int) ([]model.RoundTotalDetailRow, error) {
	query := `SELECT DISTINCT CompetitorId, CatId, ExerciseNumber, RoundName, RoundTotal, RoundRank
		FROM DisplayScreenRoundTotals
		WHERE CompetitorId = $1
		ORDER BY ExerciseNumber`
	return collect(ctx, s, query, []any{competitorID}, func(rows pgx.Rows) (model.RoundTotalDetailRow, error) {
		var r model.RoundTotalDetailRow
		err := rows.Scan(&r.CompetitorID, &r.CatID, &r.ExerciseNumber, &r.RoundName, &r.RoundTotal, &r.RoundRank)
		return r, err
	})
}

func (s *PostgresStore) StartListRounds(ctx context.Context) ([]model.StartListRound, error) {
	// A round's start list goes up once the round before it is signed off;
	// first rounds are always up.
	query := `SELECT r.CategoryId, r.RoundName, c.Discipline, c.Category
		FROM Rounds r
		INNER JOIN Categories c ON r.CategoryId = c.CatId
		WHERE r.RoundOrder = 1
			OR (r.RoundOrder > 1 AND EXISTS (
				SELECT 1 FROM Rounds prev
				WHERE prev.CategoryId = r.CategoryId
					AND prev.RoundOrder = r.RoundOrder - 1
					AND prev.SignedOff = 1))`
	return collect(ctx, s, query, nil, func(rows pgx.Rows) (model.StartListRound, error) {
		var r model.StartListRound
		err := rows.Scan(&r.CategoryID, &r.RoundName, &r.Discipline, &r.Category)
		return r, err
	})
}

func (s *PostgresStore) PanelStatuses(ctx context.Context, panelNumber *int) ([]model.PanelStatus, error) {
	query := `SELECT PanelNo, Status, CatId, RoundName, LastUpdatedTimestamp FROM PanelStatus`
	var args []any
	if panelNumber != nil {
		query += ` WHERE PanelNo = $1`
		args = []any{*panelNumber}
	}
	return collect(ctx, s, query, args, func(rows pgx.Rows) (model.PanelStatus, error) {
		var p model.PanelStatus
		err := rows.Scan(&p.PanelNo, &p.Status, &p.CatID, &p.RoundName, &p.Updated)
		return p, err
	})
}

func (s *PostgresStore) EventInfo(ctx context.Context) ([]model.EventInfo, error) {
	query := `SELECT EventId, EventName, Venue, StartDate, EndDate FROM EventInfo`
	return collect(ctx, s, query, nil, func(rows pgx.Rows) (model.EventInfo, error) {
		var e model.EventInfo
		err := rows.Scan(&e.EventID, &e.EventName, &e.Venue, &e.StartDate, &e.EndDate)
		return e, err
	})
}
