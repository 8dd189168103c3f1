package postgres

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/Evowe/baseball-stats-api/internal/domain/batting"
	qb "github.com/Evowe/baseball-stats-api/internal/platform/querybuilder"
)

type BattingRepository struct {
	db *sqlx.DB
}

func NewBattingRepository(db *sqlx.DB) *BattingRepository {
	return &BattingRepository{db: db}
}

// ListByTeamSeason returns the batting lines for every player on the
// matched team in the given year, heaviest hitters (most at-bats) first.
// The hall-of-fame join only keeps inducted rows, so a NULL hof_year
// means the player is not in the hall.
func (r *BattingRepository) ListByTeamSeason(ctx context.Context, teamFragment string, year int) ([]batting.SeasonLine, error) {
	columns := append([]string{
		"p.playerID AS player_id",
		"p.nameFirst AS first_name",
		"p.nameLast AS last_name",
		"b.yearId AS year",
		"t.teamID AS team_id",
		"t.team_name AS team_name",
	}, battingStatColumns...)
	columns = append(columns, "hf.yearID AS hof_year")

	query, args, err := qb.Select(columns...).
		From("batting b").
		Join("people p ON b.playerID = p.playerID").
		Join("teams t ON b.teamID = t.teamID AND b.yearId = t.yearID").
		LeftJoin("halloffame hf ON p.playerID = hf.playerID AND hf.inducted = 'Y'").
		Where(
			qb.Or(
				qb.Like("t.team_name", teamFragment),
				qb.Like("t.teamID", teamFragment),
			),
			qb.Eq("b.yearId", year),
		).
		OrderBy("b.b_AB DESC").
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build team batting query")
	}

	var rows []battingTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrap(err, "select team batting lines")
	}

	return battingLines(rows), nil
}

// ListCareer returns one batting line per season played, newest first.
func (r *BattingRepository) ListCareer(ctx context.Context, playerID string) ([]batting.SeasonLine, error) {
	columns := append([]string{
		"b.playerID AS player_id",
		"b.yearId AS year",
		"t.teamID AS team_id",
		"t.team_name AS team_name",
	}, battingStatColumns...)

	query, args, err := qb.Select(columns...).
		From("batting b").
		Join("teams t ON b.teamID = t.teamID AND b.yearId = t.yearID").
		Where(qb.Eq("b.playerID", playerID)).
		OrderBy("b.yearId DESC").
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build career batting query")
	}

	var rows []battingTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrap(err, "select career batting lines")
	}

	return battingLines(rows), nil
}

func battingLines(rows []battingTableModel) []batting.SeasonLine {
	out := make([]batting.SeasonLine, 0, len(rows))
	for _, row := range rows {
		line := row.toDomain()
		line.Derive()
		out = append(out, line)
	}
	return out
}
