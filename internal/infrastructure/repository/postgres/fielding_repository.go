package postgres

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/Evowe/baseball-stats-api/internal/domain/fielding"
	qb "github.com/Evowe/baseball-stats-api/internal/platform/querybuilder"
)

type FieldingRepository struct {
	db *sqlx.DB
}

func NewFieldingRepository(db *sqlx.DB) *FieldingRepository {
	return &FieldingRepository{db: db}
}

// ListByTeamSeason returns the fielding lines for the matched team in
// the given year, most games played first. A player appears once per
// position fielded.
func (r *FieldingRepository) ListByTeamSeason(ctx context.Context, teamFragment string, year int) ([]fielding.SeasonLine, error) {
	columns := append([]string{
		"p.playerID AS player_id",
		"p.nameFirst AS first_name",
		"p.nameLast AS last_name",
		"f.yearId AS year",
		"t.teamID AS team_id",
		"t.team_name AS team_name",
	}, fieldingStatColumns...)
	columns = append(columns, "hf.yearID AS hof_year")

	query, args, err := qb.Select(columns...).
		From("fielding f").
		Join("people p ON f.playerID = p.playerID").
		Join("teams t ON f.teamID = t.teamID AND f.yearId = t.yearID").
		LeftJoin("halloffame hf ON p.playerID = hf.playerID AND hf.inducted = 'Y'").
		Where(
			qb.Or(
				qb.Like("t.team_name", teamFragment),
				qb.Like("t.teamID", teamFragment),
			),
			qb.Eq("f.yearId", year),
		).
		OrderBy("f.f_G DESC").
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build team fielding query")
	}

	var rows []fieldingTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrap(err, "select team fielding lines")
	}

	return fieldingLines(rows), nil
}

// ListCareer returns one fielding line per season and position, newest
// season first.
func (r *FieldingRepository) ListCareer(ctx context.Context, playerID string) ([]fielding.SeasonLine, error) {
	columns := append([]string{
		"f.playerID AS player_id",
		"f.yearId AS year",
		"t.teamID AS team_id",
		"t.team_name AS team_name",
	}, fieldingStatColumns...)

	query, args, err := qb.Select(columns...).
		From("fielding f").
		Join("teams t ON f.teamID = t.teamID AND f.yearId = t.yearID").
		Where(qb.Eq("f.playerID", playerID)).
		OrderBy("f.yearId DESC").
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build career fielding query")
	}

	var rows []fieldingTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrap(err, "select career fielding lines")
	}

	return fieldingLines(rows), nil
}

func fieldingLines(rows []fieldingTableModel) []fielding.SeasonLine {
	out := make([]fielding.SeasonLine, 0, len(rows))
	for _, row := range rows {
		line := row.toDomain()
		line.Derive()
		out = append(out, line)
	}
	return out
}
