package postgres

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/Evowe/baseball-stats-api/internal/domain/pitching"
	qb "github.com/Evowe/baseball-stats-api/internal/platform/querybuilder"
)

type PitchingRepository struct {
	db *sqlx.DB
}

func NewPitchingRepository(db *sqlx.DB) *PitchingRepository {
	return &PitchingRepository{db: db}
}

// ListByTeamSeason returns the pitching lines for the matched team in
// the given year, ordered by workload (outs pitched) descending.
func (r *PitchingRepository) ListByTeamSeason(ctx context.Context, teamFragment string, year int) ([]pitching.SeasonLine, error) {
	columns := append([]string{
		"p.playerID AS player_id",
		"p.nameFirst AS first_name",
		"p.nameLast AS last_name",
		"pi.yearId AS year",
		"t.teamID AS team_id",
		"t.team_name AS team_name",
	}, pitchingStatColumns...)
	columns = append(columns, "hf.yearID AS hof_year")

	query, args, err := qb.Select(columns...).
		From("pitching pi").
		Join("people p ON pi.playerID = p.playerID").
		Join("teams t ON pi.teamID = t.teamID AND pi.yearId = t.yearID").
		LeftJoin("halloffame hf ON p.playerID = hf.playerID AND hf.inducted = 'Y'").
		Where(
			qb.Or(
				qb.Like("t.team_name", teamFragment),
				qb.Like("t.teamID", teamFragment),
			),
			qb.Eq("pi.yearId", year),
		).
		OrderBy("pi.p_IPOuts DESC").
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build team pitching query")
	}

	var rows []pitchingTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrap(err, "select team pitching lines")
	}

	return pitchingLines(rows), nil
}

// ListCareer returns one pitching line per season pitched, newest first.
func (r *PitchingRepository) ListCareer(ctx context.Context, playerID string) ([]pitching.SeasonLine, error) {
	columns := append([]string{
		"pi.playerID AS player_id",
		"pi.yearId AS year",
		"t.teamID AS team_id",
		"t.team_name AS team_name",
	}, pitchingStatColumns...)

	query, args, err := qb.Select(columns...).
		From("pitching pi").
		Join("teams t ON pi.teamID = t.teamID AND pi.yearId = t.yearID").
		Where(qb.Eq("pi.playerID", playerID)).
		OrderBy("pi.yearId DESC").
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build career pitching query")
	}

	var rows []pitchingTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrap(err, "select career pitching lines")
	}

	return pitchingLines(rows), nil
}

func pitchingLines(rows []pitchingTableModel) []pitching.SeasonLine {
	out := make([]pitching.SeasonLine, 0, len(rows))
	for _, row := range rows {
		line := row.toDomain()
		line.Derive()
		out = append(out, line)
	}
	return out
}
