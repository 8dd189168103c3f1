package postgres

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/Evowe/baseball-stats-api/internal/domain/teams"
	qb "github.com/Evowe/baseball-stats-api/internal/platform/querybuilder"
)

type TeamsRepository struct {
	db *sqlx.DB
}

func NewTeamsRepository(db *sqlx.DB) *TeamsRepository {
	return &TeamsRepository{db: db}
}

type teamSuggestionModel struct {
	TeamID   string `db:"team_id"`
	TeamName string `db:"team_name"`
}

// Suggest matches a fragment against the team display name or the team
// identifier. DISTINCT collapses the one-row-per-season fan-out.
func (r *TeamsRepository) Suggest(ctx context.Context, fragment string, limit int) ([]teams.Suggestion, error) {
	query, args, err := qb.Select(
		"team_name",
		"teamID AS team_id",
	).Distinct().
		From("teams").
		Where(qb.Or(
			qb.Like("team_name", fragment),
			qb.Like("teamID", fragment),
		)).
		OrderBy("team_name").
		Limit(limit).
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build suggest teams query")
	}

	var rows []teamSuggestionModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrap(err, "select team suggestions")
	}

	out := make([]teams.Suggestion, 0, len(rows))
	for _, row := range rows {
		out = append(out, teams.Suggestion{
			ID:   row.TeamID,
			Name: row.TeamName,
		})
	}

	return out, nil
}
