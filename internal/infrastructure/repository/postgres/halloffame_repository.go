package postgres

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/Evowe/baseball-stats-api/internal/domain/halloffame"
	qb "github.com/Evowe/baseball-stats-api/internal/platform/querybuilder"
)

type HallOfFameRepository struct {
	db *sqlx.DB
}

func NewHallOfFameRepository(db *sqlx.DB) *HallOfFameRepository {
	return &HallOfFameRepository{db: db}
}

type inductionTableModel struct {
	PlayerID string `db:"player_id"`
	Year     int    `db:"year"`
}

// GetInduction looks up the player's induction row. The hall-of-fame
// table holds one row per ballot appearance; only the inducted row
// counts.
func (r *HallOfFameRepository) GetInduction(ctx context.Context, playerID string) (halloffame.Induction, bool, error) {
	query, args, err := qb.Select(
		"playerID AS player_id",
		"yearID AS year",
	).From("halloffame").
		Where(
			qb.Eq("playerID", playerID),
			qb.Expr("inducted = ?", "Y"),
		).
		Limit(1).
		ToSQL()
	if err != nil {
		return halloffame.Induction{}, false, errors.Wrap(err, "build induction query")
	}

	var row inductionTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return halloffame.Induction{}, false, nil
		}
		return halloffame.Induction{}, false, errors.Wrap(err, "select induction")
	}

	return halloffame.Induction{
		PlayerID: row.PlayerID,
		Year:     row.Year,
	}, true, nil
}
