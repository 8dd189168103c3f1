package postgres

import (
	"context"
	"database/sql"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/Evowe/baseball-stats-api/internal/domain/people"
	qb "github.com/Evowe/baseball-stats-api/internal/platform/querybuilder"
)

type PeopleRepository struct {
	db *sqlx.DB
}

func NewPeopleRepository(db *sqlx.DB) *PeopleRepository {
	return &PeopleRepository{db: db}
}

type personTableModel struct {
	PlayerID  string        `db:"player_id"`
	FirstName string        `db:"first_name"`
	LastName  string        `db:"last_name"`
	BirthYear sql.NullInt64 `db:"birth_year"`
	DeathYear sql.NullInt64 `db:"death_year"`
}

func (r *PeopleRepository) GetByID(ctx context.Context, playerID string) (people.Player, bool, error) {
	query, args, err := qb.Select(
		"playerID AS player_id",
		"nameFirst AS first_name",
		"nameLast AS last_name",
		"birthYear AS birth_year",
		"deathYear AS death_year",
	).From("people").
		Where(qb.Eq("playerID", playerID)).
		ToSQL()
	if err != nil {
		return people.Player{}, false, errors.Wrap(err, "build select person query")
	}

	var row personTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return people.Player{}, false, nil
		}
		return people.Player{}, false, errors.Wrap(err, "select person")
	}

	return people.Player{
		ID:        row.PlayerID,
		FirstName: row.FirstName,
		LastName:  row.LastName,
		BirthYear: nullIntPtr(row.BirthYear),
		DeathYear: nullIntPtr(row.DeathYear),
	}, true, nil
}

// Suggest matches a fragment against first name, last name, or the full
// "first last" form, ordered by name.
func (r *PeopleRepository) Suggest(ctx context.Context, fragment string, limit int) ([]people.Suggestion, error) {
	query, args, err := qb.Select(
		"playerID AS player_id",
		"nameFirst AS first_name",
		"nameLast AS last_name",
	).From("people").
		Where(qb.Or(
			qb.Like("nameFirst", fragment),
			qb.Like("nameLast", fragment),
			qb.Like("CONCAT(nameFirst, ' ', nameLast)", fragment),
		)).
		OrderBy("nameFirst", "nameLast").
		Limit(limit).
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build suggest players query")
	}

	var rows []personTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrap(err, "select player suggestions")
	}

	out := make([]people.Suggestion, 0, len(rows))
	for _, row := range rows {
		out = append(out, people.Suggestion{
			ID:   row.PlayerID,
			Name: row.FirstName + " " + row.LastName,
		})
	}

	return out, nil
}
