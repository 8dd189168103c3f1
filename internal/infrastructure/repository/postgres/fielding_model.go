package postgres

import (
	"database/sql"

	"github.com/Evowe/baseball-stats-api/internal/domain/fielding"
)

type fieldingTableModel struct {
	PlayerID  string `db:"player_id"`
	FirstName string `db:"first_name"`
	LastName  string `db:"last_name"`

	Year     int    `db:"year"`
	TeamID   string `db:"team_id"`
	TeamName string `db:"team_name"`

	Position     sql.NullString `db:"position"`
	Games        sql.NullInt64  `db:"games"`
	GamesStarted sql.NullInt64  `db:"games_started"`
	InningsOuts  sql.NullInt64  `db:"innings_outs"`
	Putouts      sql.NullInt64  `db:"putouts"`
	Assists      sql.NullInt64  `db:"assists"`
	Errors       sql.NullInt64  `db:"errors"`
	DoublePlays  sql.NullInt64  `db:"double_plays"`
	PassedBalls  sql.NullInt64  `db:"passed_balls"`

	HofYear sql.NullInt64 `db:"hof_year"`
}

var fieldingStatColumns = []string{
	"f.position AS position",
	"f.f_G AS games",
	"f.f_GS AS games_started",
	"f.f_InnOuts AS innings_outs",
	"f.f_PO AS putouts",
	"f.f_A AS assists",
	"f.f_E AS errors",
	"f.f_DP AS double_plays",
	"f.f_PB AS passed_balls",
}

func (m fieldingTableModel) toDomain() fielding.SeasonLine {
	return fielding.SeasonLine{
		PlayerID:  m.PlayerID,
		FirstName: m.FirstName,
		LastName:  m.LastName,

		Year:     m.Year,
		TeamID:   m.TeamID,
		TeamName: m.TeamName,

		Position:     nullString(m.Position),
		Games:        nullInt(m.Games),
		GamesStarted: nullInt(m.GamesStarted),
		InningsOuts:  nullInt(m.InningsOuts),
		Putouts:      nullInt(m.Putouts),
		Assists:      nullInt(m.Assists),
		Errors:       nullInt(m.Errors),
		DoublePlays:  nullInt(m.DoublePlays),
		PassedBalls:  nullInt(m.PassedBalls),

		HallOfFame:     m.HofYear.Valid,
		HallOfFameYear: nullIntPtr(m.HofYear),
	}
}
