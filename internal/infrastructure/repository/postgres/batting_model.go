package postgres

import (
	"database/sql"

	"github.com/Evowe/baseball-stats-api/internal/domain/batting"
)

type battingTableModel struct {
	PlayerID  string `db:"player_id"`
	FirstName string `db:"first_name"`
	LastName  string `db:"last_name"`

	Year     int    `db:"year"`
	TeamID   string `db:"team_id"`
	TeamName string `db:"team_name"`

	Games            sql.NullInt64 `db:"games"`
	Hits             sql.NullInt64 `db:"hits"`
	AtBats           sql.NullInt64 `db:"at_bats"`
	Runs             sql.NullInt64 `db:"runs"`
	RBIs             sql.NullInt64 `db:"rbis"`
	HomeRuns         sql.NullInt64 `db:"home_runs"`
	StolenBases      sql.NullInt64 `db:"stolen_bases"`
	CaughtStealing   sql.NullInt64 `db:"caught_stealing"`
	Doubles          sql.NullInt64 `db:"doubles"`
	Triples          sql.NullInt64 `db:"triples"`
	Walks            sql.NullInt64 `db:"walks"`
	IntentionalWalks sql.NullInt64 `db:"intentional_walks"`
	HitByPitch       sql.NullInt64 `db:"hit_by_pitch"`
	SacrificeHits    sql.NullInt64 `db:"sacrifice_hits"`
	SacrificeFlies   sql.NullInt64 `db:"sacrifice_flies"`
	Strikeouts       sql.NullInt64 `db:"strikeouts"`
	GroundedIntoDP   sql.NullInt64 `db:"gdp"`

	HofYear sql.NullInt64 `db:"hof_year"`
}

// battingStatColumns are the raw counting columns shared by the
// team-season and career queries.
var battingStatColumns = []string{
	"b.b_G AS games",
	"b.b_H AS hits",
	"b.b_AB AS at_bats",
	"b.b_R AS runs",
	"b.b_RBI AS rbis",
	"b.b_HR AS home_runs",
	"b.b_SB AS stolen_bases",
	"b.b_CS AS caught_stealing",
	"b.b_2B AS doubles",
	"b.b_3B AS triples",
	"b.b_BB AS walks",
	"b.b_IBB AS intentional_walks",
	"b.b_HBP AS hit_by_pitch",
	"b.b_SH AS sacrifice_hits",
	"b.b_SF AS sacrifice_flies",
	"b.b_SO AS strikeouts",
	"b.b_GIDP AS gdp",
}

func (m battingTableModel) toDomain() batting.SeasonLine {
	return batting.SeasonLine{
		PlayerID:  m.PlayerID,
		FirstName: m.FirstName,
		LastName:  m.LastName,

		Year:     m.Year,
		TeamID:   m.TeamID,
		TeamName: m.TeamName,

		Games:            nullInt(m.Games),
		Hits:             nullInt(m.Hits),
		AtBats:           nullInt(m.AtBats),
		Runs:             nullInt(m.Runs),
		RBIs:             nullInt(m.RBIs),
		HomeRuns:         nullInt(m.HomeRuns),
		StolenBases:      nullInt(m.StolenBases),
		CaughtStealing:   nullInt(m.CaughtStealing),
		Doubles:          nullInt(m.Doubles),
		Triples:          nullInt(m.Triples),
		Walks:            nullInt(m.Walks),
		IntentionalWalks: nullInt(m.IntentionalWalks),
		HitByPitch:       nullInt(m.HitByPitch),
		SacrificeHits:    nullInt(m.SacrificeHits),
		SacrificeFlies:   nullInt(m.SacrificeFlies),
		Strikeouts:       nullInt(m.Strikeouts),
		GroundedIntoDP:   nullInt(m.GroundedIntoDP),

		HallOfFame:     m.HofYear.Valid,
		HallOfFameYear: nullIntPtr(m.HofYear),
	}
}
