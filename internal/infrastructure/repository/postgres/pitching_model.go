package postgres

import (
	"database/sql"

	"github.com/Evowe/baseball-stats-api/internal/domain/pitching"
)

type pitchingTableModel struct {
	PlayerID  string `db:"player_id"`
	FirstName string `db:"first_name"`
	LastName  string `db:"last_name"`

	Year     int    `db:"year"`
	TeamID   string `db:"team_id"`
	TeamName string `db:"team_name"`

	Games            sql.NullInt64 `db:"games"`
	GamesStarted     sql.NullInt64 `db:"games_started"`
	CompleteGames    sql.NullInt64 `db:"complete_games"`
	Shutouts         sql.NullInt64 `db:"shutouts"`
	Wins             sql.NullInt64 `db:"wins"`
	Losses           sql.NullInt64 `db:"losses"`
	Saves            sql.NullInt64 `db:"saves"`
	OutsPitched      sql.NullInt64 `db:"outs_pitched"`
	Hits             sql.NullInt64 `db:"hits"`
	Runs             sql.NullInt64 `db:"runs"`
	EarnedRuns       sql.NullInt64 `db:"earned_runs"`
	Walks            sql.NullInt64 `db:"walks"`
	IntentionalWalks sql.NullInt64 `db:"intentional_walks"`
	HitByPitch       sql.NullInt64 `db:"hit_by_pitch"`
	Strikeouts       sql.NullInt64 `db:"strikeouts"`
	HomeRuns         sql.NullInt64 `db:"home_runs"`
	WildPitches      sql.NullInt64 `db:"wild_pitches"`
	Balks            sql.NullInt64 `db:"balks"`
	BattersFaced     sql.NullInt64 `db:"batters_faced"`
	GamesFinished    sql.NullInt64 `db:"games_finished"`
	SacrificeHits    sql.NullInt64 `db:"sacrifice_hits"`
	SacrificeFlies   sql.NullInt64 `db:"sacrifice_flies"`
	GroundedIntoDP   sql.NullInt64 `db:"gdp"`

	ERA           sql.NullFloat64 `db:"era"`
	OppBattingAvg sql.NullFloat64 `db:"opp_batting_avg"`

	HofYear sql.NullInt64 `db:"hof_year"`
}

var pitchingStatColumns = []string{
	"pi.p_G AS games",
	"pi.p_GS AS games_started",
	"pi.p_CG AS complete_games",
	"pi.p_SHO AS shutouts",
	"pi.p_W AS wins",
	"pi.p_L AS losses",
	"pi.p_SV AS saves",
	"pi.p_IPOuts AS outs_pitched",
	"pi.p_H AS hits",
	"pi.p_R AS runs",
	"pi.p_ER AS earned_runs",
	"pi.p_BB AS walks",
	"pi.p_IBB AS intentional_walks",
	"pi.p_HBP AS hit_by_pitch",
	"pi.p_SO AS strikeouts",
	"pi.p_HR AS home_runs",
	"pi.p_WP AS wild_pitches",
	"pi.p_BK AS balks",
	"pi.p_BFP AS batters_faced",
	"pi.p_GF AS games_finished",
	"pi.p_SH AS sacrifice_hits",
	"pi.p_SF AS sacrifice_flies",
	"pi.p_GIDP AS gdp",
	"pi.p_ERA AS era",
	"pi.p_BAOpp AS opp_batting_avg",
}

func (m pitchingTableModel) toDomain() pitching.SeasonLine {
	return pitching.SeasonLine{
		PlayerID:  m.PlayerID,
		FirstName: m.FirstName,
		LastName:  m.LastName,

		Year:     m.Year,
		TeamID:   m.TeamID,
		TeamName: m.TeamName,

		Games:            nullInt(m.Games),
		GamesStarted:     nullInt(m.GamesStarted),
		CompleteGames:    nullInt(m.CompleteGames),
		Shutouts:         nullInt(m.Shutouts),
		Wins:             nullInt(m.Wins),
		Losses:           nullInt(m.Losses),
		Saves:            nullInt(m.Saves),
		OutsPitched:      nullInt(m.OutsPitched),
		Hits:             nullInt(m.Hits),
		Runs:             nullInt(m.Runs),
		EarnedRuns:       nullInt(m.EarnedRuns),
		Walks:            nullInt(m.Walks),
		IntentionalWalks: nullInt(m.IntentionalWalks),
		HitByPitch:       nullInt(m.HitByPitch),
		Strikeouts:       nullInt(m.Strikeouts),
		HomeRuns:         nullInt(m.HomeRuns),
		WildPitches:      nullInt(m.WildPitches),
		Balks:            nullInt(m.Balks),
		BattersFaced:     nullInt(m.BattersFaced),
		GamesFinished:    nullInt(m.GamesFinished),
		SacrificeHits:    nullInt(m.SacrificeHits),
		SacrificeFlies:   nullInt(m.SacrificeFlies),
		GroundedIntoDP:   nullInt(m.GroundedIntoDP),

		ERA:           nullFloat(m.ERA),
		OppBattingAvg: nullFloat(m.OppBattingAvg),

		HallOfFame:     m.HofYear.Valid,
		HallOfFameYear: nullIntPtr(m.HofYear),
	}
}
