package fielding

import "github.com/Evowe/baseball-stats-api/internal/domain/sabermetrics"

// SeasonLine is one player's fielding line for one team-season at one
// position; a utility player has several lines per season.
type SeasonLine struct {
	PlayerID  string
	FirstName string
	LastName  string

	Year     int
	TeamID   string
	TeamName string

	Position     string
	Games        int
	GamesStarted int
	InningsOuts  int
	Putouts      int
	Assists      int
	Errors       int
	DoublePlays  int
	PassedBalls  int

	PutoutsPerGame *float64
	FieldingPct    float64

	HallOfFame     bool
	HallOfFameYear *int
}

// Derive fills the fielding rate stats. Fielding percentage reports 0
// for a player with no chances; putouts-per-game is undefined without
// games played.
func (l *SeasonLine) Derive() {
	l.PutoutsPerGame = sabermetrics.PutoutsPerGame(l.Putouts, l.Games)
	l.FieldingPct = sabermetrics.FieldingPct(l.Putouts, l.Assists, l.Errors)
}
