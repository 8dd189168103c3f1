package pitching

import "github.com/Evowe/baseball-stats-api/internal/domain/sabermetrics"

// SeasonLine is one player's pitching line for one team-season. See
// batting.SeasonLine for the team-report/career-report field split.
type SeasonLine struct {
	PlayerID  string
	FirstName string
	LastName  string

	Year     int
	TeamID   string
	TeamName string

	Games            int
	GamesStarted     int
	CompleteGames    int
	Shutouts         int
	Wins             int
	Losses           int
	Saves            int
	OutsPitched      int
	Hits             int
	Runs             int
	EarnedRuns       int
	Walks            int
	IntentionalWalks int
	HitByPitch       int
	Strikeouts       int
	HomeRuns         int
	WildPitches      int
	Balks            int
	BattersFaced     int
	GamesFinished    int
	SacrificeHits    int
	SacrificeFlies   int
	GroundedIntoDP   int

	// ERA and opponent batting average are stored values, not derived.
	ERA            float64
	OppBattingAvg  float64
	InningsPitched float64
	WHIP           *float64

	HallOfFame     bool
	HallOfFameYear *int
}

// Derive fills innings pitched and WHIP. WHIP divides by the rounded
// innings value, so a pitcher with fewer than two outs recorded has an
// undefined WHIP.
func (l *SeasonLine) Derive() {
	l.InningsPitched = sabermetrics.InningsPitched(l.OutsPitched)
	l.WHIP = sabermetrics.WHIP(l.Hits, l.Walks, l.OutsPitched)
}
