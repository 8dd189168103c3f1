package batting

import "github.com/Evowe/baseball-stats-api/internal/domain/sabermetrics"

// SeasonLine is one player's batting line for one team-season. A
// mid-season trade produces one line per team. Counting stats missing
// from the source arrive already coalesced to zero.
//
// Team-season report rows carry the player identity fields; career
// report rows carry Year/TeamID/TeamName instead. Derived rate fields
// are filled by Derive, never read from storage.
type SeasonLine struct {
	PlayerID  string
	FirstName string
	LastName  string

	Year     int
	TeamID   string
	TeamName string

	Games            int
	Hits             int
	AtBats           int
	Runs             int
	RBIs             int
	HomeRuns         int
	StolenBases      int
	CaughtStealing   int
	Doubles          int
	Triples          int
	Walks            int
	IntentionalWalks int
	HitByPitch       int
	SacrificeHits    int
	SacrificeFlies   int
	Strikeouts       int
	GroundedIntoDP   int

	PlateAppearances int
	BattingAverage   *float64
	OnBasePct        *float64
	SluggingPct      *float64
	IsolatedPower    *float64
	BABIP            *float64

	HallOfFame     bool
	HallOfFameYear *int
}

// Derive fills plate appearances and the rate stats from the counting
// stats. Undefined rates (zero at-bats) stay nil.
func (l *SeasonLine) Derive() {
	l.PlateAppearances = l.AtBats + l.Walks + l.HitByPitch + l.SacrificeHits + l.SacrificeFlies
	l.BattingAverage = sabermetrics.BattingAverage(l.Hits, l.AtBats)
	l.OnBasePct = sabermetrics.OnBasePct(l.Hits, l.Walks, l.HitByPitch, l.AtBats, l.SacrificeFlies)
	l.SluggingPct = sabermetrics.SluggingPct(l.Hits, l.Doubles, l.Triples, l.HomeRuns, l.AtBats)
	l.IsolatedPower = sabermetrics.IsolatedPower(l.Hits, l.Doubles, l.Triples, l.HomeRuns, l.AtBats)
	l.BABIP = sabermetrics.BABIP(l.Hits, l.HomeRuns, l.AtBats, l.Strikeouts, l.SacrificeFlies)
}
