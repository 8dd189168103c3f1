// Package sabermetrics derives rate statistics from raw counting stats.
//
// Every function treats a zero denominator as "undefined" and returns a
// nil *float64 for it, with two exceptions carried over from the stat
// conventions: fielding percentage and (by way of its rendering)
// putouts-per-game. Callers are expected to have already coalesced
// missing counting stats to zero.
package sabermetrics

import "math"

const (
	ratePrecision    = 3
	perGamePrecision = 2
	inningsPrecision = 1
)

// BattingAverage is H/AB.
func BattingAverage(hits, atBats int) *float64 {
	return ratio(float64(hits), float64(atBats), ratePrecision)
}

// OnBasePct is (H+BB+HBP)/(AB+BB+HBP+SF).
func OnBasePct(hits, walks, hitByPitch, atBats, sacFlies int) *float64 {
	num := float64(hits + walks + hitByPitch)
	den := float64(atBats + walks + hitByPitch + sacFlies)
	return ratio(num, den, ratePrecision)
}

// SluggingPct is total bases over at-bats.
func SluggingPct(hits, doubles, triples, homeRuns, atBats int) *float64 {
	totalBases := (hits - homeRuns) + 2*doubles + 3*triples + 4*homeRuns
	return ratio(float64(totalBases), float64(atBats), ratePrecision)
}

// IsolatedPower is the difference of the rounded slugging and batting
// average values. Undefined when either input is undefined.
func IsolatedPower(hits, doubles, triples, homeRuns, atBats int) *float64 {
	slg := SluggingPct(hits, doubles, triples, homeRuns, atBats)
	avg := BattingAverage(hits, atBats)
	if slg == nil || avg == nil {
		return nil
	}
	iso := roundTo(*slg-*avg, ratePrecision)
	return &iso
}

// BABIP is (H-HR)/(AB-SO-HR+SF).
func BABIP(hits, homeRuns, atBats, strikeouts, sacFlies int) *float64 {
	num := float64(hits - homeRuns)
	den := float64(atBats - strikeouts - homeRuns + sacFlies)
	return ratio(num, den, ratePrecision)
}

// InningsPitched converts outs recorded to innings, rounded to one
// decimal place.
func InningsPitched(outsPitched int) float64 {
	return roundTo(float64(outsPitched)/3, inningsPrecision)
}

// WHIP is (H+BB) per inning pitched. The denominator is the innings
// value already rounded to one decimal, not the raw outs/3 quotient;
// that matches how the stat has always been reported here.
func WHIP(hitsAllowed, walksAllowed, outsPitched int) *float64 {
	innings := InningsPitched(outsPitched)
	return ratio(float64(hitsAllowed+walksAllowed), innings, ratePrecision)
}

// FieldingPct is (PO+A)/(PO+A+E). Unlike the batting and pitching rate
// stats it reports 0 for a player with no chances.
func FieldingPct(putouts, assists, errors int) float64 {
	chances := putouts + assists + errors
	if chances <= 0 {
		return 0
	}
	return roundTo(float64(putouts+assists)/float64(chances), ratePrecision)
}

// PutoutsPerGame is PO/G rounded to two decimals.
func PutoutsPerGame(putouts, games int) *float64 {
	return ratio(float64(putouts), float64(games), perGamePrecision)
}

func ratio(num, den float64, precision int) *float64 {
	if den <= 0 {
		return nil
	}
	v := roundTo(num/den, precision)
	return &v
}

func roundTo(v float64, precision int) float64 {
	p := math.Pow10(precision)
	return math.Round(v*p) / p
}
