// Package scoring is the pure computation core for round scoring: playing
// handicaps, stroke allocation, net scores, and the per-mode scorers
// (stroke play, Stableford, sindicato, team best/good-bad ball, match play).
// Every function is a stateless read of its arguments; nothing here mutates
// its inputs, blocks, or touches I/O.
package scoring

import (
	"math"

	roundtypes "github.com/sindicato-golf/rounds/app/modules/round/domain/types"
)

// standardSlope is the USGA neutral slope rating.
const standardSlope = 113

// PlayingHandicap converts a handicap index and tee slope into the integer
// playing handicap for the round, using half-away-from-zero rounding.
//
// percentage must be 100 or 75. The 75%-difference match formats do NOT pass
// 75 here: those are computed post hoc from full playing handicaps via
// MatchPlayDifferenceHandicaps. Conflating the two scalings is a known
// historical bug class, which is why they are separate operations.
func PlayingHandicap(handicapIndex float64, slope int, percentage int) int {
	hcp := handicapIndex * float64(slope) / standardSlope
	return roundHalfAway(hcp * float64(percentage) / 100)
}

// MatchPlayDifferenceHandicaps computes the 75%-of-difference allowances used
// by multi-player match formats: each player's allowance is 75% of the gap
// between their full playing handicap and the lowest in the field, rounded
// half away from zero. The lowest-handicap player always receives 0.
//
// Inputs must be full (100%) playing handicaps, never already-scaled values.
func MatchPlayDifferenceHandicaps(players []roundtypes.Player) map[string]int {
	allowances := make(map[string]int, len(players))
	if len(players) == 0 {
		return allowances
	}

	minHcp := players[0].PlayingHandicap
	for _, p := range players[1:] {
		if p.PlayingHandicap < minHcp {
			minHcp = p.PlayingHandicap
		}
	}

	for _, p := range players {
		allowances[p.ID] = roundHalfAway(float64(p.PlayingHandicap-minHcp) * 0.75)
	}
	return allowances
}

// StrokesReceived distributes a playing handicap across holes by stroke
// index: every hole receives hcp/18 strokes, and the remainder goes to the
// hardest holes (lowest stroke indices) first. Handicaps above 18 grant
// strokes on every hole; zero or negative handicaps grant none.
func StrokesReceived(playingHandicap, strokeIndex int) int {
	if playingHandicap <= 0 {
		return 0
	}
	base := playingHandicap / 18
	remainder := playingHandicap % 18
	if strokeIndex <= remainder {
		return base + 1
	}
	return base
}

// roundHalfAway rounds to the nearest integer with ties away from zero, on
// both positive and negative values. math.Round has exactly these semantics;
// the wrapper exists so the rounding rule is named at every call site that
// depends on it (notably the nine-hole match allowance halving).
func roundHalfAway(v float64) int {
	return int(math.Round(v))
}
