package scoring

import (
	"fmt"

	coursetypes "github.com/sindicato-golf/rounds/app/modules/course/domain/types"
	roundtypes "github.com/sindicato-golf/rounds/app/modules/round/domain/types"
)

// MatchPlayAllowance is the signed handicap difference applied in a
// head-to-head match: player 2's playing handicap minus player 1's. For a
// nine-hole match the difference is halved with half-away-from-zero rounding
// before strokes are applied; the rounding direction decides which player
// receives the odd stroke, so it must not be truncation.
//
// Both arguments are full (100%) playing handicaps.
func MatchPlayAllowance(playingHandicap1, playingHandicap2 int, nineHoles bool) int {
	diff := playingHandicap2 - playingHandicap1
	if nineHoles {
		diff = roundHalfAway(float64(diff) / 2)
	}
	return diff
}

// MatchPlayHoleResult compares one hole from player 1's perspective: +1 when
// player 1 wins the hole, -1 when player 2 wins, 0 when halved.
//
// The lower-handicap player plays scratch; the other receives strokes from
// the absolute allowance by stroke index. Net scores here always derive from
// the allowance, never from the players' own full playing handicaps.
func MatchPlayHoleResult(hole coursetypes.HoleData, score1, score2 roundtypes.Score, allowance int) int {
	net1 := score1.Strokes
	net2 := score2.Strokes
	if allowance > 0 {
		net2 -= StrokesReceived(allowance, hole.StrokeIndex)
	} else if allowance < 0 {
		net1 -= StrokesReceived(-allowance, hole.StrokeIndex)
	}

	switch {
	case net1 < net2:
		return 1
	case net1 > net2:
		return -1
	default:
		return 0
	}
}

// MatchState is the cumulative state of a head-to-head match.
type MatchState struct {
	// Score is the sum of signed hole results from player 1's perspective.
	Score          int  `json:"score"`
	HolesPlayed    int  `json:"holes_played"`
	HolesRemaining int  `json:"holes_remaining"`
	// Decided is true once the trailing player cannot equalize even by
	// winning every remaining hole.
	Decided bool `json:"decided"`
	// Winner is +1 for player 1, -1 for player 2, 0 while undecided or tied.
	Winner int `json:"winner"`
}

// MatchPlayState replays a match over the given holes, which must be supplied
// in play order: which holes count as played-so-far depends on the sequence
// of completion, not just the set. Holes that either player has not completed
// are not counted as played. totalHoles is the match length (9 or 18).
//
// The state reflects everything supplied; once Decided is true the match is
// over and the caller stops feeding holes (the trailing player cannot equalize
// even by winning every remaining hole).
func MatchPlayState(holes []coursetypes.HoleData, player1, player2 roundtypes.Player, allowance, totalHoles int) MatchState {
	st := MatchState{HolesRemaining: totalHoles}

	for _, hole := range holes {
		s1, ok1 := player1.ScoreFor(hole.Number)
		s2, ok2 := player2.ScoreFor(hole.Number)
		if !ok1 || !ok2 {
			continue
		}

		st.Score += MatchPlayHoleResult(hole, s1, s2, allowance)
		st.HolesPlayed++
	}

	st.HolesRemaining = totalHoles - st.HolesPlayed
	if abs(st.Score) > st.HolesRemaining {
		st.Decided = true
		if st.Score > 0 {
			st.Winner = 1
		} else {
			st.Winner = -1
		}
	}

	return st
}

// FormatMatchPlayStatus renders the live standing from player 1's
// perspective: "AS" when square, otherwise "N UP" or "N DN".
func FormatMatchPlayStatus(st MatchState) string {
	switch {
	case st.Score > 0:
		return fmt.Sprintf("%d UP", st.Score)
	case st.Score < 0:
		return fmt.Sprintf("%d DN", -st.Score)
	default:
		return "AS"
	}
}

// FormatMatchPlayFinalResult renders the closing result: "margin&holesLeft"
// when the match was decided before the last hole (e.g. "3&2"), the plain
// up/down margin when it went the distance, or "AS" when all square at the
// end.
func FormatMatchPlayFinalResult(st MatchState) string {
	if st.Decided && st.HolesRemaining > 0 {
		return fmt.Sprintf("%d&%d", abs(st.Score), st.HolesRemaining)
	}
	return FormatMatchPlayStatus(st)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
