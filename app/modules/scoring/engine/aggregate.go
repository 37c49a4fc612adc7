package scoring

import (
	coursetypes "github.com/sindicato-golf/rounds/app/modules/course/domain/types"
	roundtypes "github.com/sindicato-golf/rounds/app/modules/round/domain/types"
)

// HolesForLength lists the hole numbers covered by a course length.
func HolesForLength(length roundtypes.CourseLength) []int {
	var first, last int
	switch length {
	case roundtypes.CourseLengthFront9:
		first, last = 1, 9
	case roundtypes.CourseLengthBack9:
		first, last = 10, 18
	default:
		first, last = 1, 18
	}

	holes := make([]int, 0, last-first+1)
	for n := first; n <= last; n++ {
		holes = append(holes, n)
	}
	return holes
}

// TotalStrokes sums the player's gross strokes over the holes of the selected
// length. Holes without a score contribute 0, so a round in progress is
// always summable.
func TotalStrokes(player roundtypes.Player, length roundtypes.CourseLength) int {
	total := 0
	for _, n := range HolesForLength(length) {
		if s, ok := player.ScoreFor(n); ok {
			total += s.Strokes
		}
	}
	return total
}

// TotalPutts sums the player's putts over the holes of the selected length.
func TotalPutts(player roundtypes.Player, length roundtypes.CourseLength) int {
	total := 0
	for _, n := range HolesForLength(length) {
		if s, ok := player.ScoreFor(n); ok {
			total += s.Putts
		}
	}
	return total
}

// OutStrokes is the fixed front-nine subtotal, regardless of the round's
// selected length. Scorecards show OUT/IN subtotals even on 18-hole rounds.
func OutStrokes(player roundtypes.Player) int {
	return TotalStrokes(player, roundtypes.CourseLengthFront9)
}

// InStrokes is the fixed back-nine subtotal.
func InStrokes(player roundtypes.Player) int {
	return TotalStrokes(player, roundtypes.CourseLengthBack9)
}

// TotalNetStrokes sums net scores over the selected length, skipping holes
// the player has not completed or that have no course data.
func TotalNetStrokes(player roundtypes.Player, holes []coursetypes.HoleData, length roundtypes.CourseLength) int {
	byNumber := holesByNumber(holes)
	total := 0
	for _, n := range HolesForLength(length) {
		hole, ok := byNumber[n]
		if !ok {
			continue
		}
		if s, played := player.ScoreFor(n); played {
			total += NetScore(s.Strokes, player.PlayingHandicap, hole.StrokeIndex)
		}
	}
	return total
}

// TotalStableford sums Stableford points over the selected length. Holes the
// player has not completed are absent from the sum, not zero.
func TotalStableford(player roundtypes.Player, holes []coursetypes.HoleData, length roundtypes.CourseLength) int {
	byNumber := holesByNumber(holes)
	total := 0
	for _, n := range HolesForLength(length) {
		hole, ok := byNumber[n]
		if !ok {
			continue
		}
		if s, played := player.ScoreFor(n); played {
			total += StablefordPoints(s.Strokes, hole.Par, player.PlayingHandicap, hole.StrokeIndex)
		}
	}
	return total
}

func holesByNumber(holes []coursetypes.HoleData) map[int]coursetypes.HoleData {
	m := make(map[int]coursetypes.HoleData, len(holes))
	for _, h := range holes {
		m[h.Number] = h
	}
	return m
}
