package scoring

import (
	"sort"

	coursetypes "github.com/sindicato-golf/rounds/app/modules/course/domain/types"
	roundtypes "github.com/sindicato-golf/rounds/app/modules/round/domain/types"
)

// DefaultSindicatoPoints is the point table used when a round does not
// configure its own: 4 for the best net score, then 2, 1, 0.
var DefaultSindicatoPoints = []int{4, 2, 1, 0}

// SindicatoHolePoints ranks all players who completed the given hole by net
// score and distributes the configured point table across the ranking.
// Consecutive equal net scores form a tie block: the block's point pool (the
// sum of the point values for the ranks it spans) is split evenly across its
// members, and ranks advance by block size. Positions beyond the point table
// contribute 0 to the pool.
//
// Players without a score on the hole are excluded from the ranking entirely.
// If nobody has completed the hole the result is an empty map.
func SindicatoHolePoints(hole coursetypes.HoleData, players []roundtypes.Player, pointsConfig []int) map[string]float64 {
	if len(pointsConfig) == 0 {
		pointsConfig = DefaultSindicatoPoints
	}

	type entry struct {
		id  string
		net int
	}
	entries := make([]entry, 0, len(players))
	for _, p := range players {
		score, ok := p.ScoreFor(hole.Number)
		if !ok {
			continue
		}
		entries = append(entries, entry{
			id:  p.ID,
			net: NetScore(score.Strokes, p.PlayingHandicap, hole.StrokeIndex),
		})
	}

	points := make(map[string]float64, len(entries))
	if len(entries) == 0 {
		return points
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].net < entries[j].net
	})

	// Walk tie blocks of equal net scores.
	for i := 0; i < len(entries); {
		j := i
		for j < len(entries) && entries[j].net == entries[i].net {
			j++
		}

		pool := 0
		for rank := i; rank < j; rank++ {
			if rank < len(pointsConfig) {
				pool += pointsConfig[rank]
			}
		}

		share := float64(pool) / float64(j-i)
		for k := i; k < j; k++ {
			points[entries[k].id] = share
		}

		i = j
	}

	return points
}

// SindicatoStandings sums SindicatoHolePoints over the given holes for every
// player that appears on at least one of them.
func SindicatoStandings(holes []coursetypes.HoleData, players []roundtypes.Player, pointsConfig []int) map[string]float64 {
	totals := make(map[string]float64)
	for _, hole := range holes {
		for id, pts := range SindicatoHolePoints(hole, players, pointsConfig) {
			totals[id] += pts
		}
	}
	return totals
}
