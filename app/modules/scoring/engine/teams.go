package scoring

import (
	coursetypes "github.com/sindicato-golf/rounds/app/modules/course/domain/types"
	roundtypes "github.com/sindicato-golf/rounds/app/modules/round/domain/types"
)

// DefaultTeamPointValue is the per-axis point value when a round does not
// configure best/worst ball points.
const DefaultTeamPointValue = 1

// TeamHolePoints is the points awarded to each side on a single hole.
type TeamHolePoints struct {
	TeamA float64 `json:"team_a"`
	TeamB float64 `json:"team_b"`
}

// Add accumulates another hole's points.
func (t *TeamHolePoints) Add(other TeamHolePoints) {
	t.TeamA += other.TeamA
	t.TeamB += other.TeamB
}

// BestBallHolePoints compares the two teams' best (lowest) net scores on one
// hole. The lower best net wins pointValue; equal best nets split it 50/50.
// Players without a score on the hole are excluded; if either team has no
// completions the hole is skipped and both sides score zero.
func BestBallHolePoints(hole coursetypes.HoleData, players []roundtypes.Player, pointValue int) TeamHolePoints {
	bestA, okA := teamExtremeNet(hole, players, roundtypes.TeamA, false)
	bestB, okB := teamExtremeNet(hole, players, roundtypes.TeamB, false)
	if !okA || !okB {
		return TeamHolePoints{}
	}
	return awardAxis(bestA, bestB, pointValue)
}

// GoodBadBallHolePoints compares the teams on two independent axes: best
// (lowest) net and worst (highest) net among completing members. Each axis
// awards its own point value with the same win/tie/split rule as best ball;
// a team's hole total is the sum across both axes.
func GoodBadBallHolePoints(hole coursetypes.HoleData, players []roundtypes.Player, bestPoints, worstPoints int) TeamHolePoints {
	bestA, okA := teamExtremeNet(hole, players, roundtypes.TeamA, false)
	bestB, okB := teamExtremeNet(hole, players, roundtypes.TeamB, false)
	if !okA || !okB {
		return TeamHolePoints{}
	}
	worstA, _ := teamExtremeNet(hole, players, roundtypes.TeamA, true)
	worstB, _ := teamExtremeNet(hole, players, roundtypes.TeamB, true)

	total := awardAxis(bestA, bestB, bestPoints)
	total.Add(awardAxis(worstA, worstB, worstPoints))
	return total
}

// TeamStandings sums the configured team comparison over the given holes.
func TeamStandings(holes []coursetypes.HoleData, players []roundtypes.Player, mode roundtypes.TeamMode, bestPoints, worstPoints int) TeamHolePoints {
	var totals TeamHolePoints
	for _, hole := range holes {
		switch mode {
		case roundtypes.TeamModeGoodBadBall:
			totals.Add(GoodBadBallHolePoints(hole, players, bestPoints, worstPoints))
		default:
			totals.Add(BestBallHolePoints(hole, players, bestPoints))
		}
	}
	return totals
}

// teamExtremeNet returns the lowest (or, with worst set, highest) net score
// among the team's members who completed the hole. ok is false when no member
// of the team has a score on the hole.
func teamExtremeNet(hole coursetypes.HoleData, players []roundtypes.Player, team roundtypes.TeamID, worst bool) (int, bool) {
	var extreme int
	found := false
	for _, p := range players {
		if p.Team == nil || *p.Team != team {
			continue
		}
		score, ok := p.ScoreFor(hole.Number)
		if !ok {
			continue
		}
		net := NetScore(score.Strokes, p.PlayingHandicap, hole.StrokeIndex)
		if !found || (worst && net > extreme) || (!worst && net < extreme) {
			extreme = net
			found = true
		}
	}
	return extreme, found
}

// awardAxis applies the win/tie/split rule for one comparison axis.
func awardAxis(netA, netB, pointValue int) TeamHolePoints {
	pv := float64(pointValue)
	switch {
	case netA < netB:
		return TeamHolePoints{TeamA: pv}
	case netB < netA:
		return TeamHolePoints{TeamB: pv}
	default:
		return TeamHolePoints{TeamA: pv / 2, TeamB: pv / 2}
	}
}
