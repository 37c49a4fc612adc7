package roundservice

import (
	"context"
	"errors"
	"sort"

	coursetypes "github.com/sindicato-golf/rounds/app/modules/course/domain/types"
	roundtypes "github.com/sindicato-golf/rounds/app/modules/round/domain/types"
	rounddb "github.com/sindicato-golf/rounds/app/modules/round/infrastructure/repositories"
	scoring "github.com/sindicato-golf/rounds/app/modules/scoring/engine"
	"github.com/sindicato-golf/rounds/app/shared/results"
)

// GetStandings computes the live standings for the round's game mode.
func (s *RoundService) GetStandings(ctx context.Context, roundID string) (results.OperationResult[Standings, RoundNotFound], error) {
	return withTelemetry(s, ctx, "GetStandings", roundID, func(ctx context.Context) (results.OperationResult[Standings, RoundNotFound], error) {
		round, course, err := s.loadRoundWithCourse(ctx, roundID)
		if err != nil {
			if errors.Is(err, rounddb.ErrRoundNotFound) {
				return results.Failure[Standings, RoundNotFound](RoundNotFound{RoundID: roundID}), nil
			}
			return results.OperationResult[Standings, RoundNotFound]{}, err
		}

		return results.Success[Standings, RoundNotFound](computeStandings(round, course)), nil
	})
}

func computeStandings(round *roundtypes.Round, course *coursetypes.Course) Standings {
	standings := Standings{
		RoundID: round.ID,
		Mode:    round.GameMode,
	}

	switch round.GameMode {
	case roundtypes.GameModeStableford:
		standings.Entries = rankPlayers(round, func(p roundtypes.Player) float64 {
			return float64(scoring.TotalStableford(p, course.HolesData, round.CourseLength))
		}, false)
	case roundtypes.GameModeSindicato:
		points := scoring.SindicatoStandings(playedHoleData(round, course), round.Players, round.SindicatoPoints)
		standings.Entries = rankPlayers(round, func(p roundtypes.Player) float64 {
			return points[p.ID]
		}, false)
	case roundtypes.GameModeTeam:
		standings.Team = teamStandings(round, course)
	case roundtypes.GameModeMatch:
		standings.Match = matchStatus(round, course)
	default:
		// Stroke play: lowest net total leads.
		standings.Entries = rankPlayers(round, func(p roundtypes.Player) float64 {
			return float64(scoring.TotalNetStrokes(p, course.HolesData, round.CourseLength))
		}, true)
	}

	return standings
}

// rankPlayers sorts players by points and assigns competition ranks, ties
// sharing the same rank.
func rankPlayers(round *roundtypes.Round, pointsOf func(roundtypes.Player) float64, ascending bool) []StandingsEntry {
	entries := make([]StandingsEntry, 0, len(round.Players))
	for _, p := range round.Players {
		entries = append(entries, StandingsEntry{
			PlayerID: p.ID,
			Name:     p.Name,
			Points:   pointsOf(p),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if ascending {
			return entries[i].Points < entries[j].Points
		}
		return entries[i].Points > entries[j].Points
	})

	for i := range entries {
		if i > 0 && entries[i].Points == entries[i-1].Points {
			entries[i].Rank = entries[i-1].Rank
			continue
		}
		entries[i].Rank = i + 1
	}

	return entries
}

func teamStandings(round *roundtypes.Round, course *coursetypes.Course) *TeamStandingsView {
	mode := roundtypes.TeamModeBestBall
	if round.TeamMode != nil {
		mode = *round.TeamMode
	}

	best := scoring.DefaultTeamPointValue
	if round.BestBallPoints != nil {
		best = *round.BestBallPoints
	}
	worst := scoring.DefaultTeamPointValue
	if round.WorstBallPoints != nil {
		worst = *round.WorstBallPoints
	}

	totals := scoring.TeamStandings(playedHoleData(round, course), round.Players, mode, best, worst)

	view := &TeamStandingsView{TeamA: totals.TeamA, TeamB: totals.TeamB}
	switch {
	case totals.TeamA > totals.TeamB:
		view.Leader = string(roundtypes.TeamA)
	case totals.TeamB > totals.TeamA:
		view.Leader = string(roundtypes.TeamB)
	}
	return view
}

func matchStatus(round *roundtypes.Round, course *coursetypes.Course) *MatchStatusView {
	if len(round.Players) != 2 {
		return &MatchStatusView{Status: "AS"}
	}
	p1, p2 := round.Players[0], round.Players[1]

	order := scoring.HolesForLength(round.CourseLength)
	allowance := 0
	if round.UseHandicap {
		allowance = scoring.MatchPlayAllowance(p1.PlayingHandicap, p2.PlayingHandicap, round.CourseLength.IsNineHoles())
	}

	state := scoring.MatchPlayState(playedHoleData(round, course), p1, p2, allowance, len(order))

	view := &MatchStatusView{
		Score:          state.Score,
		HolesPlayed:    state.HolesPlayed,
		HolesRemaining: state.HolesRemaining,
		Decided:        state.Decided,
		Status:         scoring.FormatMatchPlayStatus(state),
	}
	switch state.Winner {
	case 1:
		view.WinnerID = p1.ID
	case -1:
		view.WinnerID = p2.ID
	}
	if state.Decided || (round.Finished && state.HolesRemaining == 0) {
		view.FinalResult = scoring.FormatMatchPlayFinalResult(state)
	}
	return view
}

// playedHoleData returns the course data for the round's play order, so the
// per-hole scorers walk holes in the order they were played.
func playedHoleData(round *roundtypes.Round, course *coursetypes.Course) []coursetypes.HoleData {
	order := scoring.HolesForLength(round.CourseLength)
	holes := make([]coursetypes.HoleData, 0, len(order))
	for _, num := range order {
		if h, ok := holeData(course.HolesData, num); ok {
			holes = append(holes, h)
		}
	}
	return holes
}
