package roundservice

import (
	"context"
	"errors"

	coursetypes "github.com/sindicato-golf/rounds/app/modules/course/domain/types"
	roundtypes "github.com/sindicato-golf/rounds/app/modules/round/domain/types"
	rounddb "github.com/sindicato-golf/rounds/app/modules/round/infrastructure/repositories"
	scoring "github.com/sindicato-golf/rounds/app/modules/scoring/engine"
	"github.com/sindicato-golf/rounds/app/shared/results"
)

// GetScorecard builds the full scorecard view: one row per player with
// per-hole gross, net, result, and stableford points, plus OUT/IN/TOT.
func (s *RoundService) GetScorecard(ctx context.Context, roundID string) (results.OperationResult[Scorecard, RoundNotFound], error) {
	return withTelemetry(s, ctx, "GetScorecard", roundID, func(ctx context.Context) (results.OperationResult[Scorecard, RoundNotFound], error) {
		round, course, err := s.loadRoundWithCourse(ctx, roundID)
		if err != nil {
			if errors.Is(err, rounddb.ErrRoundNotFound) {
				return results.Failure[Scorecard, RoundNotFound](RoundNotFound{RoundID: roundID}), nil
			}
			return results.OperationResult[Scorecard, RoundNotFound]{}, err
		}

		card := Scorecard{
			RoundID:    round.ID,
			CourseName: round.CourseName,
			Date:       round.RoundDate,
			GameMode:   round.GameMode,
			Length:     round.CourseLength,
			Rows:       make([]ScorecardRow, 0, len(round.Players)),
		}

		for i := range round.Players {
			card.Rows = append(card.Rows, buildScorecardRow(&round.Players[i], round, course.HolesData))
		}

		return results.Success[Scorecard, RoundNotFound](card), nil
	})
}

func (s *RoundService) loadRoundWithCourse(ctx context.Context, roundID string) (*roundtypes.Round, *coursetypes.Course, error) {
	round, err := s.repo.GetRound(ctx, nil, roundID)
	if err != nil {
		return nil, nil, err
	}
	course, err := s.courses.GetCourse(ctx, nil, round.CourseID)
	if err != nil {
		return nil, nil, err
	}
	return round, course, nil
}

func buildScorecardRow(player *roundtypes.Player, round *roundtypes.Round, holes []coursetypes.HoleData) ScorecardRow {
	row := ScorecardRow{
		PlayerID:        player.ID,
		Name:            player.Name,
		PlayingHandicap: player.PlayingHandicap,
	}

	for _, num := range scoring.HolesForLength(round.CourseLength) {
		hole, ok := holeData(holes, num)
		if !ok {
			continue
		}

		sh := ScorecardHole{
			Hole:        hole.Number,
			Par:         hole.Par,
			StrokeIndex: hole.StrokeIndex,
		}
		if score, played := player.ScoreFor(hole.Number); played {
			sh.Played = true
			sh.Strokes = score.Strokes
			sh.Putts = score.Putts
			sh.Net = scoring.NetScore(score.Strokes, player.PlayingHandicap, hole.StrokeIndex)
			sh.Result = string(scoring.ResultLabel(score.Strokes, hole.Par, player.PlayingHandicap, hole.StrokeIndex, round.UseHandicap))
			sh.Stableford = scoring.StablefordPoints(score.Strokes, hole.Par, player.PlayingHandicap, hole.StrokeIndex)
		}
		row.Holes = append(row.Holes, sh)
	}

	row.Out = scoring.OutStrokes(*player)
	row.In = scoring.InStrokes(*player)
	row.Total = scoring.TotalStrokes(*player, round.CourseLength)
	row.NetTotal = scoring.TotalNetStrokes(*player, holes, round.CourseLength)
	row.StablefordTotal = scoring.TotalStableford(*player, holes, round.CourseLength)
	row.Putts = scoring.TotalPutts(*player, round.CourseLength)

	return row
}

func holeData(holes []coursetypes.HoleData, number int) (coursetypes.HoleData, bool) {
	for _, h := range holes {
		if h.Number == number {
			return h, true
		}
	}
	return coursetypes.HoleData{}, false
}
