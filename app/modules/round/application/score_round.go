package roundservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/sindicato-golf/rounds/app/eventbus"
	roundtypes "github.com/sindicato-golf/rounds/app/modules/round/domain/types"
	rounddb "github.com/sindicato-golf/rounds/app/modules/round/infrastructure/repositories"
	scoring "github.com/sindicato-golf/rounds/app/modules/scoring/engine"
	"github.com/sindicato-golf/rounds/app/shared/attr"
	"github.com/sindicato-golf/rounds/app/shared/results"
)

// ScoreRecordedPayload is published on round.score.recorded.
type ScoreRecordedPayload struct {
	RoundID       string `json:"round_id"`
	PlayerID      string `json:"player_id"`
	Hole          int    `json:"hole"`
	Strokes       int    `json:"strokes"`
	Putts         int    `json:"putts"`
	HoleCompleted bool   `json:"hole_completed"`
}

// StandingsUpdatedPayload is published on score.standings.updated after every
// accepted score.
type StandingsUpdatedPayload struct {
	RoundID string              `json:"round_id"`
	Mode    roundtypes.GameMode `json:"mode"`
	Hole    int                 `json:"hole"`
}

// RecordScore saves one player's score on one hole, overwriting any previous
// entry for that hole. The write is guarded by the round's updated_at: if
// another device saved first, the caller gets a conflict and must reload.
func (s *RoundService) RecordScore(ctx context.Context, input RecordScoreInput) (results.OperationResult[ScoreRecorded, ScoreRejected], error) {
	return withTelemetry(s, ctx, "RecordScore", input.RoundID, func(ctx context.Context) (results.OperationResult[ScoreRecorded, ScoreRejected], error) {
		reject := func(reason string) (results.OperationResult[ScoreRecorded, ScoreRejected], error) {
			return results.Failure[ScoreRecorded, ScoreRejected](ScoreRejected{Reason: reason}), nil
		}

		if input.Strokes < 1 {
			return reject("strokes must be at least 1")
		}
		if input.Putts < 0 {
			return reject("putts must not be negative")
		}
		if input.Putts > input.Strokes {
			return reject("putts cannot exceed strokes")
		}

		var holeCompleted bool
		result, err := runInTx(s, ctx, func(ctx context.Context, db bun.IDB) (results.OperationResult[ScoreRecorded, ScoreRejected], error) {
			round, err := s.repo.GetRound(ctx, db, input.RoundID)
			if err != nil {
				if errors.Is(err, rounddb.ErrRoundNotFound) {
					return results.Failure[ScoreRecorded, ScoreRejected](ScoreRejected{
						Reason:   fmt.Sprintf("round %s does not exist", input.RoundID),
						NotFound: true,
					}), nil
				}
				return results.OperationResult[ScoreRecorded, ScoreRejected]{}, err
			}

			if round.Finished {
				return reject("round is already finished")
			}

			player, ok := round.Player(input.PlayerID)
			if !ok {
				return reject(fmt.Sprintf("player %s is not in this round", input.PlayerID))
			}

			if !holeInPlay(input.Hole, round.CourseLength) {
				return reject(fmt.Sprintf("hole %d is not part of this round", input.Hole))
			}

			player.Scores[input.Hole] = roundtypes.Score{Strokes: input.Strokes, Putts: input.Putts}

			holeCompleted = allPlayersScored(round, input.Hole)
			if holeCompleted && !round.IsCompleted(input.Hole) {
				round.CompletedHoles = append(round.CompletedHoles, input.Hole)
				round.CurrentHole = nextOpenHole(round)
			}

			if err := s.repo.UpdateRound(ctx, db, round, round.UpdatedAt); err != nil {
				if errors.Is(err, rounddb.ErrStaleRound) {
					return results.Failure[ScoreRecorded, ScoreRejected](ScoreRejected{
						Reason:   "round was updated by another device",
						Conflict: true,
					}), nil
				}
				return results.OperationResult[ScoreRecorded, ScoreRejected]{}, err
			}

			return results.Success[ScoreRecorded, ScoreRejected](ScoreRecorded{
				Round:         round,
				HoleCompleted: holeCompleted,
			}), nil
		})
		if err != nil || !result.IsSuccess() {
			return result, err
		}

		round := result.Success.Round
		scorePayload := ScoreRecordedPayload{
			RoundID:       round.ID,
			PlayerID:      input.PlayerID,
			Hole:          input.Hole,
			Strokes:       input.Strokes,
			Putts:         input.Putts,
			HoleCompleted: holeCompleted,
		}
		if pubErr := s.EventBus.Publish(ctx, eventbus.SubjectScoreRecorded, scorePayload); pubErr != nil {
			s.logger.WarnContext(ctx, "Failed to publish score recorded event",
				attr.RoundID("round_id", round.ID),
				attr.Error(pubErr),
			)
		}

		standingsPayload := StandingsUpdatedPayload{
			RoundID: round.ID,
			Mode:    round.GameMode,
			Hole:    input.Hole,
		}
		if pubErr := s.EventBus.Publish(ctx, eventbus.SubjectStandingsUpdated, standingsPayload); pubErr != nil {
			s.logger.WarnContext(ctx, "Failed to publish standings updated event",
				attr.RoundID("round_id", round.ID),
				attr.Error(pubErr),
			)
		}

		return result, nil
	})
}

func holeInPlay(hole int, length roundtypes.CourseLength) bool {
	for _, h := range scoring.HolesForLength(length) {
		if h == hole {
			return true
		}
	}
	return false
}

func allPlayersScored(round *roundtypes.Round, hole int) bool {
	for i := range round.Players {
		if _, ok := round.Players[i].Scores[hole]; !ok {
			return false
		}
	}
	return true
}

// nextOpenHole walks the play order from the starting hole and returns the
// first hole not yet completed. When every hole is done it returns the last
// hole of the play order.
func nextOpenHole(round *roundtypes.Round) int {
	order := scoring.HolesForLength(round.CourseLength)
	for _, h := range order {
		if !round.IsCompleted(h) {
			return h
		}
	}
	return order[len(order)-1]
}
