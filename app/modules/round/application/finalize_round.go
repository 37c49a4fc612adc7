package roundservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	"github.com/sindicato-golf/rounds/app/eventbus"
	roundtypes "github.com/sindicato-golf/rounds/app/modules/round/domain/types"
	rounddb "github.com/sindicato-golf/rounds/app/modules/round/infrastructure/repositories"
	"github.com/sindicato-golf/rounds/app/shared/attr"
	"github.com/sindicato-golf/rounds/app/shared/results"
)

// RoundFinishedPayload is published on round.finished.
type RoundFinishedPayload struct {
	RoundID        string              `json:"round_id"`
	OwnerID        string              `json:"owner_id"`
	GameMode       roundtypes.GameMode `json:"game_mode"`
	CompletedHoles int                 `json:"completed_holes"`
	FinishedAt     time.Time           `json:"finished_at"`
}

// FinishRound closes a round to further scoring. Partial rounds may be
// finished; at least one completed hole is required so an empty round cannot
// enter the books. Finishing a handicapped round with profile-linked players
// queues the handicap revision job.
func (s *RoundService) FinishRound(ctx context.Context, roundID string) (results.OperationResult[RoundFinished, FinishRejected], error) {
	return withTelemetry(s, ctx, "FinishRound", roundID, func(ctx context.Context) (results.OperationResult[RoundFinished, FinishRejected], error) {
		reject := func(reason string) (results.OperationResult[RoundFinished, FinishRejected], error) {
			return results.Failure[RoundFinished, FinishRejected](FinishRejected{Reason: reason}), nil
		}

		result, err := runInTx(s, ctx, func(ctx context.Context, db bun.IDB) (results.OperationResult[RoundFinished, FinishRejected], error) {
			round, err := s.repo.GetRound(ctx, db, roundID)
			if err != nil {
				if errors.Is(err, rounddb.ErrRoundNotFound) {
					return results.Failure[RoundFinished, FinishRejected](FinishRejected{
						Reason:   fmt.Sprintf("round %s does not exist", roundID),
						NotFound: true,
					}), nil
				}
				return results.OperationResult[RoundFinished, FinishRejected]{}, err
			}

			if round.Finished {
				return reject("round is already finished")
			}
			if len(round.CompletedHoles) == 0 {
				return reject("cannot finish a round with no completed holes")
			}

			round.Finished = true

			if err := s.repo.UpdateRound(ctx, db, round, round.UpdatedAt); err != nil {
				if errors.Is(err, rounddb.ErrStaleRound) {
					return reject("round was updated by another device")
				}
				return results.OperationResult[RoundFinished, FinishRejected]{}, err
			}

			return results.Success[RoundFinished, FinishRejected](RoundFinished{Round: round}), nil
		})
		if err != nil || !result.IsSuccess() {
			return result, err
		}

		round := result.Success.Round
		payload := RoundFinishedPayload{
			RoundID:        round.ID,
			OwnerID:        round.OwnerID,
			GameMode:       round.GameMode,
			CompletedHoles: len(round.CompletedHoles),
			FinishedAt:     round.UpdatedAt,
		}
		if pubErr := s.EventBus.Publish(ctx, eventbus.SubjectRoundFinished, payload); pubErr != nil {
			s.logger.WarnContext(ctx, "Failed to publish round finished event",
				attr.RoundID("round_id", round.ID),
				attr.Error(pubErr),
			)
		}

		if round.UseHandicap && hasProfilePlayers(round) {
			if jobErr := s.jobs.EnqueueHandicapRevision(ctx, round.ID); jobErr != nil {
				s.logger.ErrorContext(ctx, "Failed to enqueue handicap revision job",
					attr.RoundID("round_id", round.ID),
					attr.Error(jobErr),
				)
			}
		}

		return result, nil
	})
}

func hasProfilePlayers(round *roundtypes.Round) bool {
	for i := range round.Players {
		if round.Players[i].ProfileID != "" {
			return true
		}
	}
	return false
}
