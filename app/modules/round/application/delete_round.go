package roundservice

import (
	"context"
	"errors"

	"github.com/uptrace/bun"

	rounddb "github.com/sindicato-golf/rounds/app/modules/round/infrastructure/repositories"
	"github.com/sindicato-golf/rounds/app/shared/results"
)

// DeleteRound removes a round and everything recorded on it. Finished rounds
// can be deleted too; handicap revisions already applied are not rolled back.
func (s *RoundService) DeleteRound(ctx context.Context, roundID string) (results.OperationResult[RoundDeleted, RoundNotFound], error) {
	return withTelemetry(s, ctx, "DeleteRound", roundID, func(ctx context.Context) (results.OperationResult[RoundDeleted, RoundNotFound], error) {
		return runInTx(s, ctx, func(ctx context.Context, db bun.IDB) (results.OperationResult[RoundDeleted, RoundNotFound], error) {
			if err := s.repo.DeleteRound(ctx, db, roundID); err != nil {
				if errors.Is(err, rounddb.ErrRoundNotFound) {
					return results.Failure[RoundDeleted, RoundNotFound](RoundNotFound{RoundID: roundID}), nil
				}
				return results.OperationResult[RoundDeleted, RoundNotFound]{}, err
			}
			return results.Success[RoundDeleted, RoundNotFound](RoundDeleted{RoundID: roundID}), nil
		})
	})
}
