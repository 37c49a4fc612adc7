package roundservice

import (
	"context"
	"errors"

	roundtypes "github.com/sindicato-golf/rounds/app/modules/round/domain/types"
	rounddb "github.com/sindicato-golf/rounds/app/modules/round/infrastructure/repositories"
	"github.com/sindicato-golf/rounds/app/shared/results"
)

// GetRound fetches a round by ID.
func (s *RoundService) GetRound(ctx context.Context, roundID string) (results.OperationResult[*roundtypes.Round, RoundNotFound], error) {
	return withTelemetry(s, ctx, "GetRound", roundID, func(ctx context.Context) (results.OperationResult[*roundtypes.Round, RoundNotFound], error) {
		round, err := s.repo.GetRound(ctx, nil, roundID)
		if err != nil {
			if errors.Is(err, rounddb.ErrRoundNotFound) {
				return results.Failure[*roundtypes.Round, RoundNotFound](RoundNotFound{RoundID: roundID}), nil
			}
			return results.OperationResult[*roundtypes.Round, RoundNotFound]{}, err
		}
		return results.Success[*roundtypes.Round, RoundNotFound](round), nil
	})
}

// ListRounds returns the owner's rounds, newest first.
func (s *RoundService) ListRounds(ctx context.Context, ownerID string) ([]roundtypes.Round, error) {
	return s.repo.ListRoundsByOwner(ctx, nil, ownerID)
}
