package playerservice

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/sindicato-golf/rounds/app/eventbus"
	playertypes "github.com/sindicato-golf/rounds/app/modules/player/domain/types"
	playerdb "github.com/sindicato-golf/rounds/app/modules/player/infrastructure/repositories"
	"github.com/sindicato-golf/rounds/app/shared/attr"
	"github.com/sindicato-golf/rounds/app/shared/results"
)

// HandicapRevisedPayload is published on score.handicap.revised after a
// history entry is appended.
type HandicapRevisedPayload struct {
	ProfileID     string                     `json:"profile_id"`
	HandicapIndex float64                    `json:"handicap_index"`
	Source        playertypes.HandicapSource `json:"source"`
	RoundID       string                     `json:"round_id,omitempty"`
	RecordedAt    time.Time                  `json:"recorded_at"`
}

// SetHandicap records a manually entered handicap index: the profile is
// updated and a history entry appended in one transaction.
func (s *PlayerService) SetHandicap(ctx context.Context, profileID string, handicapIndex float64) (results.OperationResult[HandicapSet, ProfileNotFound], error) {
	return s.appendHandicap(ctx, "SetHandicap", profileID, handicapIndex, playertypes.HandicapSourceManual, "")
}

// ReviseHandicap records an index produced by the post-round revision job.
func (s *PlayerService) ReviseHandicap(ctx context.Context, profileID string, handicapIndex float64, roundID string) (results.OperationResult[HandicapSet, ProfileNotFound], error) {
	return s.appendHandicap(ctx, "ReviseHandicap", profileID, handicapIndex, playertypes.HandicapSourceRevision, roundID)
}

func (s *PlayerService) appendHandicap(
	ctx context.Context,
	operationName string,
	profileID string,
	handicapIndex float64,
	source playertypes.HandicapSource,
	roundID string,
) (results.OperationResult[HandicapSet, ProfileNotFound], error) {
	return withTelemetry(s, ctx, operationName, profileID, func(ctx context.Context) (results.OperationResult[HandicapSet, ProfileNotFound], error) {
		if handicapIndex < playertypes.MinHandicapIndex {
			handicapIndex = playertypes.MinHandicapIndex
		}
		if handicapIndex > playertypes.MaxHandicapIndex {
			handicapIndex = playertypes.MaxHandicapIndex
		}

		entry := &playertypes.HandicapEntry{
			ID:            uuid.NewString(),
			ProfileID:     profileID,
			HandicapIndex: handicapIndex,
			Source:        source,
			RoundID:       roundID,
			RecordedAt:    time.Now().UTC(),
		}

		result, err := runInTx(s, ctx, func(ctx context.Context, db bun.IDB) (results.OperationResult[HandicapSet, ProfileNotFound], error) {
			if err := s.repo.UpdateProfileHandicap(ctx, db, profileID, handicapIndex); err != nil {
				if errors.Is(err, playerdb.ErrProfileNotFound) {
					return results.Failure[HandicapSet, ProfileNotFound](ProfileNotFound{ProfileID: profileID}), nil
				}
				return results.OperationResult[HandicapSet, ProfileNotFound]{}, err
			}
			if err := s.repo.AppendHandicapEntry(ctx, db, entry); err != nil {
				return results.OperationResult[HandicapSet, ProfileNotFound]{}, err
			}
			return results.Success[HandicapSet, ProfileNotFound](HandicapSet{Entry: entry}), nil
		})
		if err != nil || !result.IsSuccess() {
			return result, err
		}

		payload := HandicapRevisedPayload{
			ProfileID:     entry.ProfileID,
			HandicapIndex: entry.HandicapIndex,
			Source:        entry.Source,
			RoundID:       entry.RoundID,
			RecordedAt:    entry.RecordedAt,
		}
		if pubErr := s.EventBus.Publish(ctx, eventbus.SubjectHandicapRevised, payload); pubErr != nil {
			// The entry is committed; a lost event is log-worthy, not fatal.
			s.logger.WarnContext(ctx, "Failed to publish handicap revision event",
				attr.String("profile_id", profileID),
				attr.Error(pubErr),
			)
		}

		return result, nil
	})
}

// GetHandicapHistory returns the profile's history entries since the given
// time (all of them when since is zero).
func (s *PlayerService) GetHandicapHistory(ctx context.Context, profileID string, since time.Time) (results.OperationResult[[]playertypes.HandicapEntry, ProfileNotFound], error) {
	return withTelemetry(s, ctx, "GetHandicapHistory", profileID, func(ctx context.Context) (results.OperationResult[[]playertypes.HandicapEntry, ProfileNotFound], error) {
		if _, err := s.repo.GetProfile(ctx, nil, profileID); err != nil {
			if errors.Is(err, playerdb.ErrProfileNotFound) {
				return results.Failure[[]playertypes.HandicapEntry, ProfileNotFound](ProfileNotFound{ProfileID: profileID}), nil
			}
			return results.OperationResult[[]playertypes.HandicapEntry, ProfileNotFound]{}, err
		}

		entries, err := s.repo.ListHandicapHistory(ctx, nil, profileID, since)
		if err != nil {
			return results.OperationResult[[]playertypes.HandicapEntry, ProfileNotFound]{}, err
		}
		return results.Success[[]playertypes.HandicapEntry, ProfileNotFound](entries), nil
	})
}
