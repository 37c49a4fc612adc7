package playerservice

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	playertypes "github.com/sindicato-golf/rounds/app/modules/player/domain/types"
	playerdb "github.com/sindicato-golf/rounds/app/modules/player/infrastructure/repositories"
	"github.com/sindicato-golf/rounds/app/shared/results"
)

// CreateProfile validates and persists a player profile, seeding its handicap
// history with the initial index.
func (s *PlayerService) CreateProfile(ctx context.Context, profile *playertypes.Profile) (results.OperationResult[ProfileCreated, ProfileValidationFailed], error) {
	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}

	return withTelemetry(s, ctx, "CreateProfile", profile.ID, func(ctx context.Context) (results.OperationResult[ProfileCreated, ProfileValidationFailed], error) {
		if err := profile.Validate(); err != nil {
			return results.Failure[ProfileCreated, ProfileValidationFailed](ProfileValidationFailed{Reason: err.Error()}), nil
		}

		now := time.Now().UTC()
		profile.CreatedAt = now
		profile.UpdatedAt = now

		return runInTx(s, ctx, func(ctx context.Context, db bun.IDB) (results.OperationResult[ProfileCreated, ProfileValidationFailed], error) {
			if err := s.repo.CreateProfile(ctx, db, profile); err != nil {
				return results.OperationResult[ProfileCreated, ProfileValidationFailed]{}, err
			}

			entry := &playertypes.HandicapEntry{
				ID:            uuid.NewString(),
				ProfileID:     profile.ID,
				HandicapIndex: profile.HandicapIndex,
				Source:        playertypes.HandicapSourceManual,
				RecordedAt:    now,
			}
			if err := s.repo.AppendHandicapEntry(ctx, db, entry); err != nil {
				return results.OperationResult[ProfileCreated, ProfileValidationFailed]{}, err
			}

			return results.Success[ProfileCreated, ProfileValidationFailed](ProfileCreated{Profile: profile}), nil
		})
	})
}

// GetProfile fetches a profile by ID.
func (s *PlayerService) GetProfile(ctx context.Context, profileID string) (results.OperationResult[*playertypes.Profile, ProfileNotFound], error) {
	return withTelemetry(s, ctx, "GetProfile", profileID, func(ctx context.Context) (results.OperationResult[*playertypes.Profile, ProfileNotFound], error) {
		profile, err := s.repo.GetProfile(ctx, nil, profileID)
		if err != nil {
			if errors.Is(err, playerdb.ErrProfileNotFound) {
				return results.Failure[*playertypes.Profile, ProfileNotFound](ProfileNotFound{ProfileID: profileID}), nil
			}
			return results.OperationResult[*playertypes.Profile, ProfileNotFound]{}, err
		}
		return results.Success[*playertypes.Profile, ProfileNotFound](profile), nil
	})
}

// ListProfiles returns all profiles ordered by name.
func (s *PlayerService) ListProfiles(ctx context.Context) ([]playertypes.Profile, error) {
	return s.repo.ListProfiles(ctx, nil)
}
