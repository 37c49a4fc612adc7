package playerservice

import (
	"context"
	"time"

	playertypes "github.com/sindicato-golf/rounds/app/modules/player/domain/types"
	"github.com/sindicato-golf/rounds/app/shared/results"
)

// ProfileCreated is the success payload for CreateProfile.
type ProfileCreated struct {
	Profile *playertypes.Profile
}

// ProfileValidationFailed is the handled failure payload for CreateProfile.
type ProfileValidationFailed struct {
	Reason string
}

// ProfileNotFound is the handled failure payload for profile lookups.
type ProfileNotFound struct {
	ProfileID string
}

// HandicapSet is the success payload for SetHandicap and ReviseHandicap.
type HandicapSet struct {
	Entry *playertypes.HandicapEntry
}

// Service is the player application surface.
type Service interface {
	CreateProfile(ctx context.Context, profile *playertypes.Profile) (results.OperationResult[ProfileCreated, ProfileValidationFailed], error)
	GetProfile(ctx context.Context, profileID string) (results.OperationResult[*playertypes.Profile, ProfileNotFound], error)
	ListProfiles(ctx context.Context) ([]playertypes.Profile, error)

	SetHandicap(ctx context.Context, profileID string, handicapIndex float64) (results.OperationResult[HandicapSet, ProfileNotFound], error)
	ReviseHandicap(ctx context.Context, profileID string, handicapIndex float64, roundID string) (results.OperationResult[HandicapSet, ProfileNotFound], error)
	GetHandicapHistory(ctx context.Context, profileID string, since time.Time) (results.OperationResult[[]playertypes.HandicapEntry, ProfileNotFound], error)
	HandicapChart(ctx context.Context, profileID string, since time.Time) ([]byte, error)
}
