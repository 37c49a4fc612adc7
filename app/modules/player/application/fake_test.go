package playerservice

import (
	"context"
	"time"

	"github.com/uptrace/bun"

	playertypes "github.com/sindicato-golf/rounds/app/modules/player/domain/types"
	playerdb "github.com/sindicato-golf/rounds/app/modules/player/infrastructure/repositories"
)

// FakePlayerRepository provides a programmable stub for the playerdb.Repository interface.
type FakePlayerRepository struct {
	trace []string

	CreateProfileFunc         func(ctx context.Context, db bun.IDB, profile *playertypes.Profile) error
	GetProfileFunc            func(ctx context.Context, db bun.IDB, profileID string) (*playertypes.Profile, error)
	ListProfilesFunc          func(ctx context.Context, db bun.IDB) ([]playertypes.Profile, error)
	UpdateProfileHandicapFunc func(ctx context.Context, db bun.IDB, profileID string, handicapIndex float64) error
	AppendHandicapEntryFunc   func(ctx context.Context, db bun.IDB, entry *playertypes.HandicapEntry) error
	ListHandicapHistoryFunc   func(ctx context.Context, db bun.IDB, profileID string, since time.Time) ([]playertypes.HandicapEntry, error)
	HandicapAtFunc            func(ctx context.Context, db bun.IDB, profileID string, at time.Time) (*playertypes.HandicapEntry, error)

	LastEntry *playertypes.HandicapEntry
}

func NewFakePlayerRepository() *FakePlayerRepository {
	return &FakePlayerRepository{trace: []string{}}
}

// Trace returns the sequence of method calls made to the fake.
func (f *FakePlayerRepository) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakePlayerRepository) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakePlayerRepository) CreateProfile(ctx context.Context, db bun.IDB, profile *playertypes.Profile) error {
	f.record("CreateProfile")
	if f.CreateProfileFunc != nil {
		return f.CreateProfileFunc(ctx, db, profile)
	}
	return nil
}

func (f *FakePlayerRepository) GetProfile(ctx context.Context, db bun.IDB, profileID string) (*playertypes.Profile, error) {
	f.record("GetProfile")
	if f.GetProfileFunc != nil {
		return f.GetProfileFunc(ctx, db, profileID)
	}
	return nil, playerdb.ErrProfileNotFound
}

func (f *FakePlayerRepository) ListProfiles(ctx context.Context, db bun.IDB) ([]playertypes.Profile, error) {
	f.record("ListProfiles")
	if f.ListProfilesFunc != nil {
		return f.ListProfilesFunc(ctx, db)
	}
	return []playertypes.Profile{}, nil
}

func (f *FakePlayerRepository) CountProfiles(ctx context.Context, db bun.IDB) (int, error) {
	f.record("CountProfiles")
	return 0, nil
}

func (f *FakePlayerRepository) UpdateProfileHandicap(ctx context.Context, db bun.IDB, profileID string, handicapIndex float64) error {
	f.record("UpdateProfileHandicap")
	if f.UpdateProfileHandicapFunc != nil {
		return f.UpdateProfileHandicapFunc(ctx, db, profileID, handicapIndex)
	}
	return nil
}

func (f *FakePlayerRepository) AppendHandicapEntry(ctx context.Context, db bun.IDB, entry *playertypes.HandicapEntry) error {
	f.record("AppendHandicapEntry")
	f.LastEntry = entry
	if f.AppendHandicapEntryFunc != nil {
		return f.AppendHandicapEntryFunc(ctx, db, entry)
	}
	return nil
}

func (f *FakePlayerRepository) ListHandicapHistory(ctx context.Context, db bun.IDB, profileID string, since time.Time) ([]playertypes.HandicapEntry, error) {
	f.record("ListHandicapHistory")
	if f.ListHandicapHistoryFunc != nil {
		return f.ListHandicapHistoryFunc(ctx, db, profileID, since)
	}
	return []playertypes.HandicapEntry{}, nil
}

func (f *FakePlayerRepository) HandicapAt(ctx context.Context, db bun.IDB, profileID string, at time.Time) (*playertypes.HandicapEntry, error) {
	f.record("HandicapAt")
	if f.HandicapAtFunc != nil {
		return f.HandicapAtFunc(ctx, db, profileID, at)
	}
	return nil, nil
}

var _ playerdb.Repository = (*FakePlayerRepository)(nil)

// FakeEventBus captures published events.
type FakeEventBus struct {
	Published []PublishedEvent
	FailWith  error
}

type PublishedEvent struct {
	Subject string
	Payload any
}

func (f *FakeEventBus) Publish(ctx context.Context, subject string, payload any) error {
	f.Published = append(f.Published, PublishedEvent{Subject: subject, Payload: payload})
	return f.FailWith
}

func (f *FakeEventBus) Close() error { return nil }
