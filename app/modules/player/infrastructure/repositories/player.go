package playerdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	playertypes "github.com/sindicato-golf/rounds/app/modules/player/domain/types"
)

// ErrProfileNotFound is returned when a profile ID does not exist.
var ErrProfileNotFound = errors.New("player profile not found")

// Repository is the player persistence boundary: profiles plus their
// append-only handicap history.
type Repository interface {
	CreateProfile(ctx context.Context, db bun.IDB, profile *playertypes.Profile) error
	GetProfile(ctx context.Context, db bun.IDB, profileID string) (*playertypes.Profile, error)
	ListProfiles(ctx context.Context, db bun.IDB) ([]playertypes.Profile, error)
	CountProfiles(ctx context.Context, db bun.IDB) (int, error)
	UpdateProfileHandicap(ctx context.Context, db bun.IDB, profileID string, handicapIndex float64) error

	AppendHandicapEntry(ctx context.Context, db bun.IDB, entry *playertypes.HandicapEntry) error
	ListHandicapHistory(ctx context.Context, db bun.IDB, profileID string, since time.Time) ([]playertypes.HandicapEntry, error)
	HandicapAt(ctx context.Context, db bun.IDB, profileID string, at time.Time) (*playertypes.HandicapEntry, error)
}

// PlayerDBImpl is the bun-backed player repository.
type PlayerDBImpl struct {
	DB *bun.DB
}

var _ Repository = (*PlayerDBImpl)(nil)

func (r *PlayerDBImpl) idb(db bun.IDB) bun.IDB {
	if db != nil {
		return db
	}
	return r.DB
}

func (r *PlayerDBImpl) CreateProfile(ctx context.Context, db bun.IDB, profile *playertypes.Profile) error {
	model := ProfileFromDomain(profile)
	if _, err := r.idb(db).NewInsert().Model(model).Exec(ctx); err != nil {
		return fmt.Errorf("failed to insert profile %s: %w", profile.ID, err)
	}
	return nil
}

func (r *PlayerDBImpl) GetProfile(ctx context.Context, db bun.IDB, profileID string) (*playertypes.Profile, error) {
	var model Profile
	err := r.idb(db).NewSelect().
		Model(&model).
		Where("id = ?", profileID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to fetch profile %s: %w", profileID, err)
	}
	return model.ToDomain(), nil
}

func (r *PlayerDBImpl) ListProfiles(ctx context.Context, db bun.IDB) ([]playertypes.Profile, error) {
	var models []Profile
	err := r.idb(db).NewSelect().
		Model(&models).
		Order("name ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}

	profiles := make([]playertypes.Profile, 0, len(models))
	for i := range models {
		profiles = append(profiles, *models[i].ToDomain())
	}
	return profiles, nil
}

func (r *PlayerDBImpl) CountProfiles(ctx context.Context, db bun.IDB) (int, error) {
	count, err := r.idb(db).NewSelect().Model((*Profile)(nil)).Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count profiles: %w", err)
	}
	return count, nil
}

func (r *PlayerDBImpl) UpdateProfileHandicap(ctx context.Context, db bun.IDB, profileID string, handicapIndex float64) error {
	res, err := r.idb(db).NewUpdate().
		Model((*Profile)(nil)).
		Set("handicap_index = ?", handicapIndex).
		Set("updated_at = ?", time.Now().UTC()).
		Where("id = ?", profileID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update handicap for profile %s: %w", profileID, err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if rows == 0 {
		return ErrProfileNotFound
	}
	return nil
}

func (r *PlayerDBImpl) AppendHandicapEntry(ctx context.Context, db bun.IDB, entry *playertypes.HandicapEntry) error {
	model := EntryFromDomain(entry)
	if _, err := r.idb(db).NewInsert().Model(model).Exec(ctx); err != nil {
		return fmt.Errorf("failed to insert handicap entry for profile %s: %w", entry.ProfileID, err)
	}
	return nil
}

func (r *PlayerDBImpl) ListHandicapHistory(ctx context.Context, db bun.IDB, profileID string, since time.Time) ([]playertypes.HandicapEntry, error) {
	var models []HandicapEntry
	q := r.idb(db).NewSelect().
		Model(&models).
		Where("profile_id = ?", profileID).
		Order("recorded_at ASC")
	if !since.IsZero() {
		q = q.Where("recorded_at >= ?", since)
	}
	if err := q.Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to list handicap history for profile %s: %w", profileID, err)
	}

	entries := make([]playertypes.HandicapEntry, 0, len(models))
	for i := range models {
		entries = append(entries, *models[i].ToDomain())
	}
	return entries, nil
}

// HandicapAt returns the entry in effect at the given time, nil when the
// profile had no history yet.
func (r *PlayerDBImpl) HandicapAt(ctx context.Context, db bun.IDB, profileID string, at time.Time) (*playertypes.HandicapEntry, error) {
	var model HandicapEntry
	err := r.idb(db).NewSelect().
		Model(&model).
		Where("profile_id = ?", profileID).
		Where("recorded_at <= ?", at).
		Order("recorded_at DESC").
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch handicap at %s for profile %s: %w", at, profileID, err)
	}
	return model.ToDomain(), nil
}
