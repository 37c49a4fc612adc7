package rounddb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	roundtypes "github.com/sindicato-golf/rounds/app/modules/round/domain/types"
)

// RoundDBImpl is the bun-backed round repository.
type RoundDBImpl struct {
	DB *bun.DB
}

var _ Repository = (*RoundDBImpl)(nil)

// idb returns the transaction handle when the caller manages one, otherwise
// the repository's own DB.
func (r *RoundDBImpl) idb(db bun.IDB) bun.IDB {
	if db != nil {
		return db
	}
	return r.DB
}

func (r *RoundDBImpl) CreateRound(ctx context.Context, db bun.IDB, round *roundtypes.Round) error {
	model := FromDomain(round)
	if _, err := r.idb(db).NewInsert().Model(model).Exec(ctx); err != nil {
		return fmt.Errorf("failed to insert round %s: %w", round.ID, err)
	}
	return nil
}

func (r *RoundDBImpl) GetRound(ctx context.Context, db bun.IDB, roundID string) (*roundtypes.Round, error) {
	var model Round
	err := r.idb(db).NewSelect().
		Model(&model).
		Where("id = ?", roundID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRoundNotFound
		}
		return nil, fmt.Errorf("failed to fetch round %s: %w", roundID, err)
	}
	return model.ToDomain(), nil
}

func (r *RoundDBImpl) ListRoundsByOwner(ctx context.Context, db bun.IDB, ownerID string) ([]roundtypes.Round, error) {
	var models []Round
	err := r.idb(db).NewSelect().
		Model(&models).
		Where("owner_id = ?", ownerID).
		Order("round_date DESC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list rounds for owner %s: %w", ownerID, err)
	}

	rounds := make([]roundtypes.Round, 0, len(models))
	for i := range models {
		rounds = append(rounds, *models[i].ToDomain())
	}
	return rounds, nil
}

func (r *RoundDBImpl) UpdateRound(ctx context.Context, db bun.IDB, round *roundtypes.Round, expectedUpdatedAt time.Time) error {
	model := FromDomain(round)
	model.UpdatedAt = time.Now().UTC()

	res, err := r.idb(db).NewUpdate().
		Model(model).
		WherePK().
		Where("updated_at = ?", expectedUpdatedAt).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update round %s: %w", round.ID, err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result for round %s: %w", round.ID, err)
	}
	if rows == 0 {
		// Either the round vanished or the timestamp moved under us.
		exists, err := r.idb(db).NewSelect().Model((*Round)(nil)).Where("id = ?", round.ID).Exists(ctx)
		if err != nil {
			return fmt.Errorf("failed to check round %s after stale update: %w", round.ID, err)
		}
		if !exists {
			return ErrRoundNotFound
		}
		return ErrStaleRound
	}

	round.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *RoundDBImpl) DeleteRound(ctx context.Context, db bun.IDB, roundID string) error {
	res, err := r.idb(db).NewDelete().
		Model((*Round)(nil)).
		Where("id = ?", roundID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete round %s: %w", roundID, err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result for round %s: %w", roundID, err)
	}
	if rows == 0 {
		return ErrRoundNotFound
	}
	return nil
}

func (r *RoundDBImpl) CountRounds(ctx context.Context, db bun.IDB) (int, error) {
	count, err := r.idb(db).NewSelect().Model((*Round)(nil)).Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count rounds: %w", err)
	}
	return count, nil
}

func (r *RoundDBImpl) CountRoundsSince(ctx context.Context, db bun.IDB, since time.Time) (int, error) {
	count, err := r.idb(db).NewSelect().
		Model((*Round)(nil)).
		Where("round_date >= ?", since).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count rounds since %s: %w", since, err)
	}
	return count, nil
}
