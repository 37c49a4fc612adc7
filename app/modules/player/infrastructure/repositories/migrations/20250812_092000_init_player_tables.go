package playermigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	playerdb "github.com/sindicato-golf/rounds/app/modules/player/infrastructure/repositories"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating player_profiles and handicap_history tables...")

		if _, err := db.NewCreateTable().Model((*playerdb.Profile)(nil)).IfNotExists().Exec(ctx); err != nil {
			return err
		}

		if _, err := db.NewCreateTable().Model((*playerdb.HandicapEntry)(nil)).IfNotExists().Exec(ctx); err != nil {
			return err
		}

		if _, err := db.NewCreateIndex().
			Model((*playerdb.HandicapEntry)(nil)).
			Index("idx_handicap_history_profile_recorded").
			Column("profile_id", "recorded_at").
			IfNotExists().
			Exec(ctx); err != nil {
			return err
		}

		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping player_profiles and handicap_history tables...")

		if _, err := db.NewDropTable().Model((*playerdb.HandicapEntry)(nil)).IfExists().Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewDropTable().Model((*playerdb.Profile)(nil)).IfExists().Exec(ctx); err != nil {
			return err
		}
		return nil
	})
}
