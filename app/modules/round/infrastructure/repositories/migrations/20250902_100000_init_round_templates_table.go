package roundmigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	rounddb "github.com/sindicato-golf/rounds/app/modules/round/infrastructure/repositories"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating round_templates table...")

		if _, err := db.NewCreateTable().Model((*rounddb.Template)(nil)).IfNotExists().Exec(ctx); err != nil {
			return err
		}

		if _, err := db.NewCreateIndex().
			Model((*rounddb.Template)(nil)).
			Index("idx_round_templates_owner").
			Column("owner_id").
			IfNotExists().
			Exec(ctx); err != nil {
			return err
		}

		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping round_templates table...")

		if _, err := db.NewDropTable().Model((*rounddb.Template)(nil)).IfExists().Exec(ctx); err != nil {
			return err
		}
		return nil
	})
}
