package bundb

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	coursedb "github.com/sindicato-golf/rounds/app/modules/course/infrastructure/repositories"
	playerdb "github.com/sindicato-golf/rounds/app/modules/player/infrastructure/repositories"
	rounddb "github.com/sindicato-golf/rounds/app/modules/round/infrastructure/repositories"
	"github.com/sindicato-golf/rounds/config"
)

// NewBunDB opens the Postgres pool and wraps it in bun with the module
// models registered.
func NewBunDB(ctx context.Context, cfg config.PostgresConfig) (*bun.DB, error) {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(cfg.DSN)))
	if err := sqldb.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db := bun.NewDB(sqldb, pgdialect.New())

	db.RegisterModel(&rounddb.Round{})
	db.RegisterModel(&rounddb.Template{})
	db.RegisterModel(&coursedb.Course{})
	db.RegisterModel(&playerdb.Profile{})
	db.RegisterModel(&playerdb.HandicapEntry{})

	return db, nil
}
