package roundmigrations

import "github.com/uptrace/bun/migrate"

// Migrations is the round module's migration collection, registered by the
// files in this package and driven by cmd/bun.
var Migrations = migrate.NewMigrations()
