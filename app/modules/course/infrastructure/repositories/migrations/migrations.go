package coursemigrations

import "github.com/uptrace/bun/migrate"

// Migrations is the course module's migration collection.
var Migrations = migrate.NewMigrations()
