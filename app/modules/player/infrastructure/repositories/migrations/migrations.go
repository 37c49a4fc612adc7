package playermigrations

import "github.com/uptrace/bun/migrate"

// Migrations is the player module's migration collection.
var Migrations = migrate.NewMigrations()
