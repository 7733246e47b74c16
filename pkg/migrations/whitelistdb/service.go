// Package whitelistdb holds all the migrations for the whitelist database
package whitelistdb

import (
	"github.com/uptrace/bun/migrate"
)

// Migrations is the collection of all migrations for the whitelist database
var Migrations = migrate.NewMigrations()
