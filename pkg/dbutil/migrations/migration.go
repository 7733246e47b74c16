// Package migrations holds migrations related helpers
package migrations

import (
	"context"
	"fmt"
	"reflect"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/migrate"
	"go.uber.org/zap"
)

// UsageText describes the commands understood by RunMigrations.
const UsageText = `Usage:
  api-server-migrate [-config config.yaml] <command>

This program runs command on the database. Supported commands are:
  - init - creates migration info table in the database
  - up - runs all available migrations.
  - down - reverts last migration group.
  - status - prints migration status.

Examples:
  go run ./cmd/api-server/migrate -config config.yaml init
  go run ./cmd/api-server/migrate -config config.yaml up
`

// ErrNoCommand is returned by RunMigrations when no command is given.
var ErrNoCommand = fmt.Errorf("no command provided")

// CreateSchema creates tables from models
func CreateSchema(ctx context.Context, db bun.IDB, models ...any) error {
	for _, model := range models {
		_, err := db.NewCreateTable().
			Model(model).
			IfNotExists().
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to create table for %s: %w", reflect.TypeOf(model), err)
		}
	}
	return nil
}

// DropTables drops tables from database
func DropTables(ctx context.Context, db bun.IDB, models ...any) error {
	for _, model := range models {
		_, err := db.NewDropTable().
			Model(model).
			IfExists().
			Cascade().
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to drop table for %s: %w", reflect.TypeOf(model), err)
		}
	}
	return nil
}

// TruncateTables removes all rows from the tables of the given models.
func TruncateTables(ctx context.Context, db bun.IDB, models ...any) error {
	for _, model := range models {
		_, err := db.NewDelete().
			Model(model).
			Where("1=1").
			Exec(ctx)
		if err != nil {
			return err
		}
	}
	return nil
}

// RunMigrations runs the migration command in args[0] with the given migrator.
func RunMigrations(ctx context.Context, migrator *migrate.Migrator, logger *zap.Logger, args ...string) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	if len(args) == 0 {
		return ErrNoCommand
	}

	switch args[0] {
	case "init":
		if err := migrator.Init(ctx); err != nil {
			return err
		}
		logger.Info("migration table created")
		return nil

	case "up":
		if err := migrator.Lock(ctx); err != nil {
			return fmt.Errorf("failed to acquire migration lock: %w", err)
		}
		defer unlock(ctx, migrator, logger)

		group, err := migrator.Migrate(ctx)
		if err != nil {
			return err
		}
		if group.IsZero() {
			logger.Info("no new migrations to run (database is up to date)")
		} else {
			logger.Info("migrated", zap.String("group", group.String()))
		}
		return nil

	case "down":
		if err := migrator.Lock(ctx); err != nil {
			return fmt.Errorf("failed to acquire migration lock: %w", err)
		}
		defer unlock(ctx, migrator, logger)

		group, err := migrator.Rollback(ctx)
		if err != nil {
			return err
		}
		if group.IsZero() {
			logger.Info("no migrations to rollback")
		} else {
			logger.Info("rolled back", zap.String("group", group.String()))
		}
		return nil

	case "status":
		ms, err := migrator.MigrationsWithStatus(ctx)
		if err != nil {
			return err
		}
		logger.Info("migration status",
			zap.String("migrations", ms.String()),
			zap.String("unapplied", ms.Unapplied().String()),
			zap.String("last_group", ms.LastGroup().String()),
		)
		return nil

	default:
		return fmt.Errorf("unknown command: %s", args[0])
	}
}

func unlock(ctx context.Context, migrator *migrate.Migrator, logger *zap.Logger) {
	if err := migrator.Unlock(ctx); err != nil {
		logger.Warn("failed to release migration lock", zap.Error(err))
	}
}
