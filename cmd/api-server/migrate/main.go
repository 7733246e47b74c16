package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/chainsafe/wifi-whitelist/pkg/config"
	"github.com/chainsafe/wifi-whitelist/pkg/dbutil"
	mghelper "github.com/chainsafe/wifi-whitelist/pkg/dbutil/migrations"
	"github.com/chainsafe/wifi-whitelist/pkg/migrations/whitelistdb"

	"github.com/uptrace/bun/migrate"
	"go.uber.org/zap"
)

func main() {
	cfgPath := flag.String("config", "config.example.yaml", "Path to configuration file")
	flag.Usage = func() { fmt.Fprint(os.Stderr, mghelper.UsageText) }
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("error reading configuration file: %s", err.Error())
	}

	logger, err := config.NewLogger(cfg.Logging, "migrate")
	if err != nil {
		log.Fatalf("error setting up logger: %s", err.Error())
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()

	db, err := dbutil.Connect(ctx, &cfg.Database)
	if err != nil {
		logger.Fatal("error connecting to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Running migrations for whitelist database",
		zap.String("driver", cfg.Database.Driver),
		zap.String("database", cfg.Database.Database),
	)

	migrator := migrate.NewMigrator(db, whitelistdb.Migrations)

	err = mghelper.RunMigrations(ctx, migrator, logger, flag.Args()...)
	if errors.Is(err, mghelper.ErrNoCommand) {
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		logger.Error("migration failed", zap.Error(err))
		os.Exit(1)
	}
}
