package whitelistdb

import (
	"context"
	"log"

	mghelper "github.com/chainsafe/wifi-whitelist/pkg/dbutil/migrations"
	"github.com/chainsafe/wifi-whitelist/pkg/whitelist/store"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		log.Println("creating whitelist table...")
		return mghelper.CreateSchema(ctx, db, &store.WhitelistDao{})
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping whitelist table...")
		return mghelper.DropTables(ctx, db, &store.WhitelistDao{})
	})
}
