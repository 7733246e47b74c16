// Package dbutil opens bun databases for the supported drivers and carries
// shared test helpers.
package dbutil

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/mysqldialect"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/pgdriver"
	_ "modernc.org/sqlite"

	"github.com/chainsafe/wifi-whitelist/pkg/config"
)

const pingTimeout = 10 * time.Second

// Connect opens a connection for cfg.Driver and verifies it with a ping.
func Connect(ctx context.Context, cfg *config.DatabaseConfig) (*bun.DB, error) {
	var (
		db  *bun.DB
		err error
	)

	switch cfg.Driver {
	case config.DriverPostgres, "":
		db = openPostgres(cfg)
	case config.DriverSQLite:
		db, err = openSQLite(cfg)
	case config.DriverMySQL:
		db, err = openMySQL(cfg)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, err
	}

	if cfg.MaxOpenConns > 0 && cfg.Driver != config.DriverSQLite {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err = db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to database %s: %w", cfg.Database, err)
	}

	return db, nil
}

func openPostgres(cfg *config.DatabaseConfig) *bun.DB {
	// functional options escape special characters in credentials
	connector := pgdriver.NewConnector(
		pgdriver.WithNetwork("tcp"),
		pgdriver.WithAddr(net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))),
		pgdriver.WithUser(cfg.User),
		pgdriver.WithPassword(cfg.Password),
		pgdriver.WithDatabase(cfg.Database),
		pgdriver.WithInsecure(cfg.SSLMode == "" || cfg.SSLMode == "disable"),
	)
	return bun.NewDB(sql.OpenDB(connector), pgdialect.New())
}

func openSQLite(cfg *config.DatabaseConfig) (*bun.DB, error) {
	sqldb, err := sql.Open("sqlite", SQLiteDSN(cfg.Database))
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	// sqlite serializes writers; a single connection also keeps an
	// in-memory database alive for the lifetime of the pool
	sqldb.SetMaxOpenConns(1)
	return bun.NewDB(sqldb, sqlitedialect.New()), nil
}

func openMySQL(cfg *config.DatabaseConfig) (*bun.DB, error) {
	mc := mysql.NewConfig()
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
	mc.User = cfg.User
	mc.Passwd = cfg.Password
	mc.DBName = cfg.Database
	mc.ParseTime = true
	if cfg.SSLMode != "" && cfg.SSLMode != "disable" {
		mc.TLSConfig = "true"
	}

	sqldb, err := sql.Open("mysql", mc.FormatDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open mysql database: %w", err)
	}
	return bun.NewDB(sqldb, mysqldialect.New()), nil
}

// SQLiteDSN turns a file path (or ":memory:") into a modernc DSN with a busy
// timeout. Paths that already carry query parameters are used as is.
func SQLiteDSN(path string) string {
	if path == "" || path == ":memory:" {
		return "file::memory:?cache=shared&_pragma=busy_timeout(5000)"
	}
	if strings.Contains(path, "?") {
		return path
	}
	return path + "?_pragma=busy_timeout(5000)"
}
