package dbutil

import (
	"context"
	"net"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect"

	"github.com/chainsafe/wifi-whitelist/pkg/config"
)

// SetupTestDB creates a PostgreSQL testcontainer and returns a connection.
// The test is skipped when no docker daemon is reachable.
func SetupTestDB(t *testing.T) (*bun.DB, func()) {
	t.Helper()
	RequireDockerAccess(t)
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("test_user"),
		postgres.WithPassword("test_pass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		_ = testcontainers.TerminateContainer(container)
		t.Fatalf("failed to get container host: %v", err)
	}

	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		_ = testcontainers.TerminateContainer(container)
		t.Fatalf("failed to get container port: %v", err)
	}

	cfg := &config.DatabaseConfig{
		Driver:   config.DriverPostgres,
		Host:     host,
		Port:     port.Int(),
		User:     "test_user",
		Password: "test_pass",
		Database: "test_db",
		SSLMode:  "disable",
	}

	var db *bun.DB
	const maxRetries = 10
	for i := 0; i < maxRetries; i++ {
		db, err = Connect(ctx, cfg)
		if err == nil {
			break
		}
		if i == maxRetries-1 {
			_ = testcontainers.TerminateContainer(container)
			t.Fatalf("failed to connect to test database after %d attempts: %v", maxRetries, err)
		}
		// 100ms, 200ms, 400ms, ...
		time.Sleep(time.Duration(100*(1<<uint(i))) * time.Millisecond)
	}

	cleanup := func() {
		_ = db.Close()
		if err := testcontainers.TerminateContainer(container); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	return db, cleanup
}

// SetupSQLiteDB returns an in-memory SQLite database private to the test.
func SetupSQLiteDB(t *testing.T) *bun.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := Connect(context.Background(), &config.DatabaseConfig{
		Driver:   config.DriverSQLite,
		Database: "file:test_" + name + "?mode=memory&cache=shared",
	})
	if err != nil {
		t.Fatalf("failed to open sqlite database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	return db
}

// RequireDockerAccess skips the test unless a docker daemon socket accepts connections.
func RequireDockerAccess(t *testing.T) {
	t.Helper()

	if host := os.Getenv("DOCKER_HOST"); host != "" {
		return
	}

	candidates := []string{
		"/var/run/docker.sock",
		filepath.Join(os.Getenv("HOME"), ".docker/run/docker.sock"),
	}

	for _, sock := range candidates {
		if _, err := os.Stat(sock); err != nil {
			continue
		}
		conn, err := (&net.Dialer{}).DialContext(context.Background(), "unix", sock)
		if err == nil {
			_ = conn.Close()
			return
		}
	}

	t.Skip("docker daemon socket is not accessible; skipping testcontainer-backed tests")
}

// AssertTableExists checks if a table exists in the database
func AssertTableExists(t *testing.T, db *bun.DB, tableName string) {
	t.Helper()

	if !tableExists(t, db, tableName) {
		t.Errorf("table %s does not exist", tableName)
	}
}

// AssertTableNotExists checks if a table does not exist in the database
func AssertTableNotExists(t *testing.T, db *bun.DB, tableName string) {
	t.Helper()

	if tableExists(t, db, tableName) {
		t.Errorf("table %s should not exist but it does", tableName)
	}
}

// AssertRowCount checks if a table has the expected number of rows
func AssertRowCount(t *testing.T, db *bun.DB, tableName string, expected int) {
	t.Helper()
	ctx := context.Background()

	var count int
	err := db.NewSelect().
		TableExpr("?", bun.Ident(tableName)).
		ColumnExpr("COUNT(*)").
		Scan(ctx, &count)
	if err != nil {
		t.Fatalf("failed to count rows in table %s: %v", tableName, err)
	}

	if count != expected {
		t.Errorf("table %s: expected %d rows, got %d", tableName, expected, count)
	}
}

func tableExists(t *testing.T, db *bun.DB, tableName string) bool {
	t.Helper()
	ctx := context.Background()

	q := db.NewSelect()
	if db.Dialect().Name() == dialect.SQLite {
		q = q.ColumnExpr("EXISTS (SELECT 1 FROM sqlite_master WHERE type = 'table' AND name = ?)", tableName)
	} else {
		q = q.ColumnExpr("EXISTS (SELECT 1 FROM information_schema.tables WHERE table_schema = ? AND table_name = ?)", "public", tableName)
	}

	var exists bool
	if err := q.Scan(ctx, &exists); err != nil {
		t.Fatalf("failed to check if table %s exists: %v", tableName, err)
	}
	return exists
}
