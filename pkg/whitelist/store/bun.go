package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/driver/pgdriver"

	"github.com/chainsafe/wifi-whitelist/pkg/whitelist"
)

// mysql ER_DUP_ENTRY
const mysqlDuplicateEntry = 1062

type bunStore struct {
	db bun.IDB
}

// NewStore creates a bun implementation of the whitelist store. It works with
// any dialect the database was opened with.
func NewStore(db bun.IDB) *bunStore {
	return &bunStore{db: db}
}

func (s *bunStore) SSIDExists(ctx context.Context, ssid string) (bool, error) {
	exists, err := s.db.NewSelect().
		Model((*WhitelistDao)(nil)).
		Where("ssid = ?", ssid).
		Exists(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check ssid exists: %w", err)
	}
	return exists, nil
}

func (s *bunStore) MACExists(ctx context.Context, mac string) (bool, error) {
	exists, err := s.db.NewSelect().
		Model((*WhitelistDao)(nil)).
		Where("mac = ?", mac).
		Exists(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check mac exists: %w", err)
	}
	return exists, nil
}

func (s *bunStore) InsertEntry(ctx context.Context, entry *whitelist.Entry) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC().Truncate(time.Microsecond)
	}

	if _, err := s.db.NewInsert().Model(toWhitelistDao(entry)).Exec(ctx); err != nil {
		return fmt.Errorf("failed to insert whitelist entry: %w", MapDBError(err))
	}
	return nil
}

func (s *bunStore) GetEntry(ctx context.Context, id string) (*whitelist.Entry, error) {
	dao := new(WhitelistDao)
	err := s.db.NewSelect().
		Model(dao).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get whitelist entry: %w", err)
	}
	return toEntry(dao)
}

func (s *bunStore) ListEntries(ctx context.Context) ([]*whitelist.Entry, error) {
	var daos []WhitelistDao
	err := s.db.NewSelect().
		Model(&daos).
		OrderExpr("created_at DESC, id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list whitelist entries: %w", err)
	}

	entries := make([]*whitelist.Entry, 0, len(daos))
	for i := range daos {
		e, err := toEntry(&daos[i])
		if err != nil {
			return nil, fmt.Errorf("invalid whitelist entry id %q: %w", daos[i].ID, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// MapDBError converts unique constraint violations of any supported driver
// into ErrDuplicate. Other errors are returned unchanged.
func MapDBError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr pgdriver.Error
	if errors.As(err, &pgErr) && pgErr.IntegrityViolation() && pgErr.Field('C') == "23505" {
		return ErrDuplicate
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) && myErr.Number == mysqlDuplicateEntry {
		return ErrDuplicate
	}

	// modernc sqlite: "constraint failed: UNIQUE constraint failed: whitelist.ssid (2067)"
	if strings.Contains(strings.ToLower(err.Error()), "unique constraint failed") {
		return ErrDuplicate
	}
	return err
}
