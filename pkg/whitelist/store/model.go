package store

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/chainsafe/wifi-whitelist/pkg/whitelist"
)

// WhitelistDao maps directly to the 'whitelist' table.
// ssid and mac are unique; NULLs never collide.
type WhitelistDao struct {
	bun.BaseModel `bun:"table:whitelist,alias:w"`
	ID            string    `bun:"id,pk,type:varchar(36)"`
	SSID          *string   `bun:"ssid,unique,type:varchar(128)"`
	MAC           *string   `bun:"mac,unique,type:varchar(17)"`
	CreatedAt     time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

func toWhitelistDao(e *whitelist.Entry) *WhitelistDao {
	return &WhitelistDao{
		ID:        e.ID.String(),
		SSID:      e.SSID,
		MAC:       e.MAC,
		CreatedAt: e.CreatedAt,
	}
}

func toEntry(dao *WhitelistDao) (*whitelist.Entry, error) {
	id, err := uuid.Parse(dao.ID)
	if err != nil {
		return nil, err
	}
	return &whitelist.Entry{
		ID:        id,
		SSID:      dao.SSID,
		MAC:       dao.MAC,
		CreatedAt: dao.CreatedAt,
	}, nil
}
