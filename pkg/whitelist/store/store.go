// Package store persists whitelist entries.
package store

import (
	"context"
	"errors"

	"github.com/chainsafe/wifi-whitelist/pkg/whitelist"
)

var (
	// ErrDuplicate is returned when an insert violates the unique ssid or mac index.
	ErrDuplicate = errors.New("whitelist entry already exists")
	// ErrNotFound is returned when a lookup by id finds no entry.
	ErrNotFound = errors.New("whitelist entry not found")
)

// Store defines whitelist persistence.
type Store interface {
	// SSIDExists reports whether an entry with exactly this ssid exists.
	SSIDExists(ctx context.Context, ssid string) (bool, error)
	// MACExists reports whether an entry with exactly this mac exists.
	MACExists(ctx context.Context, mac string) (bool, error)
	InsertEntry(ctx context.Context, entry *whitelist.Entry) error
	GetEntry(ctx context.Context, id string) (*whitelist.Entry, error)
	// ListEntries returns all entries, newest first.
	ListEntries(ctx context.Context) ([]*whitelist.Entry, error)
}
