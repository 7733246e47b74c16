// Package service implements whitelist registration: validation, duplicate
// checks against the record store and insertion.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	apperrors "github.com/chainsafe/wifi-whitelist/pkg/app/errors"
	"github.com/chainsafe/wifi-whitelist/pkg/whitelist"
	"github.com/chainsafe/wifi-whitelist/pkg/whitelist/store"
)

// msgStoreFailure is the single message shown for any store failure.
const msgStoreFailure = "failed to insert entry"

// Store is the narrow data-access interface for the whitelist service.
//
//go:generate mockery --name Store --output mocks --outpkg mocks --filename mock_store.go --with-expecter
type Store interface {
	SSIDExists(ctx context.Context, ssid string) (bool, error)
	MACExists(ctx context.Context, mac string) (bool, error)
	InsertEntry(ctx context.Context, entry *whitelist.Entry) error
	ListEntries(ctx context.Context) ([]*whitelist.Entry, error)
}

// Service defines the whitelist business logic
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	Register(ctx context.Context, req *whitelist.RegisterRequest) (*whitelist.Entry, error)
	List(ctx context.Context) ([]*whitelist.Entry, error)
}

type whitelistService struct {
	store  Store
	logger *zap.Logger
}

// NewService creates a new whitelist service
func NewService(store Store, logger *zap.Logger) Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &whitelistService{
		store:  store,
		logger: logger,
	}
}

// Register whitelists an SSID, a MAC address or both.
//
// The registration process:
//  1. Normalizes and validates the input; invalid input never reaches the store
//  2. Rejects an SSID that is already whitelisted
//  3. Rejects a MAC address that is already whitelisted
//  4. Inserts the entry with the MAC lowercased
//
// Steps run sequentially and stop at the first failure. A unique constraint
// violation on insert means a concurrent submission won the race; the lookups
// are repeated to report which field collided.
func (s *whitelistService) Register(ctx context.Context, req *whitelist.RegisterRequest) (*whitelist.Entry, error) {
	if req == nil {
		req = &whitelist.RegisterRequest{}
	}

	in, err := whitelist.Normalize(req.SSID, req.MAC)
	if err != nil {
		return nil, apperrors.BadRequestError(err, err.Error())
	}

	if err = s.checkDuplicates(ctx, in); err != nil {
		return nil, err
	}

	entry := whitelist.NewEntry(in)
	if err = s.store.InsertEntry(ctx, entry); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			if dupErr := s.checkDuplicates(ctx, in); dupErr != nil && whitelist.IsDuplicateError(dupErr) {
				return nil, dupErr
			}
		}
		s.logger.Error("whitelist insert failed", zap.Error(err))
		return nil, apperrors.DependencyError(fmt.Errorf("%w: %w", whitelist.ErrStoreInsert, err), msgStoreFailure)
	}

	return entry, nil
}

// checkDuplicates runs the SSID lookup before the MAC lookup and stops at the
// first hit. Stored MACs are lowercase, so the MAC is looked up lowercased.
func (s *whitelistService) checkDuplicates(ctx context.Context, in whitelist.Input) error {
	if in.SSID != "" {
		exists, err := s.store.SSIDExists(ctx, in.SSID)
		if err != nil {
			return s.queryError(err)
		}
		if exists {
			return apperrors.ConflictError(whitelist.ErrDuplicateSSID, whitelist.ErrDuplicateSSID.Error())
		}
	}

	if in.MAC != "" {
		exists, err := s.store.MACExists(ctx, strings.ToLower(in.MAC))
		if err != nil {
			return s.queryError(err)
		}
		if exists {
			return apperrors.ConflictError(whitelist.ErrDuplicateMAC, whitelist.ErrDuplicateMAC.Error())
		}
	}

	return nil
}

func (s *whitelistService) queryError(err error) error {
	s.logger.Error("whitelist lookup failed", zap.Error(err))
	return apperrors.DependencyError(fmt.Errorf("%w: %w", whitelist.ErrStoreQuery, err), msgStoreFailure)
}

// List returns all whitelist entries, newest first.
func (s *whitelistService) List(ctx context.Context) ([]*whitelist.Entry, error) {
	entries, err := s.store.ListEntries(ctx)
	if err != nil {
		return nil, apperrors.DependencyError(fmt.Errorf("%w: %w", whitelist.ErrStoreQuery, err), "failed to list entries")
	}
	return entries, nil
}
