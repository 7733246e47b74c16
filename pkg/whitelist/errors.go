package whitelist

import "errors"

// Submission failures. Validation errors are returned before any store call;
// the store errors abort the submission without inserting.
var (
	ErrEmptyInput    = errors.New("ssid or mac address required")
	ErrInvalidSSID   = errors.New("ssid must be 1-32 characters")
	ErrInvalidMAC    = errors.New("invalid mac address format")
	ErrDuplicateSSID = errors.New("ssid already whitelisted")
	ErrDuplicateMAC  = errors.New("mac address already whitelisted")
	ErrStoreQuery    = errors.New("whitelist lookup failed")
	ErrStoreInsert   = errors.New("whitelist insert failed")
)

// IsValidationError reports whether err was produced by Normalize.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrEmptyInput) ||
		errors.Is(err, ErrInvalidSSID) ||
		errors.Is(err, ErrInvalidMAC)
}

// IsDuplicateError reports whether err signals an already whitelisted SSID or MAC.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicateSSID) || errors.Is(err, ErrDuplicateMAC)
}

// IsStoreError reports whether err is a record store failure.
func IsStoreError(err error) bool {
	return errors.Is(err, ErrStoreQuery) || errors.Is(err, ErrStoreInsert)
}
