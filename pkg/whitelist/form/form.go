// Package form holds the state of the interactive whitelist form: the two
// input fields, the submission phase and the message shown to the user.
//
// A submission moves through
//
//	idle -> checking -> success | error
//
// and invalid input goes straight from idle to error without contacting the
// record store. Form is not safe for concurrent use; the TUI only touches it
// from its update loop.
package form

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/chainsafe/wifi-whitelist/internal/i18n"
	"github.com/chainsafe/wifi-whitelist/pkg/whitelist"
)

// ErrBusy is returned by Begin while a submission is in flight.
var ErrBusy = errors.New("submission already in progress")

// Registrar runs the remote part of a submission. service.Service satisfies it.
type Registrar interface {
	Register(ctx context.Context, req *whitelist.RegisterRequest) (*whitelist.Entry, error)
}

// Form is the UI state holder of the whitelist form.
type Form struct {
	SSID string
	MAC  string

	status     Status
	registrar  Registrar
	onInserted func()
	logger     *zap.Logger
}

// Option configures a Form.
type Option func(*Form)

// WithOnInserted sets the callback fired once after every successful insert.
func WithOnInserted(fn func()) Option {
	return func(f *Form) {
		f.onInserted = fn
	}
}

// WithLogger sets the logger used for store failures.
func WithLogger(logger *zap.Logger) Option {
	return func(f *Form) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// New creates an empty form in PhaseIdle.
func New(registrar Registrar, opts ...Option) *Form {
	f := &Form{
		registrar: registrar,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Status returns the current state.
func (f *Form) Status() Status {
	return f.status
}

// Begin starts a submission of the current field values. It clears the
// previous message and validates locally. Invalid input moves the form to
// PhaseError and returns the validation error; valid input moves it to
// PhaseChecking and returns the request to send.
func (f *Form) Begin() (*whitelist.RegisterRequest, error) {
	if f.status.Loading() {
		return nil, ErrBusy
	}
	f.status = Status{Phase: PhaseIdle}

	if _, err := whitelist.Normalize(f.SSID, f.MAC); err != nil {
		f.status = Status{Phase: PhaseError, Message: Message(err)}
		return nil, err
	}

	f.status = Status{Phase: PhaseChecking}
	return &whitelist.RegisterRequest{SSID: f.SSID, MAC: f.MAC}, nil
}

// Finish records the outcome of the submission started by Begin. On success
// both fields are cleared and the OnInserted callback fires. Finish outside
// PhaseChecking is ignored.
func (f *Form) Finish(err error) {
	if !f.status.Loading() {
		return
	}

	if err != nil {
		if !isKnown(err) {
			f.logger.Error("whitelist submission failed", zap.Error(err))
		}
		f.status = Status{Phase: PhaseError, Message: Message(err)}
		return
	}

	f.SSID = ""
	f.MAC = ""
	f.status = Status{Phase: PhaseSuccess, Message: i18n.T("success.inserted")}
	if f.onInserted != nil {
		f.onInserted()
	}
}

// Submit runs a full submission synchronously: Begin, the registrar call
// and Finish. The returned error is the validation or registration failure.
func (f *Form) Submit(ctx context.Context) error {
	req, err := f.Begin()
	if err != nil {
		return err
	}
	_, err = f.registrar.Register(ctx, req)
	f.Finish(err)
	return err
}

// Message maps a submission error to the fixed message shown to the user.
// Both store failures and unexpected errors share one generic message.
func Message(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, whitelist.ErrEmptyInput):
		return i18n.T("error.empty_input")
	case errors.Is(err, whitelist.ErrInvalidSSID):
		return i18n.T("error.invalid_ssid")
	case errors.Is(err, whitelist.ErrInvalidMAC):
		return i18n.T("error.invalid_mac")
	case errors.Is(err, whitelist.ErrDuplicateSSID):
		return i18n.T("error.duplicate_ssid")
	case errors.Is(err, whitelist.ErrDuplicateMAC):
		return i18n.T("error.duplicate_mac")
	case errors.Is(err, ErrBusy):
		return i18n.T("error.busy")
	default:
		return i18n.T("error.insert_failed")
	}
}

func isKnown(err error) bool {
	return whitelist.IsValidationError(err) || whitelist.IsDuplicateError(err)
}
