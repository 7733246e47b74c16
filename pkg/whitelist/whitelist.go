// Package whitelist holds the domain model for trusted WiFi networks (SSIDs)
// and devices (MAC addresses), together with input normalization and validation.
package whitelist

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Entry is a single whitelisted network or device. At least one of SSID and
// MAC is set; both are stored lowercased.
type Entry struct {
	ID        uuid.UUID
	SSID      *string
	MAC       *string
	CreatedAt time.Time
}

// NewEntry builds the record to insert from validated input. Empty fields
// become nil and the MAC is lowercased.
func NewEntry(in Input) *Entry {
	e := &Entry{ID: uuid.New()}
	if in.SSID != "" {
		ssid := in.SSID
		e.SSID = &ssid
	}
	if in.MAC != "" {
		mac := strings.ToLower(in.MAC)
		e.MAC = &mac
	}
	return e
}

// Label returns a short human-readable description of the entry.
func (e *Entry) Label() string {
	switch {
	case e.SSID != nil && e.MAC != nil:
		return *e.SSID + " / " + *e.MAC
	case e.SSID != nil:
		return *e.SSID
	case e.MAC != nil:
		return *e.MAC
	default:
		return "<empty>"
	}
}

// RegisterRequest is the raw user input of a whitelist submission.
type RegisterRequest struct {
	SSID string `json:"ssid"`
	MAC  string `json:"mac"`
}

// EntryResponse is the JSON representation of an Entry. Absent fields are
// encoded as null.
type EntryResponse struct {
	ID        string    `json:"id"`
	SSID      *string   `json:"ssid"`
	MAC       *string   `json:"mac"`
	CreatedAt time.Time `json:"created_at,omitzero"`
}

// ToResponse converts e to its JSON representation.
func (e *Entry) ToResponse() *EntryResponse {
	return &EntryResponse{
		ID:        e.ID.String(),
		SSID:      e.SSID,
		MAC:       e.MAC,
		CreatedAt: e.CreatedAt,
	}
}
