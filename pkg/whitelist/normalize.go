package whitelist

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// SSID length bounds, counted in characters after trimming.
const (
	MinSSIDLength = 1
	MaxSSIDLength = 32
)

var macPattern = regexp.MustCompile(`^([0-9A-Fa-f]{2}:){5}[0-9A-Fa-f]{2}$`)

// Input is normalized submission input. SSID is trimmed and lowercased,
// MAC is trimmed with its case preserved. An empty string means absent.
type Input struct {
	SSID string
	MAC  string
}

// Normalize trims and validates raw form input.
//
// Checks run in order: both fields empty, SSID length, MAC format.
func Normalize(rawSSID, rawMAC string) (Input, error) {
	ssid := trim(rawSSID)
	mac := trim(rawMAC)

	if ssid == "" && mac == "" {
		return Input{}, ErrEmptyInput
	}
	if ssid != "" && !ValidSSID(ssid) {
		return Input{}, ErrInvalidSSID
	}
	if mac != "" && !ValidMAC(mac) {
		return Input{}, ErrInvalidMAC
	}

	return Input{SSID: strings.ToLower(ssid), MAC: mac}, nil
}

// ValidSSID reports whether the trimmed SSID has 1 to 32 characters.
func ValidSSID(ssid string) bool {
	n := utf8.RuneCountInString(trim(ssid))
	return n >= MinSSIDLength && n <= MaxSSIDLength
}

// ValidMAC reports whether mac is six colon-separated hexadecimal octets.
func ValidMAC(mac string) bool {
	return macPattern.MatchString(mac)
}

// trim strips surrounding whitespace, including the byte order mark that
// pasted text sometimes carries.
func trim(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == '\uFEFF'
	})
}
