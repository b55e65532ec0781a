// Package timeutil parses the date and timestamp formats used by the GitHub
// API and request payloads, and moves UTC timestamps into the local zone the
// commit graph is reported in.
package timeutil

import (
	"fmt"
	"time"

	"github.com/Kamar-Folarin/github-commit-graph/internal/errors"
)

const (
	// DateLayout is the only accepted date shape.
	DateLayout = "2006-01-02"
	// TimestampLayout is the only accepted timestamp shape: UTC, no fractional seconds.
	TimestampLayout = "2006-01-02T15:04:05Z"
)

// DefaultLocation is UTC-03:00 without daylight saving time.
var DefaultLocation = time.FixedZone("-03", -3*60*60)

// ParseDate parses a strict YYYY-MM-DD string.
func ParseDate(text string) (Date, error) {
	if len(text) != len(DateLayout) {
		return Date{}, errors.NewFormatError(fmt.Sprintf("invalid date %q (expected YYYY-MM-DD)", text), nil)
	}
	t, err := time.Parse(DateLayout, text)
	if err != nil {
		return Date{}, errors.NewFormatError(fmt.Sprintf("invalid date %q (expected YYYY-MM-DD)", text), err)
	}
	return DateOf(t), nil
}

// ParseTimestamp parses a strict YYYY-MM-DDTHH:MM:SSZ string into a UTC time.
func ParseTimestamp(text string) (time.Time, error) {
	// time.Parse tolerates fractional seconds the layout does not mention.
	if len(text) != len(TimestampLayout) {
		return time.Time{}, errors.NewFormatError(fmt.Sprintf("invalid timestamp %q (expected YYYY-MM-DDTHH:MM:SSZ)", text), nil)
	}
	t, err := time.Parse(TimestampLayout, text)
	if err != nil {
		return time.Time{}, errors.NewFormatError(fmt.Sprintf("invalid timestamp %q (expected YYYY-MM-DDTHH:MM:SSZ)", text), err)
	}
	return t, nil
}

// Normalizer converts UTC instants into a fixed target zone.
type Normalizer struct {
	loc *time.Location
}

// NewNormalizer returns a Normalizer for loc. A nil loc selects DefaultLocation.
func NewNormalizer(loc *time.Location) Normalizer {
	if loc == nil {
		loc = DefaultLocation
	}
	return Normalizer{loc: loc}
}

// LoadNormalizer resolves an IANA zone name. An empty name selects DefaultLocation.
func LoadNormalizer(name string) (Normalizer, error) {
	if name == "" {
		return NewNormalizer(nil), nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return Normalizer{}, errors.NewConfigError("LOCAL_TIMEZONE", err.Error())
	}
	return NewNormalizer(loc), nil
}

// Location returns the target zone.
func (n Normalizer) Location() *time.Location {
	if n.loc == nil {
		return DefaultLocation
	}
	return n.loc
}

// ToLocal reinterprets t as UTC and converts it to the target zone.
func (n Normalizer) ToLocal(t time.Time) time.Time {
	return t.UTC().In(n.Location())
}

// LocalDate is the target-zone date of t.
func (n Normalizer) LocalDate(t time.Time) Date {
	return DateOf(n.ToLocal(t))
}

// ParseLocal parses a strict UTC timestamp and converts it to the target zone.
func (n Normalizer) ParseLocal(text string) (time.Time, error) {
	t, err := ParseTimestamp(text)
	if err != nil {
		return time.Time{}, err
	}
	return n.ToLocal(t), nil
}

// Today is the current date in the target zone.
func (n Normalizer) Today(now time.Time) Date {
	return n.LocalDate(now)
}
