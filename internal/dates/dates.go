// Package dates provides date and time arithmetic on top of time.Time:
// relative offsets, day boundaries, calendar-aware day differences,
// component extraction and pattern-based formatting.
//
// Every function is pure. Instants are decomposed into calendar fields per
// call and nothing is shared between calls, so the package is safe for
// concurrent use.
package dates

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// DateLayout is the canonical YYYY-MM-DD layout.
const DateLayout = "2006-01-02"

var (
	dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// IsValidDate checks if a string is a valid YYYY-MM-DD date.
func IsValidDate(s string) bool {
	if !dateRegex.MatchString(s) {
		return false
	}
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// ParseDate parses a YYYY-MM-DD date in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if !IsValidDate(s) {
		return time.Time{}, fmt.Errorf("invalid date: %q", s)
	}
	return time.ParseInLocation(DateLayout, s, locationOrLocal(loc))
}

// IsValidDatetime checks if a string is a valid datetime.
//
// Accepted formats:
// - RFC3339 (e.g. 2025-01-01T10:30:00Z, 2025-06-15T14:00:00+05:00)
// - YYYY-MM-DDTHH:MM
// - YYYY-MM-DDTHH:MM:SS
// - YYYY-MM-DDTHH:MM:SS.sss
func IsValidDatetime(s string) bool {
	_, err := ParseDatetime(s, time.UTC)
	return err == nil
}

// ParseDatetime parses a datetime in one of the accepted formats. Values
// without an explicit offset are interpreted in loc.
func ParseDatetime(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("invalid datetime: empty")
	}

	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}

	formats := []string{
		"2006-01-02T15:04",
		"2006-01-02T15:04:05",
		"2006-01-02T15:04:05.000",
	}
	for _, format := range formats {
		if t, err := time.ParseInLocation(format, s, locationOrLocal(loc)); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid datetime: %q", s)
}

// FromMillis returns the instant ms milliseconds after the Unix epoch, in loc.
func FromMillis(ms int64, loc *time.Location) time.Time {
	return time.UnixMilli(ms).In(locationOrLocal(loc))
}

// Millis returns t as milliseconds since the Unix epoch.
func Millis(t time.Time) int64 {
	return t.UnixMilli()
}

// EpochStart returns 1970-01-01 00:00 on the wall clock of loc.
func EpochStart(loc *time.Location) time.Time {
	return time.Date(1970, time.January, 1, 0, 0, 0, 0, locationOrLocal(loc))
}

// YearFirstDay returns the first instant of now's calendar year.
func YearFirstDay(now time.Time) time.Time {
	return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
}

// IsLaterThan reports whether a is strictly after b.
func IsLaterThan(a, b time.Time) bool {
	return a.After(b)
}

// IsEarlierThan reports whether a is strictly before b.
func IsEarlierThan(a, b time.Time) bool {
	return a.Before(b)
}

// SameDay reports whether a and b fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	return DayDifference(a, b) == 0
}

// Between returns a minus b in milliseconds. Unlike time.Time.Sub it does
// not saturate for spans of more than ~292 years.
func Between(a, b time.Time) int64 {
	return Millis(a) - Millis(b)
}

func locationOrLocal(loc *time.Location) *time.Location {
	if loc == nil {
		return time.Local
	}
	return loc
}
