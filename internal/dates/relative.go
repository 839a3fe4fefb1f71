package dates

import (
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/tj/go-naturaldate"
)

// RelativeDateKind describes how a relative expression was resolved.
type RelativeDateKind int

const (
	RelativeDateUnknown RelativeDateKind = iota
	// RelativeDateInstant is a whole day anchored at its start (today, yesterday).
	RelativeDateInstant
	// RelativeDateNow is the reference instant itself.
	RelativeDateNow
	// RelativeDateOffset is the reference instant shifted by an Offset.
	RelativeDateOffset
)

// RelativeDateResolution is the resolved representation of a relative expression.
type RelativeDateResolution struct {
	Keyword string
	Kind    RelativeDateKind
	Date    time.Time
	Offset  Offset
}

var relativeDateKeywords = map[string]struct{}{
	"now":       {},
	"today":     {},
	"tomorrow":  {},
	"yesterday": {},
}

// NormalizeRelativeDateKeyword normalizes and validates a relative date keyword.
// Returns the canonical keyword and true when valid.
func NormalizeRelativeDateKeyword(value string) (string, bool) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	if _, ok := relativeDateKeywords[normalized]; !ok {
		return "", false
	}
	return normalized, true
}

// ResolveRelativeDateKeyword resolves a keyword ("today", "yesterday", ...) or
// an offset phrase ("3 days earlier") against now.
func ResolveRelativeDateKeyword(value string, now time.Time) (RelativeDateResolution, bool) {
	keyword, ok := NormalizeRelativeDateKeyword(value)
	if !ok {
		offset, err := ParseOffset(value)
		if err != nil {
			return RelativeDateResolution{}, false
		}
		return RelativeDateResolution{
			Keyword: strings.ToLower(strings.TrimSpace(value)),
			Kind:    RelativeDateOffset,
			Date:    offset.From(now),
			Offset:  offset,
		}, true
	}

	switch keyword {
	case "now":
		return RelativeDateResolution{Keyword: keyword, Kind: RelativeDateNow, Date: now}, true
	case "today":
		return instantResolution(keyword, now), true
	case "tomorrow":
		return instantResolution(keyword, Tomorrow(now)), true
	case "yesterday":
		return instantResolution(keyword, Yesterday(now)), true
	default:
		return RelativeDateResolution{}, false
	}
}

func instantResolution(keyword string, date time.Time) RelativeDateResolution {
	return RelativeDateResolution{
		Keyword: keyword,
		Kind:    RelativeDateInstant,
		Date:    StartOfDay(date),
	}
}

// ParseLoose parses a command-line date argument. It tries, in order:
// relative keywords and offset phrases, YYYY-MM-DD, the accepted datetime
// formats, natural language ("last friday", "2 weeks ago") and finally any
// common absolute layout. An empty argument is now.
func ParseLoose(arg string, now time.Time, loc *time.Location) (time.Time, error) {
	loc = locationOrLocal(loc)
	now = now.In(loc)

	s := strings.TrimSpace(arg)
	if s == "" {
		return now, nil
	}
	if resolved, ok := ResolveRelativeDateKeyword(s, now); ok {
		return resolved.Date, nil
	}
	if IsValidDate(s) {
		return ParseDate(s, loc)
	}
	if t, err := ParseDatetime(s, loc); err == nil {
		return t, nil
	}
	if t, err := naturaldate.Parse(s, now, naturaldate.WithDirection(naturaldate.Past)); err == nil && !t.Equal(now) {
		return t, nil
	}
	if t, err := dateparse.ParseIn(s, loc); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q, use YYYY-MM-DD, a datetime, today/yesterday/tomorrow or \"<n> <unit> earlier|later\"", arg)
}
