package dates

import (
	"errors"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/ncruces/go-strftime"
)

// DefaultPattern is the strftime pattern used when none is configured.
const DefaultPattern = "%Y-%m-%d %H:%M:%S"

// ErrParse matches every *ParseError via errors.Is.
var ErrParse = errors.New("text does not match pattern")

// ParseError reports text that could not be parsed with a pattern.
type ParseError struct {
	Text    string
	Pattern string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %q with pattern %q: %v", e.Text, e.Pattern, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrParse) true for any ParseError.
func (e *ParseError) Is(target error) bool { return target == ErrParse }

// Format renders t with a strftime pattern such as "%Y-%m-%d %H:%M".
func Format(t time.Time, pattern string) string {
	return strftime.Format(pattern, t)
}

// Parse reads text with a strftime pattern. Fields the pattern does not carry
// default to their zero value, and text without a zone offset is read in loc.
func Parse(text, pattern string, loc *time.Location) (time.Time, error) {
	layout, err := strftime.Layout(pattern)
	if err != nil {
		return time.Time{}, &ParseError{Text: text, Pattern: pattern, Err: err}
	}
	t, err := time.ParseInLocation(layout, text, locationOrLocal(loc))
	if err != nil {
		return time.Time{}, &ParseError{Text: text, Pattern: pattern, Err: err}
	}
	return t, nil
}

// Pretty renders t as "2006-01-02 03:04:05:000 PM".
func Pretty(t time.Time) string {
	return fmt.Sprintf("%s:%03d %s", t.Format("2006-01-02 03:04:05"), MillisecondOf(t), t.Format("PM"))
}

// FormatDuration renders a span of ms milliseconds as hours, minutes and
// seconds, e.g. "26h:03m:09s". Sub-second remainders are dropped.
func FormatDuration(ms int64) string {
	sign := ""
	if ms < 0 {
		sign = "-"
		ms = -ms
	}
	total := ms / 1000
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	return fmt.Sprintf("%s%dh:%02dm:%02ds", sign, h, m, s)
}

// Humanize describes t relative to now, e.g. "3 days ago" or "2 hours from now".
func Humanize(t, now time.Time) string {
	return humanize.RelTime(t, now, "ago", "from now")
}

// HumanizeDays renders a day count with thousands separators.
func HumanizeDays(n int) string {
	if n == 1 {
		return "1 day"
	}
	return humanize.Comma(int64(n)) + " days"
}
