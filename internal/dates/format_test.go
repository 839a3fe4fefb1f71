package dates

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestFormat(t *testing.T) {
	x := time.Date(2024, time.July, 9, 13, 45, 27, 123_000_000, time.UTC)
	if got := Format(x, DefaultPattern); got != "2024-07-09 13:45:27" {
		t.Fatalf("Format() = %q", got)
	}
	if got := Format(x, "%d/%m/%Y"); got != "09/07/2024" {
		t.Fatalf("Format() = %q", got)
	}
}

func TestParseRoundTripTruncatesToPatternPrecision(t *testing.T) {
	x := time.Date(2024, time.July, 9, 13, 45, 27, 123_000_000, time.UTC)

	tests := []struct {
		pattern string
		want    time.Time
	}{
		{pattern: DefaultPattern, want: x.Truncate(time.Second)},
		{pattern: "%Y-%m-%d %H:%M", want: x.Truncate(time.Minute)},
		{pattern: "%Y-%m-%d", want: StartOfDay(x)},
	}
	for _, tt := range tests {
		got, err := Parse(Format(x, tt.pattern), tt.pattern, time.UTC)
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", tt.pattern, err)
		}
		if !got.Equal(tt.want) {
			t.Fatalf("round trip with %q = %v, want %v", tt.pattern, got, tt.want)
		}
	}
}

func TestParseUsesLocation(t *testing.T) {
	loc := time.FixedZone("plus-nine", 9*60*60)
	got, err := Parse("2024-07-09 08:00:00", DefaultPattern, loc)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got.Location() != loc || got.UTC().Hour() != 23 {
		t.Fatalf("Parse() = %v, want 08:00 in plus-nine", got)
	}
}

func TestParseError(t *testing.T) {
	_, err := Parse("2024/07/09", "%Y-%m-%d", time.UTC)
	if err == nil {
		t.Fatalf("expected parse error")
	}
	if !errors.Is(err, ErrParse) {
		t.Fatalf("errors.Is(err, ErrParse) = false for %v", err)
	}
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if perr.Text != "2024/07/09" || perr.Pattern != "%Y-%m-%d" {
		t.Fatalf("unexpected ParseError fields: %+v", perr)
	}
	if !strings.Contains(err.Error(), "%Y-%m-%d") {
		t.Fatalf("error should mention the pattern: %v", err)
	}
}

func TestPretty(t *testing.T) {
	x := time.Date(2024, time.July, 9, 13, 45, 27, 123_000_000, time.UTC)
	if got := Pretty(x); got != "2024-07-09 01:45:27:123 PM" {
		t.Fatalf("Pretty() = %q", got)
	}
	midnight := time.Date(2024, time.July, 9, 0, 0, 0, 7_000_000, time.UTC)
	if got := Pretty(midnight); got != "2024-07-09 12:00:00:007 AM" {
		t.Fatalf("Pretty() = %q", got)
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{in: 0, want: "0h:00m:00s"},
		{in: 26*3_600_000 + 3*60_000 + 9*1_000 + 500, want: "26h:03m:09s"},
		{in: -90_000, want: "-0h:01m:30s"},
	}
	for _, tt := range tests {
		if got := FormatDuration(tt.in); got != tt.want {
			t.Fatalf("FormatDuration(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestHumanize(t *testing.T) {
	now := time.Date(2024, time.July, 9, 12, 0, 0, 0, time.UTC)
	if got := Humanize(now.Add(-72*time.Hour), now); got != "3 days ago" {
		t.Fatalf("Humanize(past) = %q", got)
	}
	if got := Humanize(now.Add(2*time.Hour), now); got != "2 hours from now" {
		t.Fatalf("Humanize(future) = %q", got)
	}
	if got := HumanizeDays(1234); got != "1,234 days" {
		t.Fatalf("HumanizeDays() = %q", got)
	}
	if got := HumanizeDays(1); got != "1 day" {
		t.Fatalf("HumanizeDays(1) = %q", got)
	}
}
