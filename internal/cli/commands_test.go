package cli

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aidanlsb/funtime/internal/dates"
)

func TestShiftPhraseJSON(t *testing.T) {
	out, _, err := run(t, "shift", "20000 days earlier", "--json")
	if err != nil {
		t.Fatalf("shift: %v", err)
	}

	var res shiftResult
	env := decode(t, out, &res)
	if !env.OK {
		t.Fatalf("expected ok=true; out=%s", out)
	}
	want := dates.Millis(fixedNow) - 20000*86_400_000
	if res.Result.Millis != want {
		t.Fatalf("result millis = %d, want %d", res.Result.Millis, want)
	}
	if res.Offset != "20000 days earlier" {
		t.Fatalf("offset = %q", res.Offset)
	}
}

func TestShiftBareNumberUsesFlags(t *testing.T) {
	out, _, err := run(t, "shift", "90", "--unit", "minutes", "--direction", "earlier", "--from", "2024-07-09T12:00:00", "--json")
	if err != nil {
		t.Fatalf("shift: %v", err)
	}

	var res shiftResult
	decode(t, out, &res)
	if res.Result.ISO != "2024-07-09T10:30:00.000Z" {
		t.Fatalf("result = %s, want 2024-07-09T10:30:00.000Z", res.Result.ISO)
	}
}

func TestShiftRejectsIncompleteOffset(t *testing.T) {
	out, _, err := run(t, "shift", "3", "days", "--json")
	if !errors.Is(err, errReported) {
		t.Fatalf("err = %v, want errReported", err)
	}
	env := decode(t, out, nil)
	if env.OK || env.Error == nil || env.Error.Code != ErrInvalidOffset {
		t.Fatalf("expected %s error; out=%s", ErrInvalidOffset, out)
	}
}

func TestDiffCountsCalendarDays(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{a: "2020-12-31", b: "2023-01-01", want: 731},
		{a: "2024-02-28", b: "2024-03-01", want: 2},
		{a: "2023-03-01", b: "2023-02-28", want: 1},
		{a: "2023-12-31T23:59:00", b: "2024-01-01T00:01:00", want: 1},
	}
	for _, tt := range tests {
		out, _, err := run(t, "diff", tt.a, tt.b, "--json")
		if err != nil {
			t.Fatalf("diff %s %s: %v", tt.a, tt.b, err)
		}
		var res diffResult
		decode(t, out, &res)
		if res.Days != tt.want {
			t.Fatalf("diff %s %s = %d, want %d", tt.a, tt.b, res.Days, tt.want)
		}
	}
}

func TestDiffDefaultsSecondDateToNow(t *testing.T) {
	out, _, err := run(t, "diff", "yesterday", "--json")
	if err != nil {
		t.Fatalf("diff: %v", err)
	}
	var res diffResult
	decode(t, out, &res)
	if res.Days != 1 {
		t.Fatalf("days = %d, want 1", res.Days)
	}
	if res.To.Millis != dates.Millis(fixedNow) {
		t.Fatalf("to = %d, want now", res.To.Millis)
	}
}

func TestDiffTextOutput(t *testing.T) {
	out, _, err := run(t, "diff", "2024-02-28", "2024-03-01")
	if err != nil {
		t.Fatalf("diff: %v", err)
	}
	if !strings.Contains(out, "2 days") {
		t.Fatalf("expected day count in output, got %q", out)
	}
}

func TestBoundsJSON(t *testing.T) {
	out, _, err := run(t, "bounds", "2024-02-29", "--json")
	if err != nil {
		t.Fatalf("bounds: %v", err)
	}
	var res boundsResult
	decode(t, out, &res)
	if res.Start.ISO != "2024-02-29T00:00:00.000Z" {
		t.Fatalf("start = %s", res.Start.ISO)
	}
	if res.End.ISO != "2024-02-29T23:59:59.999Z" {
		t.Fatalf("end = %s", res.End.ISO)
	}
}

func TestBoundsFollowTimezone(t *testing.T) {
	out, _, err := run(t, "bounds", "2024-02-29", "--tz", "Asia/Tokyo", "--json")
	if err != nil {
		t.Fatalf("bounds: %v", err)
	}
	var res boundsResult
	decode(t, out, &res)
	if res.Start.ISO != "2024-02-29T00:00:00.000+09:00" {
		t.Fatalf("start = %s", res.Start.ISO)
	}
}

func TestFieldsJSON(t *testing.T) {
	out, _, err := run(t, "fields", "2024-03-05T07:08:09.010", "--json")
	if err != nil {
		t.Fatalf("fields: %v", err)
	}
	var f dates.Fields
	decode(t, out, &f)
	want := dates.Fields{Year: 2024, MonthOfYear: 2, DayOfMonth: 5, DayOfYear: 65, Hour: 7, Minute: 8, Second: 9, Millisecond: 10}
	if f != want {
		t.Fatalf("fields = %+v, want %+v", f, want)
	}
}

func TestFormatWithPattern(t *testing.T) {
	out, _, err := run(t, "format", "2024-07-09", "%d/%m/%Y")
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	if out != "09/07/2024\n" {
		t.Fatalf("format = %q", out)
	}
}

func TestFormatWarnsOnPrecisionLoss(t *testing.T) {
	out, _, err := run(t, "format", "now", "--json")
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	var res formatResult
	env := decode(t, out, &res)
	if res.Text != "2024-07-09 13:45:27" {
		t.Fatalf("text = %q", res.Text)
	}
	if len(env.Warnings) != 1 || env.Warnings[0].Code != WarnPrecisionLoss {
		t.Fatalf("expected %s warning; out=%s", WarnPrecisionLoss, out)
	}

	out, _, err = run(t, "format", "2024-07-09", "%Y-%m-%d", "--json")
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	if env := decode(t, out, nil); len(env.Warnings) != 0 {
		t.Fatalf("expected no warnings for an exact round trip; out=%s", out)
	}
}

func TestParseCommand(t *testing.T) {
	out, _, err := run(t, "parse", "09/07/2024", "%d/%m/%Y", "--json")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var v instantView
	decode(t, out, &v)
	if v.ISO != "2024-07-09T00:00:00.000Z" {
		t.Fatalf("parse = %s", v.ISO)
	}
}

func TestParseCommandFailure(t *testing.T) {
	out, _, err := run(t, "parse", "2024/07/09", "%Y-%m-%d", "--json")
	if !errors.Is(err, errReported) {
		t.Fatalf("err = %v, want errReported", err)
	}
	env := decode(t, out, nil)
	if env.Error == nil || env.Error.Code != ErrParseFailed {
		t.Fatalf("expected %s; out=%s", ErrParseFailed, out)
	}
	details, ok := env.Error.Details.(map[string]interface{})
	if !ok || details["pattern"] != "%Y-%m-%d" || details["text"] != "2024/07/09" {
		t.Fatalf("unexpected details: %#v", env.Error.Details)
	}
}

func TestParseCommandFailureText(t *testing.T) {
	_, stderrOut, err := run(t, "parse", "nonsense")
	if err == nil || errors.Is(err, errReported) {
		t.Fatalf("expected a plain error, got %v", err)
	}
	if !strings.Contains(stderrOut, "nonsense") {
		t.Fatalf("expected error on stderr, got %q", stderrOut)
	}
}

func TestInvalidDateArgument(t *testing.T) {
	out, _, err := run(t, "bounds", "definitely not a date", "--json")
	if !errors.Is(err, errReported) {
		t.Fatalf("err = %v, want errReported", err)
	}
	if env := decode(t, out, nil); env.Error == nil || env.Error.Code != ErrInvalidDate {
		t.Fatalf("expected %s; out=%s", ErrInvalidDate, out)
	}
}

func TestYesterdayAndTomorrow(t *testing.T) {
	out, _, err := run(t, "yesterday", "--json")
	if err != nil {
		t.Fatalf("yesterday: %v", err)
	}
	var v instantView
	decode(t, out, &v)
	if v.Millis != dates.Millis(fixedNow)-86_400_000 {
		t.Fatalf("yesterday = %d", v.Millis)
	}

	out, _, err = run(t, "tomorrow", "--json")
	if err != nil {
		t.Fatalf("tomorrow: %v", err)
	}
	decode(t, out, &v)
	if v.ISO != "2024-07-10T13:45:27.123Z" {
		t.Fatalf("tomorrow = %s", v.ISO)
	}
}

func TestNowOutputs(t *testing.T) {
	out, _, err := run(t, "now", "--pattern", "%H:%M")
	if err != nil {
		t.Fatalf("now: %v", err)
	}
	if out != "13:45\n" {
		t.Fatalf("now = %q", out)
	}

	out, _, err = run(t, "now", "-o", "yaml")
	if err != nil {
		t.Fatalf("now -o yaml: %v", err)
	}
	if !strings.Contains(out, "ok: true") || !strings.Contains(out, "01:45:27:123 PM") {
		t.Fatalf("unexpected yaml output: %s", out)
	}
}

func TestInvalidOutputFormat(t *testing.T) {
	if _, _, err := run(t, "now", "-o", "xml"); err == nil {
		t.Fatal("expected an error for -o xml")
	}
}

func TestInvalidTimezone(t *testing.T) {
	out, _, err := run(t, "now", "--tz", "Mars/Phobos", "--json")
	if !errors.Is(err, errReported) {
		t.Fatalf("err = %v, want errReported", err)
	}
	if env := decode(t, out, nil); env.Error == nil || env.Error.Code != ErrInvalidTimezone {
		t.Fatalf("expected %s; out=%s", ErrInvalidTimezone, out)
	}
}

func TestDateSummary(t *testing.T) {
	out, _, err := run(t, "date", "2024-07-08")
	if err != nil {
		t.Fatalf("date: %v", err)
	}
	for _, want := range []string{"# 2024-07-08 (Monday)", "yesterday", "190 of 366"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}

	out, _, err = run(t, "date", "2024-07-20", "--json")
	if err != nil {
		t.Fatalf("date --json: %v", err)
	}
	var s dateSummary
	decode(t, out, &s)
	if s.DaysFromToday != 11 || s.Weekday != "Saturday" || s.DaysInYear != 366 {
		t.Fatalf("unexpected summary: %+v", s)
	}
}

func TestDemo(t *testing.T) {
	out, _, err := run(t, "demo", "--json")
	if err != nil {
		t.Fatalf("demo: %v", err)
	}
	var lines []demoLine
	decode(t, out, &lines)
	if len(lines) == 0 || lines[0].Value.Millis != dates.Millis(fixedNow)-20000*86_400_000 {
		t.Fatalf("unexpected demo output: %s", out)
	}
}

func TestConfigSetGetAndUse(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	if _, _, err := run(t, "config", "set", "pattern", "%d/%m/%Y", "--config", path); err != nil {
		t.Fatalf("config set: %v", err)
	}

	out, _, err := run(t, "config", "get", "pattern", "--config", path)
	if err != nil {
		t.Fatalf("config get: %v", err)
	}
	if out != "%d/%m/%Y\n" {
		t.Fatalf("config get = %q", out)
	}

	out, _, err = run(t, "format", "2024-07-09", "--config", path)
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	if out != "09/07/2024\n" {
		t.Fatalf("format with configured pattern = %q", out)
	}
}

func TestConfigSetRejectsBadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	out, _, err := run(t, "config", "set", "timezone", "Nowhere/Land", "--config", path, "--json")
	if !errors.Is(err, errReported) {
		t.Fatalf("err = %v, want errReported", err)
	}
	if env := decode(t, out, nil); env.Error == nil || env.Error.Code != ErrConfigInvalid {
		t.Fatalf("expected %s; out=%s", ErrConfigInvalid, out)
	}

	out, _, err = run(t, "config", "get", "nope", "--config", path, "--json")
	if !errors.Is(err, errReported) {
		t.Fatalf("err = %v, want errReported", err)
	}
	if env := decode(t, out, nil); env.Error == nil || env.Error.Code != ErrConfigKey {
		t.Fatalf("expected %s; out=%s", ErrConfigKey, out)
	}
}

func TestConfigInitAndPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	out, _, err := run(t, "config", "init", "--config", path, "--json")
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	var res struct {
		Created bool `json:"created"`
	}
	decode(t, out, &res)
	if !res.Created {
		t.Fatalf("expected created=true; out=%s", out)
	}

	out, _, err = run(t, "config", "path", "--config", path)
	if err != nil {
		t.Fatalf("config path: %v", err)
	}
	if strings.TrimSpace(out) != path {
		t.Fatalf("config path = %q, want %q", out, path)
	}
}

func TestBrokenConfigIsReported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, path, "pattern = [")

	out, _, err := run(t, "now", "--config", path, "--json")
	if !errors.Is(err, errReported) {
		t.Fatalf("err = %v, want errReported", err)
	}
	if env := decode(t, out, nil); env.Error == nil || env.Error.Code != ErrConfigInvalid {
		t.Fatalf("expected %s; out=%s", ErrConfigInvalid, out)
	}
}

func TestBoundsTextPrintsBothRows(t *testing.T) {
	out, _, err := run(t, "bounds", "2024-02-29")
	if err != nil {
		t.Fatalf("bounds: %v", err)
	}
	for _, want := range []string{"starts", "2024-02-29 12:00:00:000 AM", "ends", "2024-02-29 11:59:59:999 PM"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestFieldsTextPrintsEveryField(t *testing.T) {
	out, _, err := run(t, "fields", "2024-03-05T07:08:09.010")
	if err != nil {
		t.Fatalf("fields: %v", err)
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 8 {
		t.Fatalf("expected 8 rows, got %d:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[7], "millisecond") || !strings.HasSuffix(lines[7], "10") {
		t.Fatalf("unexpected last row %q", lines[7])
	}
}

func TestShiftBeyondDurationRange(t *testing.T) {
	out, _, err := run(t, "shift", "110000", "--unit", "day", "--direction", "earlier", "--from", "2024-07-09", "--json")
	if err != nil {
		t.Fatalf("shift: %v", err)
	}
	var res shiftResult
	decode(t, out, &res)
	if res.Result.ISO != "1723-05-09T00:00:00.000Z" {
		t.Fatalf("result = %s, want 1723-05-09T00:00:00.000Z", res.Result.ISO)
	}
	if res.From.Millis-res.Result.Millis != 110_000*86_400_000 {
		t.Fatalf("moved %dms", res.From.Millis-res.Result.Millis)
	}
}

func TestShiftNegativeMagnitudeAfterTerminator(t *testing.T) {
	out, _, err := run(t, "shift", "--unit", "day", "--from", "2024-07-09", "--json", "--", "-3")
	if err != nil {
		t.Fatalf("shift: %v", err)
	}
	var res shiftResult
	decode(t, out, &res)
	if res.Result.ISO != "2024-07-06T00:00:00.000Z" {
		t.Fatalf("result = %s, want 2024-07-06", res.Result.ISO)
	}

	out, _, err = run(t, "shift", "--from", "2024-07-09", "--json", "--", "-2 hours earlier")
	if err != nil {
		t.Fatalf("shift phrase: %v", err)
	}
	decode(t, out, &res)
	if res.Result.ISO != "2024-07-09T02:00:00.000Z" {
		t.Fatalf("result = %s, want 2024-07-09T02:00", res.Result.ISO)
	}
}

func TestDiffElapsedAcrossCenturies(t *testing.T) {
	out, _, err := run(t, "diff", "1500-01-01", "2500-01-01", "--json")
	if err != nil {
		t.Fatalf("diff: %v", err)
	}
	var res diffResult
	decode(t, out, &res)
	if res.Days != 365_243 {
		t.Fatalf("days = %d, want 365243", res.Days)
	}
	if res.Elapsed != "8765832h:00m:00s" {
		t.Fatalf("elapsed = %q, want 8765832h:00m:00s", res.Elapsed)
	}
}

func TestRelativeDayAcrossShortDSTDay(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("LoadLocation: %v", err)
	}
	// 2024-03-10 is 23 hours long in New York.
	today := time.Date(2024, time.March, 11, 0, 0, 0, 0, ny)
	day := time.Date(2024, time.March, 10, 0, 0, 0, 0, ny)

	if got := relativeDay(day, today); got != "yesterday" {
		t.Fatalf("relativeDay(2024-03-10) = %q, want yesterday", got)
	}
	if got := relativeDay(today, day); got != "tomorrow" {
		t.Fatalf("relativeDay(2024-03-11) = %q, want tomorrow", got)
	}
	if got := relativeDay(today, today); got != "today" {
		t.Fatalf("relativeDay(today) = %q, want today", got)
	}
}
