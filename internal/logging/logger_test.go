package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestNewLoggerDefaultsToWarn(t *testing.T) {
	logger := NewLogger(Config{})
	if logger == nil {
		t.Fatal("expected logger to be non-nil")
	}
	if logger.Enabled(context.Background(), slog.LevelInfo) {
		t.Fatal("expected info level to be disabled by default")
	}
	if !logger.Enabled(context.Background(), slog.LevelWarn) {
		t.Fatal("expected warn level to be enabled by default")
	}
}

func TestNewLoggerDebugLevel(t *testing.T) {
	logger := NewLogger(Config{Level: "DEBUG"})
	if !logger.Enabled(context.Background(), slog.LevelDebug) {
		t.Fatal("expected debug level to be enabled")
	}
}

func TestNewLoggerJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Config{Format: "json", Level: "info", Output: &buf})
	logger.Info("resolved", FieldDays, 3)

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("expected JSON log line, got %q: %v", buf.String(), err)
	}
	if record["msg"] != "resolved" || record[FieldDays] != float64(3) {
		t.Fatalf("unexpected record: %v", record)
	}
}

func TestHelpersAreNilSafe(t *testing.T) {
	Debug(nil, "x")
	Warn(nil, "x")
	Error(nil, "x", errors.New("boom"))
}

func TestErrorAppendsErrorField(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Config{Output: &buf})
	Error(logger, "failed", errors.New("boom"))
	if !strings.Contains(buf.String(), "error=boom") {
		t.Fatalf("expected error field, got %q", buf.String())
	}
}

func TestDiscardDropsEverything(t *testing.T) {
	if Discard().Enabled(context.Background(), slog.LevelError) {
		t.Fatal("expected discard logger to drop errors")
	}
}

func TestWithCommon(t *testing.T) {
	attrs := WithCommon(nil, "diff", "v1")
	if len(attrs) != 2 || attrs[0].Key != FieldCommand || attrs[1].Value.String() != "v1" {
		t.Fatalf("unexpected attrs: %+v", attrs)
	}
	attrs = WithCommon([]slog.Attr{slog.String("existing", "x")}, "", "")
	if len(attrs) != 1 || attrs[0].Key != "existing" {
		t.Fatalf("expected original attrs preserved, got %+v", attrs)
	}
}
