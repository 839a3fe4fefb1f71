package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/aidanlsb/funtime/internal/logging"
)

var fixedNow = time.Date(2024, time.July, 9, 13, 45, 27, 123_000_000, time.UTC)

// run executes the root command in-process with a fixed clock, UTC and a
// throwaway config file unless the caller passes its own.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	prevOut, prevErr, prevNow := stdout, stderr, nowFunc
	stdout, stderr = &out, &errOut
	nowFunc = func() time.Time { return fixedNow }
	t.Cleanup(func() {
		stdout, stderr, nowFunc = prevOut, prevErr, prevNow
		resetState()
	})
	resetState()

	var defaults []string
	if !hasFlag(args, "--config") {
		defaults = append(defaults, "--config", filepath.Join(t.TempDir(), "config.toml"))
	}
	if !hasFlag(args, "--tz") {
		defaults = append(defaults, "--tz", "UTC")
	}
	args = withFlags(args, defaults)

	rootCmd.SetArgs(args)
	err := Execute()
	return out.String(), errOut.String(), err
}

// withFlags appends flags ahead of any "--" terminator.
func withFlags(args, flags []string) []string {
	for i, a := range args {
		if a == "--" {
			out := append(append(append([]string{}, args[:i]...), flags...), args[i:]...)
			return out
		}
	}
	return append(args, flags...)
}

func hasFlag(args []string, name string) bool {
	for _, a := range args {
		if a == name {
			return true
		}
	}
	return false
}

func resetState() {
	resetFlags(rootCmd)
	jsonOutput = false
	resolvedConfigPath = ""
	cfg = nil
	loc = nil
	logger = logging.Discard()
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

type envelope struct {
	OK       bool            `json:"ok"`
	Data     json.RawMessage `json:"data"`
	Error    *ErrorInfo      `json:"error"`
	Warnings []Warning       `json:"warnings"`
}

func decode(t *testing.T, out string, data interface{}) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal([]byte(out), &env); err != nil {
		t.Fatalf("expected JSON output, got parse error: %v; out=%s", err, out)
	}
	if data != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, data); err != nil {
			t.Fatalf("failed to decode data: %v; out=%s", err, out)
		}
	}
	return env
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
