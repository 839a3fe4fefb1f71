package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestEnv is an isolated config directory for running the ftm binary.
type TestEnv struct {
	t          *testing.T
	Dir        string
	ConfigPath string
	Timezone   string
}

// NewTestEnv creates an environment in a temp dir. The config file is not
// written until WithConfig is called.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()
	dir := t.TempDir()
	return &TestEnv{
		t:          t,
		Dir:        dir,
		ConfigPath: filepath.Join(dir, "config.toml"),
		Timezone:   "UTC",
	}
}

// WithConfig writes config.toml content.
func (e *TestEnv) WithConfig(content string) *TestEnv {
	e.t.Helper()
	if err := os.WriteFile(e.ConfigPath, []byte(content), 0o644); err != nil {
		e.t.Fatalf("failed to write config: %v", err)
	}
	return e
}

// WithTimezone sets the --tz value passed to every command.
func (e *TestEnv) WithTimezone(name string) *TestEnv {
	e.Timezone = name
	return e
}

// ReadConfig returns the config file content.
func (e *TestEnv) ReadConfig() string {
	e.t.Helper()
	content, err := os.ReadFile(e.ConfigPath)
	if err != nil {
		e.t.Fatalf("failed to read config: %v", err)
	}
	return string(content)
}

// AssertConfigContains fails the test if the config file does not contain substr.
func (e *TestEnv) AssertConfigContains(substr string) {
	e.t.Helper()
	content := e.ReadConfig()
	if !strings.Contains(content, substr) {
		e.t.Errorf("expected config to contain %q, got:\n%s", substr, content)
	}
}
