// Package config handles global funtime configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/BurntSushi/toml"

	"github.com/aidanlsb/funtime/internal/dates"
)

// Config represents the global funtime configuration.
type Config struct {
	// Pattern is the default strftime pattern for format and parse.
	Pattern string `toml:"pattern"`

	// Timezone is the IANA zone used to decompose instants into calendar
	// fields. Empty or "Local" means the system zone.
	Timezone string `toml:"timezone"`

	// Log controls diagnostic output on stderr.
	Log LogConfig `toml:"log"`

	// UI controls optional CLI theming preferences.
	UI UIConfig `toml:"ui"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// UIConfig represents optional CLI theming preferences.
type UIConfig struct {
	// Accent is an optional accent color for CLI output and markdown rendering.
	// Supported values are ANSI color codes ("0" to "255") or hex colors ("#RRGGBB").
	Accent string `toml:"accent"`
}

// GetPattern returns the configured pattern, falling back to dates.DefaultPattern.
func (c *Config) GetPattern() string {
	if c == nil || strings.TrimSpace(c.Pattern) == "" {
		return dates.DefaultPattern
	}
	return c.Pattern
}

// Location resolves Timezone.
func (c *Config) Location() (*time.Location, error) {
	name := ""
	if c != nil {
		name = strings.TrimSpace(c.Timezone)
	}
	return LoadLocation(name)
}

// LoadLocation resolves a zone name; empty and "local" mean time.Local.
func LoadLocation(name string) (*time.Location, error) {
	if name == "" || strings.EqualFold(name, "local") {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("unknown timezone %q: %w", name, err)
	}
	return loc, nil
}

// Validate checks every field that has a constrained value set.
func (c *Config) Validate() error {
	if _, err := c.Location(); err != nil {
		return err
	}
	switch strings.ToLower(strings.TrimSpace(c.Log.Level)) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log.level %q (use debug, info, warn or error)", c.Log.Level)
	}
	switch strings.ToLower(strings.TrimSpace(c.Log.Format)) {
	case "", "text", "json":
	default:
		return fmt.Errorf("invalid log.format %q (use text or json)", c.Log.Format)
	}
	return nil
}

// settable maps dotted keys to field pointers.
func (c *Config) settable() map[string]*string {
	return map[string]*string{
		"pattern":    &c.Pattern,
		"timezone":   &c.Timezone,
		"log.level":  &c.Log.Level,
		"log.format": &c.Log.Format,
		"ui.accent":  &c.UI.Accent,
	}
}

// Keys lists the keys accepted by Get and Set.
func Keys() []string {
	keys := make([]string, 0, 5)
	for k := range (&Config{}).settable() {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Get returns the raw value of a dotted key.
func (c *Config) Get(key string) (string, error) {
	field, ok := c.settable()[strings.ToLower(strings.TrimSpace(key))]
	if !ok {
		return "", fmt.Errorf("unknown config key %q (valid: %s)", key, strings.Join(Keys(), ", "))
	}
	return *field, nil
}

// Set assigns a dotted key and validates the result. On failure c is left
// unchanged.
func (c *Config) Set(key, value string) error {
	field, ok := c.settable()[strings.ToLower(strings.TrimSpace(key))]
	if !ok {
		return fmt.Errorf("unknown config key %q (valid: %s)", key, strings.Join(Keys(), ", "))
	}
	prev := *field
	*field = strings.TrimSpace(value)
	if err := c.Validate(); err != nil {
		*field = prev
		return err
	}
	return nil
}

// Load loads the configuration from the default location.
// Returns a default config if the file doesn't exist.
func Load() (*Config, error) {
	configPath := DefaultPath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return &Config{}, nil
	}

	return LoadFrom(configPath)
}

// LoadFrom loads the configuration from a specific path.
func LoadFrom(path string) (*Config, error) {
	var config Config
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &config, nil
}

// ResolveConfigPath returns the explicit path when set, else DefaultPath.
func ResolveConfigPath(explicit string) string {
	if p := strings.TrimSpace(explicit); p != "" {
		return p
	}
	return DefaultPath()
}

// DefaultPath returns the default config file path.
// Checks ~/.config/funtime/config.toml first (XDG style),
// then falls back to OS-specific location.
func DefaultPath() string {
	if xdgPath, err := XDGPath(); err == nil {
		if _, err := os.Stat(xdgPath); err == nil {
			return xdgPath
		}
	}

	if configDir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(configDir, "funtime", "config.toml")
	}

	// Last resort fallback
	return filepath.Join(".", "config.toml")
}

// XDGPath returns the XDG-style config path (~/.config/funtime/config.toml).
func XDGPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "funtime", "config.toml"), nil
}

const defaultConfig = `# funtime configuration

# Default strftime pattern for 'ftm format' and 'ftm parse'
# pattern = "%Y-%m-%d %H:%M:%S"

# Zone used to split instants into calendar fields (IANA name or "Local")
# timezone = "Local"

# Diagnostics on stderr
# [log]
# level = "warn"
# format = "text"

# Optional UI accent color for headers in terminal output.
# Supports ANSI color codes (0-255) or hex (#RRGGBB).
# [ui]
# accent = "39"
`

// CreateDefault writes a commented default config to path if nothing exists
// there yet, and returns whether a file was created.
func CreateDefault(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, []byte(defaultConfig), 0o644); err != nil {
		return false, fmt.Errorf("failed to write config file: %w", err)
	}

	return true, nil
}
