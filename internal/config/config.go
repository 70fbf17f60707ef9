// Package config handles persistent user configuration for vibefuse.
//
// Configuration is stored as JSON at ~/.config/vibefuse/config.json (or the
// platform-equivalent path returned by os.UserConfigDir). A few keys can be
// overridden per invocation through the environment, optionally populated
// from a .env file in the working directory.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

const (
	appDir   = "vibefuse"
	fileName = "config.json"
)

// Environment variables that override the file for a single invocation.
const (
	EnvStorage  = "VIBEFUSE_STORAGE"
	EnvLogLevel = "VIBEFUSE_LOG_LEVEL"
)

// Defaults applied when a key is not set.
const (
	DefaultStorage      = "sqlite"
	DefaultLogLevel     = "warn"
	DefaultPreviewWidth = 48
)

// pathOverride, when non-empty, replaces the default config file path.
// Intended for testing. Use SetPath / ResetPath to manage.
var pathOverride string

// SetPath overrides the config file path. Intended for testing.
func SetPath(p string) { pathOverride = p }

// ResetPath clears the path override, reverting to the default. Intended for testing.
func ResetPath() { pathOverride = "" }

// Config holds user preferences that persist across invocations.
type Config struct {
	Storage      string `json:"storage,omitempty"`
	LogLevel     string `json:"log_level,omitempty"`
	PreviewWidth int    `json:"preview_width,omitempty"`
	Animate      *bool  `json:"animate,omitempty"`
}

// Path returns the absolute path to the config file.
// If SetPath has been called, that value is returned instead.
// Otherwise it uses os.UserConfigDir which resolves to
// ~/Library/Application Support on macOS, ~/.config on Linux, and
// %AppData% on Windows.
func Path() (string, error) {
	if pathOverride != "" {
		return pathOverride, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config: unable to determine config directory: %w", err)
	}
	return filepath.Join(base, appDir, fileName), nil
}

// LoadDotEnv reads .env from the working directory into the process
// environment. Variables already set win. A missing file is not an error.
func LoadDotEnv() error {
	err := godotenv.Load()
	if err != nil && errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// Load reads the config file from disk and returns the parsed Config.
// If the file does not exist, a zero-value Config is returned (not an error).
func Load() (*Config, error) {
	return loadFrom("")
}

// loadFrom reads the config from the given path. If path is empty, the
// default Path() is used. Exported only for testing via LoadFrom.
func loadFrom(path string) (*Config, error) {
	if path == "" {
		var err error
		path, err = Path()
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("config: failed to read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}

	return &cfg, nil
}

// Save writes the config to disk, creating the parent directory if needed.
func (c *Config) Save() error {
	return c.saveTo("")
}

// saveTo writes the config to the given path. If path is empty, the
// default Path() is used.
func (c *Config) saveTo(path string) error {
	if path == "" {
		var err error
		path, err = Path()
		if err != nil {
			return err
		}
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("config: failed to create directory %s: %w", dir, err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("config: failed to marshal config: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: failed to write %s: %w", path, err)
	}

	return nil
}

// LoadFrom reads the config from the given path. Intended for testing.
func LoadFrom(path string) (*Config, error) {
	return loadFrom(path)
}

// SaveTo writes the config to the given path. Intended for testing.
func (c *Config) SaveTo(path string) error {
	return c.saveTo(path)
}

// WithEnv returns a copy of c with environment overrides applied. lookup is
// usually os.LookupEnv. The result is meant for reading; saving it would
// persist the overrides.
func (c *Config) WithEnv(lookup func(string) (string, bool)) *Config {
	out := *c
	if v, ok := lookup(EnvStorage); ok && v != "" {
		out.Storage = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		out.LogLevel = v
	}
	return &out
}

// StorageBackend returns the configured backend or DefaultStorage.
func (c *Config) StorageBackend() string {
	if c.Storage == "" {
		return DefaultStorage
	}
	return c.Storage
}

// Level returns the configured log level or DefaultLogLevel.
func (c *Config) Level() string {
	if c.LogLevel == "" {
		return DefaultLogLevel
	}
	return c.LogLevel
}

// Width returns the preview width in cells or DefaultPreviewWidth.
func (c *Config) Width() int {
	if c.PreviewWidth <= 0 {
		return DefaultPreviewWidth
	}
	return c.PreviewWidth
}

// AnimateByDefault reports whether new sessions start animated. Unset means true.
func (c *Config) AnimateByDefault() bool {
	if c.Animate == nil {
		return true
	}
	return *c.Animate
}
