package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fluxoryn/vibe-fuse/internal/kvstore"
	"github.com/fluxoryn/vibe-fuse/internal/logging"
)

// KeySpec describes a single configuration key.
type KeySpec struct {
	// Name is the CLI-facing key name (e.g. "storage").
	Name string

	// Description is a short human-readable explanation shown in help text.
	Description string

	// Get returns the current value for this key from a loaded Config.
	// Unset keys return "".
	Get func(cfg *Config) string

	// Set applies a value for this key to the given Config (in memory only;
	// the caller is responsible for calling Save). Values are expected to
	// have passed validation; unparseable input clears the key.
	Set func(cfg *Config, value string)

	// Validate rejects values Set cannot represent. Nil accepts anything.
	Validate func(value string) error
}

// Keys is the authoritative list of all supported configuration keys.
// To add a new option: add a field to Config and append a KeySpec here.
var Keys = []KeySpec{
	{
		Name:        "storage",
		Description: "Where presets are kept: sqlite (default), file, or keyring",
		Get:         func(cfg *Config) string { return cfg.Storage },
		Set:         func(cfg *Config, v string) { cfg.Storage = v },
		Validate:    validateStorage,
	},
	{
		Name:        "log-level",
		Description: "Diagnostics written to stderr: debug, info, warn (default), error",
		Get:         func(cfg *Config) string { return cfg.LogLevel },
		Set:         func(cfg *Config, v string) { cfg.LogLevel = v },
		Validate: func(v string) error {
			_, err := logging.ParseLevel(v)
			return err
		},
	},
	{
		Name:        "preview-width",
		Description: "Width of the gradient preview in terminal cells (default 48)",
		Get: func(cfg *Config) string {
			if cfg.PreviewWidth <= 0 {
				return ""
			}
			return strconv.Itoa(cfg.PreviewWidth)
		},
		Set: func(cfg *Config, v string) {
			n, err := strconv.Atoi(v)
			if err != nil || n <= 0 {
				cfg.PreviewWidth = 0
				return
			}
			cfg.PreviewWidth = n
		},
		Validate: func(v string) error {
			n, err := strconv.Atoi(v)
			if err != nil || n < 8 || n > 400 {
				return fmt.Errorf("preview width must be a whole number between 8 and 400, got %q", v)
			}
			return nil
		},
	},
	{
		Name:        "animate",
		Description: "Whether new vibes start animated: true (default) or false",
		Get: func(cfg *Config) string {
			if cfg.Animate == nil {
				return ""
			}
			return strconv.FormatBool(*cfg.Animate)
		},
		Set: func(cfg *Config, v string) {
			b, err := strconv.ParseBool(v)
			if err != nil {
				cfg.Animate = nil
				return
			}
			cfg.Animate = &b
		},
		Validate: func(v string) error {
			if _, err := strconv.ParseBool(v); err != nil {
				return fmt.Errorf("animate must be true or false, got %q", v)
			}
			return nil
		},
	},
}

func validateStorage(v string) error {
	if !kvstore.ValidBackend(v) {
		return fmt.Errorf("unknown storage backend %q (valid: %s)", v, strings.Join(kvstore.Backends(), ", "))
	}
	return nil
}

// Check validates value against the key's validator, if it has one.
func (k *KeySpec) Check(value string) error {
	if k.Validate == nil {
		return nil
	}
	return k.Validate(value)
}

// Lookup returns the KeySpec for the given name, or nil if not found.
// The name is matched case-insensitively after trimming whitespace.
func Lookup(name string) *KeySpec {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for i := range Keys {
		if Keys[i].Name == normalized {
			return &Keys[i]
		}
	}
	return nil
}

// KeyNames returns the names of all registered keys.
func KeyNames() []string {
	names := make([]string, len(Keys))
	for i, k := range Keys {
		names[i] = k.Name
	}
	return names
}

// KeysHelp builds a formatted block listing all available keys and their
// descriptions, suitable for inclusion in Cobra Long help text.
func KeysHelp() string {
	if len(Keys) == 0 {
		return ""
	}

	// Find the longest key name for alignment.
	maxLen := 0
	for _, k := range Keys {
		if len(k.Name) > maxLen {
			maxLen = len(k.Name)
		}
	}

	var b strings.Builder
	b.WriteString("Available keys:\n")
	for _, k := range Keys {
		fmt.Fprintf(&b, "  %-*s   %s\n", maxLen, k.Name, k.Description)
	}
	return b.String()
}
