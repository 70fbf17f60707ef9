package config

import (
	"strings"
	"testing"

	"github.com/fluxoryn/vibe-fuse/internal/config"
)

func TestGet_NotSetShowsDefault(t *testing.T) {
	setupTestConfig(t)

	stdout, stderr := execConfig(t, "get", "storage")

	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	if !strings.Contains(stdout, "not set (default sqlite)") {
		t.Errorf("expected default hint, got: %s", stdout)
	}
}

func TestGet_Set(t *testing.T) {
	path := setupTestConfig(t)

	cfg := &config.Config{Storage: "file"}
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	stdout, stderr := execConfig(t, "get", "--key", "storage")

	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	if strings.TrimSpace(stdout) != "file" {
		t.Errorf("expected 'file', got: %s", stdout)
	}
}

func TestGet_ListsAllWhenNotTerminal(t *testing.T) {
	path := setupTestConfig(t)
	cfg := &config.Config{PreviewWidth: 30}
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	stdout, _ := execConfig(t, "get")

	for _, want := range []string{"storage: not set (default sqlite)", "preview-width: 30", "animate: not set (default true)"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("output missing %q:\n%s", want, stdout)
		}
	}
}

func TestGet_UnknownKey(t *testing.T) {
	setupTestConfig(t)

	_, stderr := execConfig(t, "get", "bogus-key")

	if !strings.Contains(stderr, "unknown configuration key") {
		t.Errorf("expected 'unknown configuration key' error, got: %s", stderr)
	}
}
