package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func boolPtr(b bool) *bool { return &b }

func TestLoad_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nonexistent", "config.json")

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(&Config{}, cfg); diff != "" {
		t.Errorf("expected zero config (-want +got):\n%s", diff)
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vibefuse", "config.json")

	want := &Config{Storage: "file", LogLevel: "debug", PreviewWidth: 64, Animate: boolPtr(false)}
	if err := want.SaveTo(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestSave_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "deep")
	path := filepath.Join(dir, "config.json")

	cfg := &Config{Storage: "sqlite"}
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected config file at %s: %v", path, err)
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json}"), 0o644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	_, err := LoadFrom(path)
	if err == nil {
		t.Fatal("expected error for invalid JSON, got nil")
	}
}

func TestSave_OverwritesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	first := &Config{Storage: "file"}
	if err := first.SaveTo(path); err != nil {
		t.Fatalf("first Save failed: %v", err)
	}

	second := &Config{Storage: "keyring"}
	if err := second.SaveTo(path); err != nil {
		t.Fatalf("second Save failed: %v", err)
	}

	got, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if got.Storage != "keyring" {
		t.Errorf("expected Storage %q, got %q", "keyring", got.Storage)
	}
}

func TestPath_Override(t *testing.T) {
	SetPath("/tmp/elsewhere/config.json")
	t.Cleanup(ResetPath)

	got, err := Path()
	if err != nil {
		t.Fatalf("Path failed: %v", err)
	}
	if got != "/tmp/elsewhere/config.json" {
		t.Errorf("Path() = %q", got)
	}
}

func TestDefaults(t *testing.T) {
	cfg := &Config{}
	if got := cfg.StorageBackend(); got != DefaultStorage {
		t.Errorf("StorageBackend() = %q, want %q", got, DefaultStorage)
	}
	if got := cfg.Level(); got != DefaultLogLevel {
		t.Errorf("Level() = %q, want %q", got, DefaultLogLevel)
	}
	if got := cfg.Width(); got != DefaultPreviewWidth {
		t.Errorf("Width() = %d, want %d", got, DefaultPreviewWidth)
	}
	if !cfg.AnimateByDefault() {
		t.Error("expected AnimateByDefault() to be true when unset")
	}

	cfg = &Config{Storage: "file", LogLevel: "debug", PreviewWidth: 20, Animate: boolPtr(false)}
	if cfg.StorageBackend() != "file" || cfg.Level() != "debug" || cfg.Width() != 20 || cfg.AnimateByDefault() {
		t.Errorf("explicit values not honored: %+v", cfg)
	}
}

func TestWithEnv(t *testing.T) {
	env := map[string]string{
		EnvStorage:  "keyring",
		EnvLogLevel: "",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	base := &Config{Storage: "file", LogLevel: "info"}
	got := base.WithEnv(lookup)

	want := &Config{Storage: "keyring", LogLevel: "info"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("WithEnv mismatch (-want +got):\n%s", diff)
	}
	if base.Storage != "file" {
		t.Errorf("WithEnv modified the receiver: %+v", base)
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	// No .env is fine.
	if err := LoadDotEnv(); err != nil {
		t.Fatalf("LoadDotEnv without file: %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(EnvLogLevel+"=debug\n"), 0o644); err != nil {
		t.Fatalf("failed to write .env: %v", err)
	}
	t.Setenv(EnvLogLevel, "")
	os.Unsetenv(EnvLogLevel)

	if err := LoadDotEnv(); err != nil {
		t.Fatalf("LoadDotEnv: %v", err)
	}
	if got := os.Getenv(EnvLogLevel); got != "debug" {
		t.Errorf("%s = %q, want debug", EnvLogLevel, got)
	}
}
