package tui

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/fluxoryn/vibe-fuse/internal/config"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

func newTestConfigView(t *testing.T) configViewModel {
	t.Helper()
	config.SetPath(filepath.Join(t.TempDir(), "config.json"))
	t.Cleanup(config.ResetPath)

	m := newConfigViewModel(&config.Config{})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return next.(configViewModel)
}

func updateConfigView(t *testing.T, m configViewModel, msg tea.Msg) (configViewModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(configViewModel), cmd
}

func TestConfigView_ShowsDefaults(t *testing.T) {
	m := newTestConfigView(t)
	view := ansi.Strip(m.View())
	for _, name := range config.KeyNames() {
		if !strings.Contains(view, name) {
			t.Errorf("view missing key %q", name)
		}
	}
	if !strings.Contains(view, "(default)") {
		t.Error("expected unset keys to show (default)")
	}
}

func TestConfigView_RejectsInvalidValue(t *testing.T) {
	m := newTestConfigView(t)

	m, _ = updateConfigView(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("e")})
	if !m.editing {
		t.Fatal("expected edit mode")
	}
	m.editor.SetValue("s3")
	m, cmd := updateConfigView(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if cmd != nil {
		t.Error("expected no save for invalid value")
	}
	if !m.isError || !strings.Contains(m.status, "unknown storage backend") {
		t.Errorf("unexpected status %q (isError=%v)", m.status, m.isError)
	}
	if m.cfg.Storage != "" {
		t.Errorf("Storage = %q, want unset", m.cfg.Storage)
	}
}

func TestConfigView_SavesValidValue(t *testing.T) {
	m := newTestConfigView(t)

	// Move to log-level.
	m, _ = updateConfigView(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	m, _ = updateConfigView(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m.editor.SetValue(" DEBUG ")
	m, cmd := updateConfigView(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected save command")
	}

	msg := cmd()
	if _, ok := msg.(configSavedMsg); !ok {
		t.Fatalf("expected configSavedMsg, got %T", msg)
	}
	m, _ = updateConfigView(t, m, msg)
	if m.editing || m.status != "Configuration saved" {
		t.Errorf("unexpected state editing=%v status=%q", m.editing, m.status)
	}

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
}
