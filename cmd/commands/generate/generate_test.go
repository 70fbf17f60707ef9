package generate

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fluxoryn/vibe-fuse/internal/config"
	"github.com/fluxoryn/vibe-fuse/internal/database"
	"github.com/fluxoryn/vibe-fuse/internal/kvstore"
	"github.com/fluxoryn/vibe-fuse/internal/preset"
	"github.com/fluxoryn/vibe-fuse/internal/vibe"

	"github.com/google/go-cmp/cmp"
)

const calmOceanDecl = "background: linear-gradient(135deg, hsl(300 60% 55%), hsl(165 64% 44%));"

// setupWorkspace points config and the database at temp files.
func setupWorkspace(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	config.SetPath(filepath.Join(dir, "config.json"))
	t.Cleanup(config.ResetPath)
	database.SetPath(filepath.Join(dir, "vibefuse.db"))
	t.Cleanup(database.ResetPath)
	t.Setenv(config.EnvStorage, "")
	t.Setenv(config.EnvLogLevel, "")
}

// execGenerate runs the generate command with args and returns stdout and stderr.
func execGenerate(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	cmd := NewCommand()
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetIn(&bytes.Buffer{})
	cmd.SetArgs(args)
	err = cmd.Execute()
	return outBuf.String(), errBuf.String(), err
}

func storedPresets(t *testing.T) []preset.Preset {
	t.Helper()
	kv, err := kvstore.OpenSQLite()
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	defer kv.Close()
	return preset.NewStore(kv).Load()
}

func TestGenerate_Text(t *testing.T) {
	setupWorkspace(t)

	stdout, _, err := execGenerate(t, "Calm", "Ocean")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"CALM OCEAN", calmOceanDecl, vibe.AnimationRule} {
		if !strings.Contains(stdout, want) {
			t.Errorf("stdout missing %q:\n%s", want, stdout)
		}
	}
}

func TestGenerate_EmptyMoodIsNeutral(t *testing.T) {
	setupWorkspace(t)

	stdout, _, err := execGenerate(t, "--animate=false")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := vibe.FromMood("neutral").Declaration()
	if !strings.Contains(stdout, want) {
		t.Errorf("expected neutral declaration %q in:\n%s", want, stdout)
	}
	if strings.Contains(stdout, "animation:") {
		t.Error("expected static CSS with --animate=false")
	}
	if !strings.Contains(stdout, "VIBE") {
		t.Error("expected default label")
	}
}

func TestGenerate_JSON(t *testing.T) {
	setupWorkspace(t)

	stdout, _, err := execGenerate(t, "Calm Ocean", "-o", "json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got Result
	if err := json.Unmarshal([]byte(stdout), &got); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, stdout)
	}
	want := Result{
		Mood:     "Calm Ocean",
		Label:    "CALM OCEAN",
		Colors:   vibe.Palette{{Hue: 300, Saturation: 60, Lightness: 55}, {Hue: 165, Saturation: 64, Lightness: 44}},
		Animated: true,
		CSS:      vibe.FromMood("calm ocean").Declarations(true),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("result mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(stdout, `"hsl(300 60% 55%)"`) {
		t.Errorf("expected colors as hsl strings:\n%s", stdout)
	}
}

func TestGenerate_CSS(t *testing.T) {
	setupWorkspace(t)

	stdout, _, err := execGenerate(t, "sunset", "-o", "css", "--selector", "#hero", "--animate=false")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(stdout, "#hero {") {
		t.Errorf("expected selector block, got:\n%s", stdout)
	}
	if strings.Contains(stdout, "@keyframes") {
		t.Error("static stylesheet should not include keyframes")
	}
}

func TestGenerate_InvalidSelector(t *testing.T) {
	setupWorkspace(t)

	_, _, err := execGenerate(t, "sunset", "-o", "css", "--selector", "a { }")
	if err == nil || !strings.Contains(err.Error(), "invalid characters") {
		t.Fatalf("expected selector error, got %v", err)
	}
}

func TestGenerate_UnsupportedOutput(t *testing.T) {
	setupWorkspace(t)

	_, _, err := execGenerate(t, "sunset", "-o", "yaml")
	if err == nil || !strings.Contains(err.Error(), "unsupported output format") {
		t.Fatalf("expected output format error, got %v", err)
	}
}

func TestGenerate_SaveThenDeclineThenOverwrite(t *testing.T) {
	setupWorkspace(t)

	_, stderr, err := execGenerate(t, "calm", "--save")
	if err != nil {
		t.Fatalf("first save: %v", err)
	}
	if !strings.Contains(stderr, `Saved preset "calm"`) {
		t.Errorf("unexpected stderr: %s", stderr)
	}

	// Without a terminal and without --yes the overwrite is declined.
	_, stderr, err = execGenerate(t, "CALM", "--save", "--animate=false")
	if err != nil {
		t.Fatalf("declined save should not fail: %v", err)
	}
	if !strings.Contains(stderr, "Kept the existing preset") {
		t.Errorf("expected decline notice, got: %s", stderr)
	}
	list := storedPresets(t)
	if len(list) != 1 || !list[0].Animated || list[0].Mood != "calm" {
		t.Fatalf("unexpected presets after decline: %+v", list)
	}

	if _, _, err := execGenerate(t, "CALM", "--save", "--yes", "--animate=false"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	list = storedPresets(t)
	if len(list) != 1 || list[0].Animated || list[0].Mood != "CALM" {
		t.Errorf("unexpected presets after overwrite: %+v", list)
	}
}

func TestGenerate_UsesConfiguredAnimate(t *testing.T) {
	setupWorkspace(t)
	off := false
	if err := (&config.Config{Animate: &off}).Save(); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	stdout, _, err := execGenerate(t, "calm")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(stdout, "animation:") {
		t.Error("expected configured animate=false to apply")
	}
}
