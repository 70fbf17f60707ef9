// Package session holds the active vibe and mediates between the color
// generator, the preset store, and the UI collaborators (renderer,
// clipboard, confirmation prompts).
//
// A Session is plain state: the current vibe (if any) and the animated
// flag. It is not safe for concurrent use; callers run one action at a
// time.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/fluxoryn/vibe-fuse/internal/history"
	"github.com/fluxoryn/vibe-fuse/internal/logging"
	"github.com/fluxoryn/vibe-fuse/internal/preset"
	"github.com/fluxoryn/vibe-fuse/internal/vibe"
)

var (
	// ErrNoCurrentVibe is returned by actions that need a generated or
	// applied vibe when there is none.
	ErrNoCurrentVibe = errors.New("generate a vibe first")

	// ErrClipboardWrite wraps clipboard failures. Copies are not retried.
	ErrClipboardWrite = errors.New("copy failed")
)

// OverwritePrompt is asked before replacing a preset with the same mood.
const OverwritePrompt = "A preset with that mood exists. Overwrite?"

// DefaultLabel is shown on the preview when the mood is empty.
const DefaultLabel = "VIBE"

// Vibe is the active mood and its palette. It is not persisted until saved.
type Vibe struct {
	Mood   string
	Colors vibe.Palette
}

// Label returns the preview caption: the mood uppercased, or DefaultLabel.
func (v Vibe) Label() string {
	if vibe.Trim(v.Mood) == "" {
		return DefaultLabel
	}
	return vibe.Upper(v.Mood)
}

// Session is the active vibe plus the global animation toggle.
type Session struct {
	store     *preset.Store
	renderer  Renderer
	clipboard Clipboard
	confirmer Confirmer
	recorder  Recorder
	logger    *slog.Logger

	current  *Vibe
	animated bool
}

// Option configures a Session.
type Option func(*Session)

// WithRenderer sets the preview renderer.
func WithRenderer(r Renderer) Option { return func(s *Session) { s.renderer = r } }

// WithClipboard sets the clipboard used by CopyCSS.
func WithClipboard(c Clipboard) Option { return func(s *Session) { s.clipboard = c } }

// WithConfirmer sets the confirmation prompt. Without one every
// destructive action is declined.
func WithConfirmer(c Confirmer) Option { return func(s *Session) { s.confirmer = c } }

// WithRecorder sets where completed actions are recorded.
func WithRecorder(r Recorder) Option { return func(s *Session) { s.recorder = r } }

// WithLogger sets the logger used for best-effort failures.
func WithLogger(l *slog.Logger) Option { return func(s *Session) { s.logger = l } }

// WithAnimated sets the initial animation flag (default true).
func WithAnimated(animated bool) Option { return func(s *Session) { s.animated = animated } }

// New returns a session over store with nothing generated yet.
func New(store *preset.Store, opts ...Option) *Session {
	s := &Session{
		store:     store,
		renderer:  nopRenderer{},
		clipboard: noClipboard{},
		confirmer: Always(false),
		recorder:  nopRecorder{},
		logger:    logging.Discard(),
		animated:  true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Current returns the active vibe, if any.
func (s *Session) Current() (Vibe, bool) {
	if s.current == nil {
		return Vibe{}, false
	}
	return *s.current, true
}

// Animated reports the animation flag.
func (s *Session) Animated() bool { return s.animated }

// Store returns the preset store backing the session.
func (s *Session) Store() *preset.Store { return s.store }

// CSS returns the declarations for the active vibe, one per line, or ""
// when nothing is active.
func (s *Session) CSS() string {
	if s.current == nil {
		return ""
	}
	return strings.Join(s.current.Colors.Declarations(s.animated), "\n")
}

// Generate derives a palette from moodText, makes it current, and renders
// it with the current animation flag.
func (s *Session) Generate(moodText string) vibe.Palette {
	mood := vibe.Trim(moodText)
	colors := vibe.FromMood(mood)
	s.current = &Vibe{Mood: mood, Colors: colors}
	s.render()
	return colors
}

// ToggleAnimate flips the animation flag and re-renders the current vibe,
// if there is one. It returns the new flag.
func (s *Session) ToggleAnimate() bool {
	s.animated = !s.animated
	s.render()
	return s.animated
}

// ApplyPreset makes p current, adopts its animation flag, and renders it.
func (s *Session) ApplyPreset(p preset.Preset) {
	s.current = &Vibe{Mood: p.Mood, Colors: p.Colors}
	s.animated = p.Animated
	s.render()
}

// SaveCurrentAsPreset upserts the current vibe with the current animation
// flag. If the mood already has a preset the Confirmer is asked first;
// declining returns preset.ErrDeclined and changes nothing.
func (s *Session) SaveCurrentAsPreset(ctx context.Context) (preset.Preset, error) {
	if s.current == nil {
		return preset.Preset{}, ErrNoCurrentVibe
	}

	p := preset.Preset{Mood: s.current.Mood, Colors: s.current.Colors, Animated: s.animated}
	action := history.ActionSave

	err := s.store.Upsert(p, false)
	if errors.Is(err, preset.ErrPresetExists) {
		ok, cerr := s.confirmer.Confirm(ctx, OverwritePrompt)
		if cerr != nil {
			return preset.Preset{}, cerr
		}
		if !ok {
			return preset.Preset{}, preset.ErrDeclined
		}
		action = history.ActionOverwrite
		err = s.store.Upsert(p, true)
	}
	if err != nil {
		return preset.Preset{}, err
	}

	s.record(action, p.Mood, "")
	return p, nil
}

// RemovePreset deletes the preset at index after the Confirmer approves.
func (s *Session) RemovePreset(ctx context.Context, index int) (preset.Preset, error) {
	list := s.store.Load()
	if index < 0 || index >= len(list) {
		return preset.Preset{}, fmt.Errorf("session: index %d (have %d): %w", index, len(list), preset.ErrIndexOutOfRange)
	}

	ok, err := s.confirmer.Confirm(ctx, fmt.Sprintf("Remove preset %q?", list[index].Label(index)))
	if err != nil {
		return preset.Preset{}, err
	}

	removed, err := s.store.Remove(index, ok)
	if err != nil {
		return preset.Preset{}, err
	}

	s.record(history.ActionRemove, removed.Mood, "")
	return removed, nil
}

// CopyCSS writes the current declaration and the generated-by comment to
// the clipboard and returns the copied text.
func (s *Session) CopyCSS(ctx context.Context) (string, error) {
	if s.current == nil {
		return "", ErrNoCurrentVibe
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	text := s.current.Colors.ClipboardText()
	if err := s.clipboard.WriteText(text); err != nil {
		return "", fmt.Errorf("%w: %v", ErrClipboardWrite, err)
	}

	s.record(history.ActionCopy, s.current.Mood, "")
	return text, nil
}

// Presets returns the stored presets, most recent first.
func (s *Session) Presets() []preset.Preset {
	return s.store.Load()
}

// Export returns the export document for all stored presets.
func (s *Session) Export(now time.Time) ([]byte, error) {
	data, err := s.store.ExportAll(now)
	if err != nil {
		return nil, err
	}
	s.record(history.ActionExport, "", fmt.Sprintf("%d preset(s)", len(s.store.Load())))
	return data, nil
}

// Import merges the presets in data ahead of the stored ones.
func (s *Session) Import(data []byte) (preset.ImportResult, error) {
	res, err := s.store.ImportMerge(data)
	if err != nil {
		return preset.ImportResult{}, err
	}
	s.record(history.ActionImport, "", fmt.Sprintf("%d imported, %d dropped", res.Imported, res.Dropped))
	return res, nil
}

func (s *Session) render() {
	if s.current == nil {
		return
	}
	s.renderer.Render(*s.current, s.animated)
}

func (s *Session) record(action, mood, detail string) {
	entry := &history.Entry{Action: action, Mood: mood, Detail: detail}
	if err := s.recorder.Save(entry); err != nil {
		s.logger.Debug("failed to record history", "action", action, "error", err)
	}
}
