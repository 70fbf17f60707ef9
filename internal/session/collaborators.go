package session

import (
	"context"
	"errors"

	"github.com/fluxoryn/vibe-fuse/internal/history"
)

// Renderer draws the active vibe. It is called after every generate,
// apply, and animation toggle that has something to show.
type Renderer interface {
	Render(v Vibe, animated bool)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(v Vibe, animated bool)

func (f RendererFunc) Render(v Vibe, animated bool) { f(v, animated) }

// Clipboard receives copied CSS.
type Clipboard interface {
	WriteText(text string) error
}

// Confirmer asks the user to approve a destructive action. Returning false
// aborts the action with no side effects.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(ctx context.Context, prompt string) (bool, error)

func (f ConfirmFunc) Confirm(ctx context.Context, prompt string) (bool, error) {
	return f(ctx, prompt)
}

// Always is a Confirmer that answers every prompt with answer.
type Always bool

func (a Always) Confirm(context.Context, string) (bool, error) { return bool(a), nil }

// Recorder receives history entries for completed actions.
type Recorder interface {
	Save(entry *history.Entry) error
}

var errNoClipboard = errors.New("no clipboard available")

type nopRenderer struct{}

func (nopRenderer) Render(Vibe, bool) {}

type noClipboard struct{}

func (noClipboard) WriteText(string) error { return errNoClipboard }

type nopRecorder struct{}

func (nopRecorder) Save(*history.Entry) error { return nil }
