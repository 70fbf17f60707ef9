package tui

import (
	"context"
	"errors"
	"os"

	"github.com/fluxoryn/vibe-fuse/internal/session"
	"github.com/fluxoryn/vibe-fuse/internal/util"

	"github.com/charmbracelet/huh"
)

// ErrAborted is returned when a user cancels an interactive flow.
var ErrAborted = errors.New("aborted by user")

// FormConfirmer asks yes/no questions with a huh confirm field. Aborting
// the form counts as "no".
type FormConfirmer struct {
	Accessible bool
}

// NewFormConfirmer returns a FormConfirmer honoring the ACCESSIBLE
// environment variable.
func NewFormConfirmer() FormConfirmer {
	return FormConfirmer{Accessible: os.Getenv("ACCESSIBLE") != ""}
}

// Confirm shows prompt and reports the answer.
func (f FormConfirmer) Confirm(ctx context.Context, prompt string) (bool, error) {
	var ok bool
	field := huh.NewConfirm().
		Title(prompt).
		Affirmative("Yes").
		Negative("No").
		Value(&ok)

	if err := runForm(ctx, f.Accessible, huh.NewGroup(field)); err != nil {
		if errors.Is(err, ErrAborted) {
			return false, nil
		}
		return false, err
	}
	return ok, nil
}

// runForm creates and runs a huh.Form, translating ErrUserAborted to ErrAborted.
func runForm(ctx context.Context, accessible bool, groups ...*huh.Group) error {
	err := huh.NewForm(groups...).WithAccessible(accessible).RunWithContext(ctx)
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) || errors.Is(err, context.Canceled) {
			return ErrAborted
		}
		return err
	}
	return nil
}

// ConfirmerFor picks how a command asks for confirmation: yes approves
// everything, a terminal on in gets a form, anything else declines.
func ConfirmerFor(yes bool, in any) session.Confirmer {
	if yes {
		return session.Always(true)
	}
	if util.IsTerminal(in) {
		return NewFormConfirmer()
	}
	return session.Always(false)
}
