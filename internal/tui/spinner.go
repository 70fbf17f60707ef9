package tui

import (
	"context"
	"errors"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
)

// RunWithSpinner runs action behind a spinner on stderr. Cancelling the
// spinner returns ErrAborted.
func RunWithSpinner(ctx context.Context, title string, action func(ctx context.Context) error) error {
	accessible := os.Getenv("ACCESSIBLE") != ""

	err := spinner.New().
		Title(title).
		Accessible(accessible).
		Output(os.Stderr).
		Context(ctx).
		ActionWithErr(action).
		Run()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) || errors.Is(err, context.Canceled) {
			return ErrAborted
		}
		return err
	}
	return nil
}
