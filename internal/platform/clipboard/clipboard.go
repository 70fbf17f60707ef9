// Package clipboard adapts the system clipboard to the session's Clipboard
// collaborator.
package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

// ErrUnsupported is returned when no clipboard utility is available, for
// example on a headless Linux host without xclip, xsel or wl-copy.
var ErrUnsupported = errors.New("clipboard unavailable on this system")

// System writes to the OS clipboard.
type System struct{}

// Available reports whether a clipboard backend was found.
func (System) Available() bool { return !clipboard.Unsupported }

// WriteText replaces the clipboard contents with text.
func (s System) WriteText(text string) error {
	if !s.Available() {
		return ErrUnsupported
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("clipboard: %w", err)
	}
	return nil
}

// Func adapts a plain function, typically a test fake.
type Func func(text string) error

// WriteText calls f(text).
func (f Func) WriteText(text string) error { return f(text) }
