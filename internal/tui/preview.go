package tui

import (
	"fmt"
	"io"

	"github.com/fluxoryn/vibe-fuse/internal/session"
	"github.com/fluxoryn/vibe-fuse/internal/tui/components"
	"github.com/fluxoryn/vibe-fuse/internal/tui/styles"
)

// PreviewHeight is the number of rows in a printed preview.
const PreviewHeight = 3

// Preview prints each rendered vibe to Out as a gradient block followed by
// a caption. It is the session renderer for non-interactive commands.
type Preview struct {
	Out   io.Writer
	Width int
}

// Render implements session.Renderer.
func (p Preview) Render(v session.Vibe, animated bool) {
	block := components.Gradient(v.Colors, p.Width, PreviewHeight, v.Label(), components.Static)
	fmt.Fprintln(p.Out, block)

	caption := fmt.Sprintf("%s → %s", v.Colors[0], v.Colors[1])
	if animated {
		caption += "  " + styles.AccentText.Render("animated")
	}
	fmt.Fprintln(p.Out, styles.MutedText.Render(caption))
}
