package studio

import (
	"errors"
	"fmt"
	"os"

	"github.com/fluxoryn/vibe-fuse/internal/platform/clipboard"
	"github.com/fluxoryn/vibe-fuse/internal/services/workspace"
	"github.com/fluxoryn/vibe-fuse/internal/tui"
	"github.com/fluxoryn/vibe-fuse/internal/util"

	"github.com/spf13/cobra"
)

// ErrNotTerminal is returned when the studio is started without a terminal.
var ErrNotTerminal = errors.New("the studio needs an interactive terminal (try 'vibefuse generate')")

// NewCommand returns the "studio" command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "studio",
		Short: "Open the interactive gradient studio",
		Long: `Open a full-screen studio: type a mood and press enter to see its gradient,
save and apply presets, toggle the animation and copy the CSS.

Keys:
  enter        generate (mood) / apply (presets)
  tab          switch between the mood input and the preset list
  ctrl+a       toggle animation
  ctrl+s       save the current vibe as a preset
  ctrl+y       copy the CSS declaration
  d            remove the selected preset
  esc / q      quit`,
		Args:         cobra.NoArgs,
		RunE:         Run,
		SilenceUsage: true,
	}

	cmd.Flags().Bool("animate", true, "Start with animation on (defaults to the animate config key)")

	return cmd
}

// Run opens the workspace and runs the studio until the user quits.
func Run(cmd *cobra.Command, _ []string) error {
	if !util.IsTerminal(os.Stdin) || !util.IsTerminal(os.Stdout) {
		return ErrNotTerminal
	}

	ws, err := workspace.Open(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer ws.Close()

	animated := ws.Config.AnimateByDefault()
	if f := cmd.Flags().Lookup("animate"); f != nil && f.Changed {
		animated, _ = cmd.Flags().GetBool("animate")
	}

	opts := tui.StudioOptions{
		Clipboard:    clipboard.System{},
		Recorder:     ws.Recorder(),
		Animated:     animated,
		PreviewWidth: ws.Config.Width(),
		Backend:      ws.Backend(),
	}
	if err := tui.RunStudio(ws.Presets(), opts); err != nil {
		return fmt.Errorf("studio failed: %w", err)
	}
	return nil
}
