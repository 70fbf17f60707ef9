package preset

import (
	"fmt"
	"strings"

	"github.com/fluxoryn/vibe-fuse/internal/platform/clipboard"
	"github.com/fluxoryn/vibe-fuse/internal/services/workspace"
	"github.com/fluxoryn/vibe-fuse/internal/session"
	"github.com/fluxoryn/vibe-fuse/internal/tui"
	"github.com/fluxoryn/vibe-fuse/internal/util"

	"github.com/spf13/cobra"
)

func ApplyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply <mood|position>",
		Short: "Show a saved preset and its CSS",
		Long: `Apply a saved preset: render its gradient with its own animation setting
and print the CSS.

Examples:
  vibefuse preset apply "calm ocean"
  vibefuse preset apply 2 --copy
  vibefuse preset apply sunset -o css --selector body`,
		Args:         cobra.MinimumNArgs(1),
		RunE:         runApply,
		SilenceUsage: true,
	}

	cmd.Flags().Bool("copy", false, "Copy the CSS declaration to the clipboard")
	cmd.Flags().StringP("output", "o", "text", "Output format: text or css")
	cmd.Flags().String("selector", ".vibe", "Selector for -o css")

	return cmd
}

func runApply(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	output = util.NormalizeKey(output)
	if output == "" {
		output = "text"
	}
	if output != "text" && output != "css" {
		return fmt.Errorf("unsupported output format %q", output)
	}
	selector, _ := cmd.Flags().GetString("selector")
	if output == "css" {
		if err := util.ValidateSelector(selector); err != nil {
			return err
		}
	}

	ws, err := workspace.Open(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer ws.Close()

	p, _, err := resolve(ws.Presets().Load(), strings.Join(args, " "))
	if err != nil {
		return err
	}

	opts := []session.Option{session.WithClipboard(clipboard.System{})}
	if output == "text" {
		opts = append(opts, session.WithRenderer(tui.Preview{Out: cmd.OutOrStdout(), Width: ws.Config.Width()}))
	}
	sess := ws.NewSession(opts...)
	sess.ApplyPreset(p)

	if output == "css" {
		fmt.Fprint(cmd.OutOrStdout(), p.Colors.Stylesheet(strings.TrimSpace(selector), p.Animated))
	} else {
		fmt.Fprintln(cmd.OutOrStdout())
		fmt.Fprintln(cmd.OutOrStdout(), sess.CSS())
	}

	if copyCSS, _ := cmd.Flags().GetBool("copy"); copyCSS {
		if _, err := sess.CopyCSS(cmd.Context()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.ErrOrStderr(), "CSS copied!")
	}
	return nil
}
