package generate

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/fluxoryn/vibe-fuse/internal/platform/clipboard"
	"github.com/fluxoryn/vibe-fuse/internal/preset"
	"github.com/fluxoryn/vibe-fuse/internal/services/workspace"
	"github.com/fluxoryn/vibe-fuse/internal/session"
	"github.com/fluxoryn/vibe-fuse/internal/tui"
	"github.com/fluxoryn/vibe-fuse/internal/util"
	"github.com/fluxoryn/vibe-fuse/internal/vibe"

	"github.com/spf13/cobra"
)

// NewCommand returns the "generate" command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate [mood...]",
		Short: "Generate a gradient from a mood",
		Long: `Generate a two-color gradient from a free-text mood. The same mood always
produces the same colors; case and surrounding whitespace are ignored and an
empty mood means "neutral".

Examples:
  vibefuse generate calm ocean
  vibefuse generate sunset --copy
  vibefuse generate "late night" --save --yes
  vibefuse generate storm -o css --selector "#hero"
  vibefuse generate energetic --animate=false -o json`,
		Args:         cobra.ArbitraryArgs,
		RunE:         runGenerate,
		SilenceUsage: true,
	}

	cmd.Flags().Bool("animate", true, "Animate the gradient (defaults to the animate config key)")
	cmd.Flags().Bool("copy", false, "Copy the CSS declaration to the clipboard")
	cmd.Flags().Bool("save", false, "Save the vibe as a preset")
	cmd.Flags().Bool("yes", false, "Overwrite an existing preset without asking")
	cmd.Flags().StringP("output", "o", "text", "Output format: text, json, or css")
	cmd.Flags().String("selector", ".vibe", "Selector for -o css")

	return cmd
}

// Result is the JSON shape printed by -o json.
type Result struct {
	Mood     string       `json:"mood"`
	Label    string       `json:"label"`
	Colors   vibe.Palette `json:"colors"`
	Animated bool         `json:"animated"`
	CSS      []string     `json:"css"`
}

func runGenerate(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	output = util.NormalizeKey(output)
	if output == "" {
		output = "text"
	}
	if output != "text" && output != "json" && output != "css" {
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

	yes, _ := cmd.Flags().GetBool("yes")
	opts := []session.Option{
		session.WithClipboard(clipboard.System{}),
		session.WithConfirmer(tui.ConfirmerFor(yes, cmd.InOrStdin())),
	}
	if cmd.Flags().Changed("animate") {
		animate, _ := cmd.Flags().GetBool("animate")
		opts = append(opts, session.WithAnimated(animate))
	}
	if output == "text" {
		opts = append(opts, session.WithRenderer(tui.Preview{Out: cmd.OutOrStdout(), Width: ws.Config.Width()}))
	}
	sess := ws.NewSession(opts...)

	sess.Generate(strings.Join(args, " "))
	cur, _ := sess.Current()

	switch output {
	case "json":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(Result{
			Mood:     cur.Mood,
			Label:    cur.Label(),
			Colors:   cur.Colors,
			Animated: sess.Animated(),
			CSS:      cur.Colors.Declarations(sess.Animated()),
		}); err != nil {
			return err
		}
	case "css":
		fmt.Fprint(cmd.OutOrStdout(), cur.Colors.Stylesheet(strings.TrimSpace(selector), sess.Animated()))
	default:
		fmt.Fprintln(cmd.OutOrStdout())
		fmt.Fprintln(cmd.OutOrStdout(), sess.CSS())
	}

	if save, _ := cmd.Flags().GetBool("save"); save {
		p, err := sess.SaveCurrentAsPreset(cmd.Context())
		switch {
		case errors.Is(err, preset.ErrDeclined):
			fmt.Fprintf(cmd.ErrOrStderr(), "Kept the existing preset %q (use --yes to overwrite).\n", cur.Mood)
		case err != nil:
			return err
		default:
			fmt.Fprintf(cmd.ErrOrStderr(), "Saved preset %q.\n", p.Label(0))
		}
	}

	if copyCSS, _ := cmd.Flags().GetBool("copy"); copyCSS {
		if _, err := sess.CopyCSS(cmd.Context()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.ErrOrStderr(), "CSS copied!")
	}

	return nil
}
