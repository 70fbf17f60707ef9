package preset

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/fluxoryn/vibe-fuse/internal/preset"
	"github.com/fluxoryn/vibe-fuse/internal/services/workspace"
	"github.com/fluxoryn/vibe-fuse/internal/tui/components"
	"github.com/fluxoryn/vibe-fuse/internal/util"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"
)

// listMoodWidth caps the MOOD column so long moods do not push the table wide.
const listMoodWidth = 32

func ListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved presets",
		Long: `List saved presets, most recent first.

Examples:
  vibefuse preset list
  vibefuse preset list -o json`,
		Args:         cobra.NoArgs,
		RunE:         runList,
		SilenceUsage: true,
	}

	cmd.Flags().StringP("output", "o", "table", "Output format: table or json")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	output = util.NormalizeKey(output)
	if output == "" {
		output = "table"
	}
	if output != "table" && output != "json" {
		return fmt.Errorf("unsupported output format %q", output)
	}

	ws, err := workspace.Open(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer ws.Close()

	list := ws.Presets().Load()

	if output == "json" {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(list)
	}

	if len(list) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No presets saved yet.")
		return nil
	}

	swatches := util.IsTerminal(cmd.OutOrStdout())

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tMOOD\tFROM\tTO\tANIMATED")
	fmt.Fprintln(w, "-\t----\t----\t--\t--------")
	for i, p := range list {
		line := fmt.Sprintf("%d\t%s\t%s\t%s\t%s",
			i+1,
			ansi.Truncate(p.Label(i), listMoodWidth, "…"),
			p.Colors[0],
			p.Colors[1],
			yesNo(p.Animated),
		)
		// The swatch goes last so its escape codes do not skew column widths.
		if swatches {
			line += "\t" + components.Swatch(p.Colors, 8)
		}
		fmt.Fprintln(w, line)
	}
	w.Flush()

	if len(list) == preset.MaxPresets {
		fmt.Fprintf(cmd.ErrOrStderr(), "The list is full; saving or importing drops the oldest presets beyond %d.\n", preset.MaxPresets)
	}
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
