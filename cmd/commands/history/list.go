package history

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/fluxoryn/vibe-fuse/internal/history"
	"github.com/fluxoryn/vibe-fuse/internal/tui/styles"
	"github.com/fluxoryn/vibe-fuse/internal/util"

	"github.com/spf13/cobra"
)

var actions = []string{
	history.ActionSave,
	history.ActionOverwrite,
	history.ActionRemove,
	history.ActionImport,
	history.ActionExport,
	history.ActionCopy,
}

func ListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent preset activity",
		Long: `List recent preset activity stored locally.

Examples:
  vibefuse history list
  vibefuse history list --limit 50
  vibefuse history list --action remove
  vibefuse history list -o json`,
		RunE:         runList,
		SilenceUsage: true,
	}

	cmd.Flags().Int("limit", 25, "Number of entries to display")
	cmd.Flags().String("action", "", "Filter by action: "+strings.Join(actions, ", "))
	cmd.Flags().StringP("output", "o", "table", "Output format: table or json")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")
	if limit <= 0 {
		return fmt.Errorf("limit must be greater than 0")
	}

	filter, _ := cmd.Flags().GetString("action")
	filter = util.NormalizeKey(filter)
	if filter != "" && !slices.Contains(actions, filter) {
		return fmt.Errorf("unknown action %q (valid: %s)", filter, strings.Join(actions, ", "))
	}

	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		output = "table"
	}

	repo, err := history.Open()
	if err != nil {
		return err
	}
	defer repo.Close()

	var entries []history.Entry
	if filter != "" {
		entries, err = repo.ListByAction(filter, limit)
	} else {
		entries, err = repo.List(limit)
	}
	if err != nil {
		return err
	}

	if output == "json" {
		if entries == nil {
			entries = []history.Entry{}
		}
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(entries)
	}
	if output != "table" {
		return fmt.Errorf("unsupported output format %q", output)
	}

	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No history entries found.")
		return nil
	}

	colored := util.IsTerminal(cmd.OutOrStdout())

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TIME\tMOOD\tDETAIL\tACTION")
	fmt.Fprintln(w, "----\t----\t------\t------")
	for _, entry := range entries {
		timeStr := entry.Timestamp.Local().Format("2006-01-02 15:04:05")
		action := entry.Action
		if colored {
			action = styles.ActionIndicator(action)
		}

		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			timeStr,
			dash(entry.Mood),
			dash(entry.Detail),
			action,
		)
	}
	w.Flush()
	return nil
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
