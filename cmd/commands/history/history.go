package history

import "github.com/spf13/cobra"

// NewCommand returns the "history" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "View and manage preset activity",
		Long: "View a local log of preset saves, overwrites, removals, imports, exports\n" +
			"and clipboard copies, and prune old entries.\n\n" +
			"History is stored locally in the vibefuse database next to the config file.",
		SilenceUsage: true,
	}

	cmd.AddCommand(ListCommand())
	cmd.AddCommand(PruneCommand())

	return cmd
}
