package preset

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fluxoryn/vibe-fuse/internal/preset"
	"github.com/fluxoryn/vibe-fuse/internal/services/workspace"
	"github.com/fluxoryn/vibe-fuse/internal/session"
	"github.com/fluxoryn/vibe-fuse/internal/tui"

	"github.com/spf13/cobra"
)

func RemoveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "remove <mood|position>",
		Aliases: []string{"rm", "delete"},
		Short:   "Remove a saved preset",
		Long: `Remove a saved preset. You are asked to confirm unless --yes is given;
without a terminal to ask on, the removal is declined.

Examples:
  vibefuse preset remove "calm ocean"
  vibefuse preset remove 3 --yes`,
		Args:         cobra.MinimumNArgs(1),
		RunE:         runRemove,
		SilenceUsage: true,
	}

	cmd.Flags().Bool("yes", false, "Remove without asking")

	return cmd
}

func runRemove(cmd *cobra.Command, args []string) error {
	ws, err := workspace.Open(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer ws.Close()

	_, index, err := resolve(ws.Presets().Load(), strings.Join(args, " "))
	if err != nil {
		return err
	}

	yes, _ := cmd.Flags().GetBool("yes")
	sess := ws.NewSession(session.WithConfirmer(tui.ConfirmerFor(yes, cmd.InOrStdin())))

	removed, err := sess.RemovePreset(cmd.Context(), index)
	if errors.Is(err, preset.ErrDeclined) {
		return fmt.Errorf("removal declined (use --yes to remove without asking)")
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Removed preset %q.\n", removed.Label(index))
	return nil
}
