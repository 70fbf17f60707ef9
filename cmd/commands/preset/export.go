package preset

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fluxoryn/vibe-fuse/internal/preset"
	"github.com/fluxoryn/vibe-fuse/internal/services/workspace"

	"github.com/spf13/cobra"
)

func ExportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all presets to a JSON file",
		Long: `Export all presets as a JSON document with an export timestamp.

Examples:
  vibefuse preset export                      # writes ` + preset.ExportFileName + `
  vibefuse preset export --file backup.json
  vibefuse preset export --file - | jq .`,
		Args:         cobra.NoArgs,
		RunE:         runExport,
		SilenceUsage: true,
	}

	cmd.Flags().String("file", preset.ExportFileName, `Destination file, or "-" for stdout`)

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	dest, _ := cmd.Flags().GetString("file")
	dest = strings.TrimSpace(dest)
	if dest == "" {
		dest = preset.ExportFileName
	}

	ws, err := workspace.Open(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer ws.Close()

	sess := ws.NewSession()
	data, err := sess.Export(time.Now())
	if err != nil {
		return err
	}
	data = append(data, '\n')

	if dest == "-" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}

	if err := os.WriteFile(dest, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", dest, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d preset(s) to %s\n", len(sess.Presets()), dest)
	return nil
}
