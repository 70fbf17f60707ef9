package preset

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fluxoryn/vibe-fuse/internal/preset"
	"github.com/fluxoryn/vibe-fuse/internal/services/workspace"
	"github.com/fluxoryn/vibe-fuse/internal/tui"
	"github.com/fluxoryn/vibe-fuse/internal/util"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func ImportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file|->...",
		Short: "Import presets from JSON files",
		Long: `Import presets from one or more JSON files ("-" reads stdin). Each file may
hold a bare array of presets or an exported document with a "presets" array.

Imported presets go ahead of the existing ones, first file first, and are not
deduplicated. The list is then cut to the most recent ` + fmt.Sprint(preset.MaxPresets) + `. If any file is
invalid nothing is imported.

Examples:
  vibefuse preset import vibefuse-presets.json
  vibefuse preset import team.json mine.json
  curl -s https://example.com/vibes.json | vibefuse preset import -`,
		Args:         cobra.MinimumNArgs(1),
		RunE:         runImport,
		SilenceUsage: true,
	}

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	stdinUses := 0
	for _, a := range args {
		if a == "-" {
			stdinUses++
		}
	}
	if stdinUses > 1 {
		return fmt.Errorf(`"-" may be given only once`)
	}

	var parsed [][]preset.Preset
	read := func(ctx context.Context) error {
		var err error
		parsed, err = readImports(ctx, args, cmd.InOrStdin())
		return err
	}

	var err error
	if util.IsTerminal(cmd.ErrOrStderr()) && stdinUses == 0 {
		err = tui.RunWithSpinner(cmd.Context(), "Reading preset files...", read)
	} else {
		err = read(cmd.Context())
	}
	if err != nil {
		return err
	}

	incoming := []preset.Preset{}
	for _, list := range parsed {
		incoming = append(incoming, list...)
	}
	combined, err := json.Marshal(incoming)
	if err != nil {
		return fmt.Errorf("failed to combine imports: %w", err)
	}

	ws, err := workspace.Open(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer ws.Close()

	res, err := ws.NewSession().Import(combined)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d preset(s); %d saved in total.\n", res.Imported, res.Total)
	if res.Dropped > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "Dropped %d older preset(s) to stay within %d.\n", res.Dropped, preset.MaxPresets)
	}
	return nil
}

// readImports reads and parses every source concurrently, keeping the
// results in argument order. The first failure cancels the rest.
func readImports(ctx context.Context, sources []string, stdin io.Reader) ([][]preset.Preset, error) {
	results := make([][]preset.Preset, len(sources))
	g, ctx := errgroup.WithContext(ctx)

	for i, src := range sources {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			var data []byte
			var err error
			if src == "-" {
				data, err = io.ReadAll(stdin)
			} else {
				data, err = os.ReadFile(src)
			}
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", displayName(src), err)
			}

			list, err := preset.ParseImport(data)
			if err != nil {
				return fmt.Errorf("%s: %w", displayName(src), err)
			}
			results[i] = list
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func displayName(src string) string {
	if src == "-" {
		return "stdin"
	}
	return src
}
