package preset

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fluxoryn/vibe-fuse/internal/preset"

	"github.com/spf13/cobra"
)

// NewCommand returns the "preset" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preset",
		Short: "Manage saved presets",
		Long: "List, apply, remove, export and import saved vibes.\n\n" +
			fmt.Sprintf("Up to %d presets are kept, most recent first. Presets are addressed by\n", preset.MaxPresets) +
			"their mood (case-insensitive) or by their 1-based position in 'preset list'.",
		SilenceUsage: true,
	}

	cmd.AddCommand(ListCommand())
	cmd.AddCommand(ApplyCommand())
	cmd.AddCommand(RemoveCommand())
	cmd.AddCommand(ExportCommand())
	cmd.AddCommand(ImportCommand())

	return cmd
}

// resolve finds the preset named by ref: a mood match wins, otherwise a
// 1-based position. It returns the 0-based index.
func resolve(list []preset.Preset, ref string) (preset.Preset, int, error) {
	if i, ok := preset.Index(list, ref); ok && strings.TrimSpace(ref) != "" {
		return list[i], i, nil
	}

	n, err := strconv.Atoi(strings.TrimSpace(ref))
	if err != nil {
		return preset.Preset{}, -1, fmt.Errorf("%w: %q", preset.ErrNotFound, ref)
	}
	if n < 1 || n > len(list) {
		return preset.Preset{}, -1, fmt.Errorf("%w: position %d (have %d)", preset.ErrIndexOutOfRange, n, len(list))
	}
	return list[n-1], n - 1, nil
}
