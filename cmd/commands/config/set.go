package config

import (
	"fmt"
	"strings"

	"github.com/fluxoryn/vibe-fuse/internal/config"
	"github.com/fluxoryn/vibe-fuse/internal/util"

	"github.com/spf13/cobra"
)

// SetCommand returns the "config set" command.
func SetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Long: "Set a persistent configuration value. An empty value resets the key\n" +
			"to its default.\n\n" +
			config.KeysHelp() +
			"\nExamples:\n" +
			"  vibefuse config set storage keyring\n" +
			"  vibefuse config set preview-width 64\n" +
			"  vibefuse config set animate false",
		Args:         cobra.ExactArgs(2),
		RunE:         runSet,
		SilenceUsage: true,
	}

	return cmd
}

func runSet(cmd *cobra.Command, args []string) error {
	key := util.NormalizeKey(args[0])

	spec := config.Lookup(key)
	if spec == nil {
		return fmt.Errorf("unknown configuration key %q (valid: %s)", args[0], strings.Join(config.KeyNames(), ", "))
	}

	normalized := util.NormalizeKey(args[1])
	if normalized != "" {
		if err := spec.Check(normalized); err != nil {
			return err
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	spec.Set(cfg, normalized)
	if err := cfg.Save(); err != nil {
		return err
	}

	if normalized == "" {
		fmt.Fprintf(cmd.OutOrStdout(), "%s reset to default\n", spec.Name)
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s set to %q\n", spec.Name, normalized)
	return nil
}
