package config

import (
	"strconv"

	"github.com/fluxoryn/vibe-fuse/internal/config"

	"github.com/spf13/cobra"
)

// NewCommand returns the "config" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage vibefuse configuration",
		Long: "View and modify persistent vibefuse settings.\n\n" +
			"Configuration is stored at ~/.config/vibefuse/config.json. The storage\n" +
			"and log-level keys can be overridden per run with " + config.EnvStorage + " and\n" +
			config.EnvLogLevel + ", which may also be set in a .env file.\n\n" +
			config.KeysHelp(),
	}

	cmd.AddCommand(SetCommand())
	cmd.AddCommand(GetCommand())

	return cmd
}

// defaults are shown in place of unset values.
var defaults = map[string]string{
	"storage":       config.DefaultStorage,
	"log-level":     config.DefaultLogLevel,
	"preview-width": strconv.Itoa(config.DefaultPreviewWidth),
	"animate":       "true",
}

func displayValue(name, value string) string {
	if value != "" {
		return value
	}
	if def, ok := defaults[name]; ok {
		return "not set (default " + def + ")"
	}
	return "not set"
}
