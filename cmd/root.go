package cmd

import (
	"log/slog"
	"os"

	cfgcmd "github.com/fluxoryn/vibe-fuse/cmd/commands/config"
	"github.com/fluxoryn/vibe-fuse/cmd/commands/generate"
	"github.com/fluxoryn/vibe-fuse/cmd/commands/history"
	"github.com/fluxoryn/vibe-fuse/cmd/commands/preset"
	"github.com/fluxoryn/vibe-fuse/cmd/commands/studio"
	"github.com/fluxoryn/vibe-fuse/internal/config"
	"github.com/fluxoryn/vibe-fuse/internal/logging"
	"github.com/fluxoryn/vibe-fuse/internal/util"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
func rootCmd() *cobra.Command {
	var cmd = &cobra.Command{
		Use:   "vibefuse",
		Short: "Turn a mood into a gradient",
		Long: `vibefuse turns a free-text mood into a two-color gradient. The same mood
always produces the same colors. Gradients can be saved as presets, exported
and imported as JSON, and copied to the clipboard as CSS.

Run without arguments in a terminal to open the interactive studio.

Quick start:
  vibefuse generate calm ocean        # Print the gradient and its CSS
  vibefuse generate sunset --save     # Save it as a preset
  vibefuse preset list                # List saved presets
  vibefuse preset export              # Write presets to vibefuse-presets.json
  vibefuse studio                     # Interactive studio`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.LoadDotEnv(); err != nil {
				return err
			}
			// Commands that open a workspace build their own logger from
			// the full configuration; this one covers everything else.
			logger, _ := logging.New(cmd.ErrOrStderr(), os.Getenv(config.EnvLogLevel))
			slog.SetDefault(logger)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if util.IsTerminal(os.Stdin) && util.IsTerminal(os.Stdout) {
				return studio.Run(cmd, args)
			}
			return cmd.Help()
		},
		Args:         cobra.NoArgs,
		SilenceUsage: true,
	}

	cmd.AddCommand(generate.NewCommand())
	cmd.AddCommand(preset.NewCommand())
	cmd.AddCommand(history.NewCommand())
	cmd.AddCommand(cfgcmd.NewCommand())
	cmd.AddCommand(studio.NewCommand())

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	var root = rootCmd()
	err := root.Execute()
	if err != nil {
		os.Exit(1)
	}
}
