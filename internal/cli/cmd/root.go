// Package cmd provides Cobra CLI commands for panedrawer.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/panedrawer/internal/cli"
	"github.com/bnema/panedrawer/internal/domain/build"
)

// Annotation marking commands that take over the terminal.
const ownsTerminal = "owns-terminal"

var (
	app        *cli.App
	buildInfo  build.Info
	configPath string
	rootCmd    = &cobra.Command{
		Use:   "panedrawer",
		Short: "A physics-driven sliding pane over edge drawers",
		Long: `Panedrawer - a pane that slides aside to reveal drawers on its edges.

A pane sits over up to two drawers on one axis. Drag it, fling it or ask
for a state, and a small physics step carries it to closed, open or open
wide.

Use 'panedrawer demo' for an interactive terminal playground, or
'panedrawer simulate' to print the frames of a scripted gesture.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch cmd.Name() {
			case "help", "completion", "version":
				return nil
			}

			var err error
			app, err = cli.NewApp(cli.Options{
				ConfigPath: configPath,
				LogToFile:  cmd.Annotations[ownsTerminal] == "true",
			})
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default is $XDG_CONFIG_HOME/panedrawer/config.toml)")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
