package cmd

import (
	"github.com/spf13/cobra"

	"github.com/peter88213/aeon3md/cmd/convert"
	"github.com/peter88213/aeon3md/cmd/sets"
	"github.com/peter88213/aeon3md/internal/cli"
	"github.com/peter88213/aeon3md/internal/logger"
)

// RootCommand creates and returns the root command.
func RootCommand(settings *cli.Settings) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "aeon3md",
		Short:        "Convert Aeon Timeline 3 project data to Markdown",
		SilenceUsage: true,
	}

	// Set up the global flags for the root command.
	setupFlags(rootCmd, settings)

	rootCmd.AddCommand(
		convert.Command(settings),
		sets.Command(settings),
	)

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		logger.SetLevel(logger.ParseLevel(settings.LogLevel))
		logger.SetOutput(cmd.ErrOrStderr())
		return nil
	}

	return rootCmd
}

// setupFlags defines flags that are global to the command line interface.
func setupFlags(rootCmd *cobra.Command, settings *cli.Settings) {
	rootCmd.PersistentFlags().StringVar(&settings.ConfigDir, "config-dir", cli.DefaultConfigDir(), "Directory of the user-wide aeon3yw.ini")
	rootCmd.PersistentFlags().StringVar(&settings.EnvFile, "env-file", ".env", "File with AEON3MD_* label overrides")
	rootCmd.PersistentFlags().StringVar(&settings.LogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVarP(&settings.Templates, "templates", "t", "", "YAML file with a custom template set")
}
