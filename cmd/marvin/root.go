package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/aretw0/marvin/internal/cli"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "marvin",
	Short: "Marvin reduces letter seeds into 16-letter fingerprints",
	Long: `Marvin folds a seed of capital letters into a deterministic 16-letter fingerprint.

Without a subcommand it behaves like 'marvin reduce'.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var silent *cli.SilentError
		if !errors.As(err, &silent) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "marvin.yaml", "Path to the config file (missing file means defaults)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error or off (overrides the config)")
}

func globalOptions(cmd *cobra.Command) cli.GlobalOptions {
	configPath, _ := cmd.Flags().GetString("config")
	logLevel, _ := cmd.Flags().GetString("log-level")
	return cli.GlobalOptions{ConfigPath: configPath, LogLevel: logLevel}
}
