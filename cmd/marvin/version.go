package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/marvin"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of marvin",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "marvin version %s\n", strings.TrimSpace(marvin.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
