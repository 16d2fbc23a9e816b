package main

import (
	"context"
	"os"

	"github.com/aretw0/marvin/internal/cli"
	"github.com/spf13/cobra"
)

var routeCmd = &cobra.Command{
	Use:   "route [map-file]",
	Short: "Plan a round trip from SOL and fingerprint it",
	Long: `Reads one planet per line in the form "NAME (x, y, z, w)", visits the
nearest unvisited planet at each step starting from SOL, returns to SOL and
prints the route followed by its implicit-mode fingerprint.

Without a file (or with "-") the map is read from Stdin.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonMode, _ := cmd.Flags().GetBool("json")
		mapPath := ""
		if len(args) > 0 {
			mapPath = args[0]
		}

		ctx := cli.NewSignalContext(context.Background())
		defer ctx.Cancel()

		return cli.RunRoute(ctx, cli.RouteOptions{
			GlobalOptions: globalOptions(cmd),
			MapPath:       mapPath,
			JSON:          jsonMode,
			In:            os.Stdin,
			Out:           os.Stdout,
		})
	},
}

func init() {
	rootCmd.AddCommand(routeCmd)
	routeCmd.Flags().Bool("json", false, "Print the route and fingerprint as JSON")
}
