package main

import (
	"context"
	"os"

	"github.com/aretw0/marvin/internal/cli"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long:  `Exposes reduction, route planning, an SSE event stream and Prometheus metrics over HTTP.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		port, _ := cmd.Flags().GetInt("port")

		ctx := cli.NewSignalContext(context.Background())
		defer ctx.Cancel()

		return cli.RunServe(ctx, cli.ServeOptions{
			GlobalOptions: globalOptions(cmd),
			Port:          port,
			Out:           os.Stdout,
		})
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntP("port", "p", 0, "Port to listen on (defaults to http.port from the config)")
}
