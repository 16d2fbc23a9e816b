package main

import (
	"context"
	"os"

	"github.com/aretw0/marvin/internal/cli"
	"github.com/spf13/cobra"
)

var graphCmd = &cobra.Command{
	Use:   "graph [seed...]",
	Short: "Draw the reduction of a seed as a Mermaid flowchart",
	RunE: func(cmd *cobra.Command, args []string) error {
		implicit, _ := cmd.Flags().GetBool("implicit")

		ctx := cli.NewSignalContext(context.Background())
		defer ctx.Cancel()

		return cli.RunReduce(ctx, cli.ReduceOptions{
			GlobalOptions: globalOptions(cmd),
			Args:          args,
			Implicit:      implicit,
			Mermaid:       true,
			In:            os.Stdin,
			Out:           os.Stdout,
		})
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().BoolP("implicit", "i", false, "The seed has no preamble; every chunk uses action A")
}
