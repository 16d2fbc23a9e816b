package main

import (
	"context"
	"os"

	"github.com/aretw0/marvin/internal/cli"
	"github.com/spf13/cobra"
)

// reduceCmd represents the reduce command
var reduceCmd = &cobra.Command{
	Use:   "reduce [seed...]",
	Short: "Reduce a seed to its fingerprint",
	Long: `Reduces a seed to its 16-letter fingerprint.

The seed is taken from the arguments (joined without separators) or read from
Stdin, where every line is trimmed and the lines are concatenated.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		implicit, _ := cmd.Flags().GetBool("implicit")
		explain, _ := cmd.Flags().GetBool("explain")
		jsonMode, _ := cmd.Flags().GetBool("json")

		ctx := cli.NewSignalContext(context.Background())
		defer ctx.Cancel()

		return cli.RunReduce(ctx, cli.ReduceOptions{
			GlobalOptions: globalOptions(cmd),
			Args:          args,
			Implicit:      implicit,
			Explain:       explain,
			JSON:          jsonMode,
			In:            os.Stdin,
			Out:           os.Stdout,
		})
	},
}

func init() {
	rootCmd.AddCommand(reduceCmd)

	reduceCmd.Flags().BoolP("implicit", "i", false, "The seed has no preamble; every chunk uses action A")
	reduceCmd.Flags().BoolP("explain", "e", false, "Print every group of the reduction")
	reduceCmd.Flags().Bool("json", false, "Print the result as JSON")

	// 'reduce' is the default command.
	rootCmd.Flags().AddFlagSet(reduceCmd.Flags())
	rootCmd.Args = cobra.ArbitraryArgs
	rootCmd.RunE = reduceCmd.RunE
}
