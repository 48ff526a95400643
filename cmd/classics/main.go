// Command classics is a thin demo CLI over the algorithm packages:
// Huffman coding, COBS framing, k-means clustering and Gauss–Legendre
// quadrature, each exposed as a subcommand reading stdin or flags.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	verbose bool
	logger  *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "classics",
	Short: "Classical algorithms from the command line",
	Long: `classics exposes a handful of textbook algorithms as pipes and flags:

  huffman  canonical Huffman coding of stdin
  cobs     COBS byte stuffing over hex text
  kmeans   k-means++ clustering of CSV points
  quad     Gauss–Legendre quadrature of a demo integrand`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}

		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("initialize logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func main() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(huffmanCmd, cobsCmd, kmeansCmd, quadCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
