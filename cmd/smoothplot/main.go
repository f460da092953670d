// Command smoothplot draws scatter plots of CSV columns with an optional
// smoothing curve, or prints the fitted curve itself.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error("smoothplot failed", "error", err)
		os.Exit(1)
	}
}

// newRootCmd builds the command tree; every call gets its own flag state.
func newRootCmd() *cobra.Command {
	f := &cliFlags{}
	rootCmd := &cobra.Command{
		Use:   "smoothplot",
		Short: "Scatter plots with smoothing curves",
		Long: `smoothplot reads two columns of a CSV file and draws them as a scatter
plot, optionally with a linear, polynomial, lowess or spline curve.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogger(f.verbose)
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&f.verbose, "verbose", "v", false, "log debug output")
	f.addInputFlags(rootCmd)
	rootCmd.AddCommand(newRenderCmd(f), newFitCmd(f))
	return rootCmd
}

func setupLogger(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(h))
}
