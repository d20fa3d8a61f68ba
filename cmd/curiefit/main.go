// Command curiefit estimates Curie depths from a magnetic-anomaly grid.
//
// A YAML job file names the grid, the moving-window geometry, and the
// fitting setup; the fit subcommand runs every window and writes a CSV of
// fitted parameters, while the spectrum subcommand dumps the radial power
// spectrum of a single window for inspection.
//
// Examples:
//
//	curiefit fit --config job.yaml
//	curiefit spectrum --config job.yaml --x 250000 --y 400000
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	cfgPath string
	verbose bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "curiefit",
	Short: "Curie depth estimation from magnetic-anomaly grids",
	Long: `curiefit fits the Bouligand et al. (2009) radial power spectrum model
to windows of a magnetic-anomaly grid and reports the depth to the bottom
of the magnetic layer, a proxy for the Curie isotherm.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
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
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "job.yaml", "job configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(fitCmd)
	rootCmd.AddCommand(spectrumCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
