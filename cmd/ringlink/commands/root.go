package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "ringlink",
	Short: "Ring-constrained average-linkage clustering",
	Long: `ringlink - agglomerative clustering of items placed on a ring.

Items start as singletons laid out on a circle. Each step merges the
adjacent pair with the highest mean similarity and fits an oriented
ellipse around the merged members. The merge record is written as a
GeoJSON FeatureCollection or a JSON event list.

Examples:
  # Run the demo scene and write GeoJSON to stdout
  ringlink run -c scene.yaml

  # Override the stopping threshold and seed, write JSON to a file
  ringlink run -c scene.yaml --min-clusters 3 --seed 42 --format json -o run.json`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (development logger, debug level)")
}

// IsVerbose returns whether verbose mode is enabled.
func IsVerbose() bool {
	return verbose
}

// newLogger returns a development logger in verbose mode and a production
// logger otherwise.
func newLogger() (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
