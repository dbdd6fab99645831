// Package cmd holds the cobra command tree for the rollingquantile CLI.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/xuestrange/rollingquantile/internal/cliconfig"
	"github.com/xuestrange/rollingquantile/internal/cliutil"
)

var (
	cfgFile string
	verbose bool
	logger  cliutil.Logger = cliutil.NullLogger{}
	cfg     *cliconfig.Config
)

var rootCmd = &cobra.Command{
	Use:   "rollingquantile",
	Short: "Sliding-window quantile and median filter",
	Long: `rollingquantile computes exact sliding-window quantiles (including the median) over a
sequence of numbers; each output takes at most O(k) work for a window of width k.

It reads one number per line (or one CSV column) from a file or stdin and writes one output per
input line.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := cliconfig.Load(cfgFile)
		if err != nil {
			return err
		}
		cfg = loaded

		level := cliutil.ParseLogLevel(cfg.Log.Level)
		if verbose {
			level = cliutil.LevelDebug
		}
		logger = cliutil.NewDefaultLogger(level, os.Stderr)
		return nil
	},
}

// Execute runs the root command, exiting the process with status 1 on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to a rollingquantile config file (default: ./rollingquantile.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// GetLogger returns the logger configured by the last PersistentPreRunE run.
func GetLogger() cliutil.Logger {
	return logger
}
