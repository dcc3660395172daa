// Package cmd implements the loopscan command line interface.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/claimsight/loopscan/internal/config"
	"github.com/claimsight/loopscan/internal/logger"
	"github.com/claimsight/loopscan/internal/report"
	"github.com/claimsight/loopscan/internal/scan"
	"github.com/claimsight/loopscan/internal/source"
)

// Version information (set via ldflags at build time)
var (
	Version = "0.0.1-dev"
	Commit  = "unknown"
)

// CLI flags that override config file values
var (
	cfgFile          string
	sortedMode       bool
	showSummary      bool
	logLevel         string
	logFormat        string
	progressInterval int
)

var rootCmd = &cobra.Command{
	Use:   "loopscan [flags] <input-file|->",
	Short: "Longest routing loop finder for claim status records",
	Long: `loopscan reads pipe-delimited claim routing records
(source|destination|claim_id|status_code), groups them by
(claim_id, status_code), and reports the group whose edges contain the
longest simple directed routing loop.

The result is a single line on standard output:
  claim_id,status_code,cycle_length
or the literal 0,0,0 when no group contains a loop.

By default all groups are buffered in memory before searching. With
--sorted the input must already be ordered by (claim_id, status_code);
loopscan then holds only one group at a time, which bounds memory for
large inputs. Sort order is not verified - unsorted input under
--sorted silently produces wrong grouping.

Use "-" as the input path to read from standard input.`,
	Version: Version,
	Args:    cobra.ExactArgs(1),
	RunE:    runScan,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Config file flag
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "loopscan.yaml",
		"Path to configuration file (optional; defaults are built in)")

	// Mode selection and diagnostics
	rootCmd.PersistentFlags().BoolVar(&sortedMode, "sorted", false,
		"Input is pre-sorted by (claim_id, status_code); stream one group at a time")
	rootCmd.PersistentFlags().BoolVar(&showSummary, "summary", false,
		"Print a run summary table to stderr after the result")

	// Logging overrides
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Override log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "",
		"Override log format (json, text)")

	// Scan overrides
	rootCmd.PersistentFlags().IntVar(&progressInterval, "progress-interval", 0,
		"Override number of groups between progress notices")
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}

	src := &source.LineSource{Path: args[0]}
	result, err := runAggregation(cmd.Context(), cfg, log, src)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), result.Format())

	if showSummary {
		report.Summary{
			Mode:      result.Stats.Mode,
			Records:   result.Stats.Records,
			Malformed: src.Malformed,
			Groups:    result.Stats.Groups,
			Result:    result.Format(),
			Duration:  result.Stats.Duration,
		}.Print(cmd.ErrOrStderr())
	}
	return nil
}

// setup loads configuration, applies CLI overrides, and builds the logger.
func setup() (*config.Config, *logger.Logger, error) {
	cfg, err := config.LoadOrDefault(cfgFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	cfg.ApplyOverrides(logLevel, logFormat, progressInterval)
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return cfg, log, nil
}

// runAggregation drives the selected aggregator over src. Both modes
// share the same result contract and output formatting.
func runAggregation(ctx context.Context, cfg *config.Config, log *logger.Logger, src scan.Source) (scan.Result, error) {
	opts := scan.Options{
		ProgressInterval: cfg.Scan.ProgressInterval,
	}

	if sortedMode {
		opts.Log = log.WithMode("streaming")
		return scan.NewStream(opts).Run(ctx, src)
	}
	opts.Log = log.WithMode("batch")
	return scan.NewBatch(opts).Run(ctx, src)
}
