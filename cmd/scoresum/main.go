// Package main provides the CLI entry point for scoresum.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/scoresum-go/pkg/scoresum"
	"github.com/ukaji3/scoresum-go/pkg/scoresum/models"
	"github.com/ukaji3/scoresum-go/pkg/scoresum/output"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// exitIncomplete is the exit status when some folders were skipped.
const exitIncomplete = 2

var (
	configPath string
	dryRun     bool
	jsonReport bool
	pretty     bool
	verbose    bool

	logger *zap.Logger
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		if errors.Is(err, scoresum.ErrIncomplete) {
			os.Exit(exitIncomplete)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "scoresum [dir]",
		Short: "Collect per-student subtotals into the summary workbook",
		Long: `scoresum reads one student workbook from every folder under dir
(default: current directory), extracts the C1-C3 and D1-D6 subtotals,
computes the C, D and S scores and rewrites the summary workbook
whose name contains the summary marker.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			logger, err = newLogger(verbose)
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
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML layout configuration file")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Process all folders without saving the summary workbook")
	rootCmd.Flags().BoolVar(&jsonReport, "json", false, "Print the run report as JSON")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	return rootCmd
}

func newLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Encoding = "console"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.DisableStacktrace = true
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return config.Build()
}

func run(cmd *cobra.Command, args []string) error {
	opts := scoresum.DefaultOptions()
	if len(args) == 1 {
		opts.Root = args[0]
	}
	if configPath != "" {
		cfg, err := scoresum.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("load config %s: %w", configPath, err)
		}
		opts.Layout = cfg.Layout
		opts.Weights = cfg.Weights
	}
	opts.DryRun = dryRun
	opts.Logger = logger

	report, err := scoresum.Run(opts)
	if err != nil {
		return err
	}

	if err := writeReport(cmd.OutOrStdout(), report); err != nil {
		return err
	}

	if !report.Complete() {
		return fmt.Errorf("%w: %d/%d", scoresum.ErrIncomplete, report.Success, report.Total)
	}
	return nil
}

func writeReport(w io.Writer, report *models.Report) error {
	if jsonReport {
		data, err := output.ReportToJSON(report, pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}
	return output.WriteSummaryLine(w, report)
}
