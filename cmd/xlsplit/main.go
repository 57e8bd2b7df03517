// Package main provides the CLI entry point for xlsplit.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/xlsplit-go/pkg/xlsplit"
	"github.com/ukaji3/xlsplit-go/pkg/xlsplit/models"
	"github.com/ukaji3/xlsplit-go/pkg/xlsplit/output"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "xlsplit [input.xlsx]",
		Short: "Split an Excel workbook into smaller workbooks",
		Long: `xlsplit splits the first sheet of an Excel workbook (.xlsx or .xls) into
several files of at most --rows rows each, named <name>-<page>.<ext>.
The first --header-rows rows are repeated at the top of every file after the first.

Every flag can also be set in a config file (--config) or through an
XLSPLIT_<FLAG> environment variable, e.g. XLSPLIT_HEADER_ROWS=2.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE:         run,
	}

	flags := rootCmd.Flags()
	flags.StringP("output-dir", "o", "", "Directory for the output files (default: directory of the input file)")
	flags.IntP("rows", "n", xlsplit.DefaultRowsPerFile, "Rows per output file")
	flags.Int("header-rows", xlsplit.DefaultHeaderRows, "Header rows repeated on every file after the first (0 disables)")
	flags.String("config", "", "Config file (yaml, json or toml)")
	flags.String("report", "", "Write a JSON manifest of the output files to this path")
	flags.Bool("pretty", false, "Pretty-print the JSON manifest")
	flags.String("log-level", "warn", "Log level: debug, info, warn, error")
	flags.BoolP("verbose", "v", false, "Enable debug logging")
	flags.BoolP("quiet", "q", false, "Disable progress output")

	return rootCmd
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	var observer xlsplit.Observer = xlsplit.NopObserver{}
	if !cfg.Quiet {
		observer = newProgressReporter(cmd.OutOrStdout())
	}

	opts := xlsplit.Options{
		RowsPerFile: cfg.RowsPerFile,
		HeaderRows:  cfg.HeaderRows,
		OutputDir:   cfg.OutputDir,
		Logger:      logger,
		Observer:    observer,
	}

	result, err := xlsplit.Split(inputPath, opts)
	if err != nil {
		if result != nil && len(result.Pages) > 0 {
			logger.Warn("completed files left on disk",
				zap.Int("pages", len(result.Pages)),
				zap.String("last", result.Pages[len(result.Pages)-1].Path),
			)
		}
		return fmt.Errorf("split failed: %w", err)
	}

	if cfg.Report != "" {
		if err := writeReport(result, cfg.Report, cfg.Pretty); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}

	return nil
}

func newLogger(cfg Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LoggerLevel)
	if err != nil {
		return nil, err
	}
	if cfg.Verbose {
		level = zapcore.DebugLevel
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(level)
	return config.Build()
}

func writeReport(result *models.SplitResult, path string, pretty bool) error {
	jsonData, err := output.ToJSON(result, pretty)
	if err != nil {
		return err
	}
	return os.WriteFile(path, jsonData, 0644)
}
