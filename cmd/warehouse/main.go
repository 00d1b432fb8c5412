// Command warehouse builds the football data warehouse from raw CSV exports.
//
// Usage:
//
//	warehouse etl
//	warehouse etl --dry-run
//	warehouse validate --dir warehouse_output
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/riskibarqy/football-warehouse/internal/app"
	"github.com/riskibarqy/football-warehouse/internal/config"
	"github.com/riskibarqy/football-warehouse/internal/domain/warehouse"
	"github.com/riskibarqy/football-warehouse/internal/platform/logging"
	"github.com/riskibarqy/football-warehouse/internal/usecase"
)

const exitValidationFailed = 2

var errValidationFailed = errors.New("schema validation failed")

func main() {
	_ = godotenv.Load(".env")

	root := &cobra.Command{
		Use:           "warehouse",
		Short:         "Football data warehouse ETL",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(etlCmd())
	root.AddCommand(validateCmd())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := root.ExecuteContext(ctx)
	stop()

	switch {
	case err == nil:
	case errors.Is(err, errValidationFailed):
		os.Exit(exitValidationFailed)
	default:
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func etlCmd() *cobra.Command {
	var dryRun bool
	cmd := &cobra.Command{
		Use:   "etl",
		Short: "Normalize match files and build every warehouse table",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := bootstrap(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			ctx := cmd.Context()
			pipeline, err := app.NewPipeline(ctx, cfg, dryRun, logger)
			if err != nil {
				return fmt.Errorf("build pipeline: %w", err)
			}
			defer func() {
				if err := pipeline.Close(); err != nil {
					logger.Warn("close pipeline", "error", err)
				}
			}()

			report, err := pipeline.ETL.Run(ctx)
			if err != nil {
				return err
			}
			printReport(cmd.OutOrStdout(), report)
			return nil
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Keep outputs in memory and only report counts")
	return cmd
}

func validateCmd() *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check warehouse CSV files against the expected schemas",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := bootstrap(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			if dir == "" {
				dir = cfg.OutputDir
			}
			report, err := app.NewSchemaValidator(logger).ValidateDir(cmd.Context(), dir)
			if err != nil {
				return err
			}
			printValidation(cmd.OutOrStdout(), report)
			if !report.OK() {
				return errValidationFailed
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "", "Directory to validate (defaults to WAREHOUSE_OUTPUT_DIR)")
	return cmd
}

// bootstrap sends logs to logOut; stdout carries the command's own output.
func bootstrap(logOut io.Writer) (config.Config, *logging.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, err
	}
	logger := logging.NewJSONTo(logOut, cfg.LogLevel)
	logging.SetDefault(logger)
	return cfg, logger, nil
}

func printReport(w io.Writer, report warehouse.Report) {
	mode := "write"
	if report.DryRun {
		mode = "dry-run"
	}
	fmt.Fprintf(w, "run %s (%s)\n", report.RunID, mode)
	fmt.Fprintf(w, "match files: %d found, %d read, %d skipped\n", report.FilesFound, report.FilesRead, len(report.SkippedFiles))
	fmt.Fprintf(w, "match records: %d (regenerated ids %d, null dates %d)\n", report.MatchRecords, report.RegeneratedMatchIDs, report.NullDates)
	fmt.Fprintf(w, "new teams: %d\n", len(report.NewTeams))
	fmt.Fprintf(w, "unresolved: competitions %d, seasons %d, teams %d\n",
		report.UnresolvedCompetitions, report.UnresolvedSeasons, report.UnresolvedTeams)

	names := make([]string, 0, len(report.Rows))
	for name := range report.Rows {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "  %s: %d rows\n", name, report.Rows[name])
	}
}

func printValidation(w io.Writer, report usecase.ValidationReport) {
	for _, f := range report.Files {
		status := "OK"
		if !f.OK {
			status = "FAIL"
		}
		fmt.Fprintf(w, "%s: %s\n", f.File, status)
		for _, e := range f.Errors {
			fmt.Fprintf(w, "  - %s\n", e)
		}
		for _, warn := range f.Warnings {
			fmt.Fprintf(w, "  ~ %s\n", warn)
		}
	}
}
