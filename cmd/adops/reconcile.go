package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/SataStrike/Highlighter/internal/exporter"
	"github.com/SataStrike/Highlighter/internal/files"
	"github.com/SataStrike/Highlighter/internal/infrastructure"
	"github.com/SataStrike/Highlighter/internal/supplychain"
	"github.com/SataStrike/Highlighter/pkg/contracts/domain"
)

// NewReconcileCmd creates the reconcile command.
func NewReconcileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Reconcile a supply-chain report against the ads.txt referential",
		Long: `Reconcile loads a compliance report workbook and the canonical ads.txt
referential, parses the free-text missing-lines cells, classifies every
candidate line (Primary, Master, Secondary, Unknown), and writes one summary
row per domain and publisher.

When --report is omitted, the most recent workbook in the configured data
directory is used.

Examples:
  # Reconcile an explicit report against a referential
  adops reconcile --report report.xlsx --reference reference.csv

  # Use the latest workbook from the data directory, write xlsx
  adops reconcile --reference reference.csv --output summary.xlsx`,
		Args: cobra.NoArgs,
		RunE: runReconcileCmd,
	}

	cmd.Flags().StringP("report", "r", "", "Path to the report workbook (default: latest in data dir)")
	cmd.Flags().StringP("reference", "R", "", "Path to the reference CSV (required)")
	cmd.Flags().StringP("output", "o", "", "Output path, .csv or .xlsx (default: supply_chain_summary.csv in reports dir)")
	_ = cmd.MarkFlagRequired("reference")

	return cmd
}

// runReconcileCmd executes the reconcile command.
func runReconcileCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := setup(cmd)
	if err != nil {
		return err
	}
	logger := infrastructure.GetLogger()

	reportPath, err := cmd.Flags().GetString("report")
	if err != nil {
		return err
	}
	referencePath, err := cmd.Flags().GetString("reference")
	if err != nil {
		return err
	}
	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}
	if output == "" {
		output = filepath.Join(cfg.Paths.ReportsDir, "supply_chain_summary.csv")
	}

	if reportPath == "" {
		workbooks, err := files.NewDiscovery(cfg.Paths.DataDir).FindWorkbooks(".")
		if err != nil {
			return fmt.Errorf("failed to scan data directory: %w", err)
		}
		latest, ok := files.Latest(workbooks)
		if !ok {
			return fmt.Errorf("no report workbook found in %s (use --report)", cfg.Paths.DataDir)
		}
		reportPath = latest.Path
	}

	// The report workbook and the reference CSV load independently.
	var (
		rows    []domain.ReportRow
		entries []domain.ReferenceEntry
	)
	g, _ := errgroup.WithContext(cmd.Context())
	g.Go(func() error {
		var err error
		rows, err = files.NewReportReader(logger).ReadReport(reportPath)
		return err
	})
	g.Go(func() error {
		var err error
		entries, err = files.NewReferenceReader(logger).ReadReference(referencePath)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	index := supplychain.BuildIndex(entries, logger)
	reconciler := supplychain.NewReconciler(index, logger, supplychain.NewSlogObserver(logger))
	summaries := reconciler.Reconcile(rows)

	records := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		records = append(records, s.Record())
	}

	if strings.EqualFold(filepath.Ext(output), ".xlsx") {
		err = exporter.NewExcelWriter(logger).WriteWorkbook(output, exporter.Sheet{
			Name:    "Supply Chain",
			Headers: domain.SummaryHeader(),
			Records: records,
		})
	} else {
		err = exporter.NewCSVWriter(logger).WriteCSV(output, exporter.WriteOptions{
			Headers:   domain.SummaryHeader(),
			Records:   records,
			BOMPrefix: true,
		})
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Reconciled %d report rows into %d domain summaries.\n", len(rows), len(summaries))
	fmt.Fprintf(cmd.OutOrStdout(), "Output written to %s\n", output)
	return nil
}
