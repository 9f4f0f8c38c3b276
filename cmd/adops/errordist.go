package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SataStrike/Highlighter/internal/errordist"
	"github.com/SataStrike/Highlighter/internal/exporter"
	"github.com/SataStrike/Highlighter/internal/files"
	"github.com/SataStrike/Highlighter/internal/infrastructure"
)

// NewErrorDistCmd creates the errordist command.
func NewErrorDistCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "errordist",
		Short: "Compute per-website error distributions from an error export",
		Long: `Errordist annotates every error record with its share of the website's
total ad calls and condenses each website to its dominant error.

The xlsx output carries both tables as separate sheets; CSV output holds the
distribution, with the per-website summary in a second file next to it.

Examples:
  adops errordist --input errors.csv
  adops errordist --input errors.csv --output distribution.xlsx`,
		Args: cobra.NoArgs,
		RunE: runErrorDistCmd,
	}

	cmd.Flags().StringP("input", "i", "", "Path to the error export CSV (required)")
	cmd.Flags().StringP("output", "o", "", "Output path, .csv or .xlsx (default: error_distribution.csv in reports dir)")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

// runErrorDistCmd executes the errordist command.
func runErrorDistCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := setup(cmd)
	if err != nil {
		return err
	}
	logger := infrastructure.GetLogger()

	input, err := cmd.Flags().GetString("input")
	if err != nil {
		return err
	}
	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}
	if output == "" {
		output = filepath.Join(cfg.Paths.ReportsDir, "error_distribution.csv")
	}

	records, err := files.NewMetricsReader(logger).ReadErrors(input)
	if err != nil {
		return err
	}

	calc := errordist.NewCalculator(logger)
	distribution := calc.Distribute(records)
	summaries := calc.Summarize(records)

	distRecords := make([][]string, 0, len(distribution))
	for _, r := range distribution {
		distRecords = append(distRecords, r.Record())
	}
	summaryRecords := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		summaryRecords = append(summaryRecords, s.Record())
	}

	if strings.EqualFold(filepath.Ext(output), ".xlsx") {
		err = exporter.NewExcelWriter(logger).WriteWorkbook(output,
			exporter.Sheet{
				Name:    "Error Distribution",
				Headers: errordist.Header(),
				Records: distRecords,
			},
			exporter.Sheet{
				Name:    "Summary",
				Headers: errordist.SummaryHeader(),
				Records: summaryRecords,
			},
		)
		if err != nil {
			return err
		}
	} else {
		writer := exporter.NewCSVWriter(logger)
		if err := writer.WriteCSV(output, exporter.WriteOptions{
			Headers:   errordist.Header(),
			Records:   distRecords,
			BOMPrefix: true,
		}); err != nil {
			return err
		}
		summaryPath := strings.TrimSuffix(output, filepath.Ext(output)) + "_summary.csv"
		if err := writer.WriteCSV(summaryPath, exporter.WriteOptions{
			Headers:   errordist.SummaryHeader(),
			Records:   summaryRecords,
			BOMPrefix: true,
		}); err != nil {
			return err
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Distributed %d error records over %d websites.\n",
		len(distribution), len(summaries))
	fmt.Fprintf(cmd.OutOrStdout(), "Output written to %s\n", output)
	return nil
}
