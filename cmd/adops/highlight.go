package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/SataStrike/Highlighter/internal/exporter"
	"github.com/SataStrike/Highlighter/internal/files"
	"github.com/SataStrike/Highlighter/internal/highlight"
	"github.com/SataStrike/Highlighter/internal/infrastructure"
	"github.com/SataStrike/Highlighter/internal/rules"
	"github.com/SataStrike/Highlighter/pkg/contracts/domain"
)

// NewHighlightCmd creates the highlight command.
func NewHighlightCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "highlight",
		Short: "Diff two performance exports and flag notable movements",
		Long: `Highlight outer-joins the latest and oldest performance exports on website
name, computes the percentage change per metric, marks domains that appeared
or disappeared between the periods, and annotates each row with the priority
resolved from the rules file.

Examples:
  # Diff two weekly exports with the default rules file
  adops highlight --latest this_week.csv --oldest last_week.csv

  # Write an xlsx workbook with explicit rules
  adops highlight --latest a.csv --oldest b.csv --rules rules.yaml --output diff.xlsx`,
		Args: cobra.NoArgs,
		RunE: runHighlightCmd,
	}

	cmd.Flags().StringP("latest", "l", "", "Path to the latest-period export (required)")
	cmd.Flags().StringP("oldest", "O", "", "Path to the oldest-period export (required)")
	cmd.Flags().String("rules", "", "Path to the rules YAML (default: configured rules file)")
	cmd.Flags().StringP("output", "o", "", "Output path, .csv or .xlsx (default: domains_highlight.csv in reports dir)")
	_ = cmd.MarkFlagRequired("latest")
	_ = cmd.MarkFlagRequired("oldest")

	return cmd
}

// runHighlightCmd executes the highlight command.
func runHighlightCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := setup(cmd)
	if err != nil {
		return err
	}
	logger := infrastructure.GetLogger()

	latestPath, err := cmd.Flags().GetString("latest")
	if err != nil {
		return err
	}
	oldestPath, err := cmd.Flags().GetString("oldest")
	if err != nil {
		return err
	}
	rulesPath, err := cmd.Flags().GetString("rules")
	if err != nil {
		return err
	}
	explicitRules := rulesPath != ""
	if !explicitRules {
		rulesPath = cfg.Paths.RulesFile
	}
	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}
	if output == "" {
		output = filepath.Join(cfg.Paths.ReportsDir, "domains_highlight.csv")
	}

	ruleSet, err := rules.LoadFile(rulesPath)
	if err != nil {
		// A missing default rules file only disables priorities; an
		// explicitly named file must exist.
		if explicitRules || !errors.Is(err, os.ErrNotExist) {
			return err
		}
		logger.Warn("rules file not found, priorities disabled", "path", rulesPath)
		ruleSet = rules.Set{}
	}

	var latest, oldest []domain.MetricRow
	reader := files.NewMetricsReader(logger)
	g, _ := errgroup.WithContext(cmd.Context())
	g.Go(func() error {
		var err error
		latest, err = reader.ReadMetrics(latestPath)
		return err
	})
	g.Go(func() error {
		var err error
		oldest, err = reader.ReadMetrics(oldestPath)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	diffRows := highlight.NewEngine(logger, ruleSet).Diff(latest, oldest)
	records := make([][]string, 0, len(diffRows))
	for _, r := range diffRows {
		records = append(records, r.Record())
	}

	if strings.EqualFold(filepath.Ext(output), ".xlsx") {
		err = exporter.NewExcelWriter(logger).WriteWorkbook(output, exporter.Sheet{
			Name:    "Domains Highlight",
			Headers: highlight.Header(),
			Records: records,
		})
	} else {
		err = exporter.NewCSVWriter(logger).WriteCSV(output, exporter.WriteOptions{
			Headers:   highlight.Header(),
			Records:   records,
			BOMPrefix: true,
		})
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Highlighted %d domains.\n", len(diffRows))
	fmt.Fprintf(cmd.OutOrStdout(), "Output written to %s\n", output)
	return nil
}
