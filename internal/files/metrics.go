package files

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	apperrors "github.com/SataStrike/Highlighter/internal/errors"
	"github.com/SataStrike/Highlighter/pkg/contracts/domain"
)

const websiteHeader = "Website/App Name"

// errorHeaders are the required columns of an error export, in order.
var errorHeaders = []string{websiteHeader, "CSM Error", "Type", "Website Ads Txt Reason", "Ad Calls"}

// MetricsReader loads the performance and error CSV exports.
type MetricsReader struct {
	logger *slog.Logger
}

// NewMetricsReader builds a metrics reader. Nil logger falls back to the
// slog default.
func NewMetricsReader(logger *slog.Logger) *MetricsReader {
	if logger == nil {
		logger = slog.Default()
	}
	return &MetricsReader{logger: logger}
}

// ReadMetrics parses a performance export. The website column is required;
// every other column is carried as-is into Values, keyed by its trimmed
// header, so the diff engine decides what is numeric.
func (m *MetricsReader) ReadMetrics(path string) ([]domain.MetricRow, error) {
	records, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return nil, apperrors.ErrEmptyTable
	}

	header := records[0]
	siteCol, ok := resolveColumn(header, websiteHeader, "Website", "Domain")
	if !ok {
		return nil, apperrors.NewMissingColumn("metrics export", "website", websiteHeader)
	}

	out := make([]domain.MetricRow, 0, len(records)-1)
	for _, row := range records[1:] {
		rec := domain.MetricRow{
			Website: cell(row, siteCol),
			Values:  make(map[string]string, len(header)),
		}
		if rec.Website == "" {
			continue
		}
		for i, h := range header {
			if i == siteCol {
				continue
			}
			if name := strings.TrimSpace(h); name != "" {
				rec.Values[name] = cell(row, i)
			}
		}
		out = append(out, rec)
	}

	m.logger.Info("metrics export loaded",
		slog.String("path", path),
		slog.Int("rows", len(out)))
	return out, nil
}

// ReadErrors parses an error export into typed records. All five error
// columns are required.
func (m *MetricsReader) ReadErrors(path string) ([]domain.ErrorRecord, error) {
	records, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return nil, apperrors.ErrEmptyTable
	}

	header := records[0]
	cols := make([]int, len(errorHeaders))
	for i, name := range errorHeaders {
		col, ok := resolveColumn(header, name)
		if !ok {
			return nil, apperrors.NewMissingColumn("error export", name, name)
		}
		cols[i] = col
	}

	out := make([]domain.ErrorRecord, 0, len(records)-1)
	for i, row := range records[1:] {
		rec := domain.ErrorRecord{
			Website:      cell(row, cols[0]),
			CSMError:     cell(row, cols[1]),
			Type:         cell(row, cols[2]),
			AdsTxtReason: cell(row, cols[3]),
		}
		if rec.Website == "" {
			continue
		}
		raw := strings.ReplaceAll(cell(row, cols[4]), ",", "")
		calls, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			m.logger.Warn("skipping error row with unparsable ad calls",
				slog.Int("row", i+1),
				slog.String("website", rec.Website),
				slog.String("value", raw))
			continue
		}
		rec.AdCalls = calls
		out = append(out, rec)
	}

	m.logger.Info("error export loaded",
		slog.String("path", path),
		slog.Int("rows", len(out)))
	return out, nil
}

// readCSV reads a whole CSV file, tolerating ragged rows and a UTF-8 BOM.
func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV %s: %w", path, err)
	}
	if len(records) > 0 && len(records[0]) > 0 {
		records[0][0] = strings.TrimPrefix(records[0][0], "\uFEFF")
	}
	return records, nil
}
