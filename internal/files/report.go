package files

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/xuri/excelize/v2"

	apperrors "github.com/SataStrike/Highlighter/internal/errors"
	"github.com/SataStrike/Highlighter/pkg/contracts/domain"
)

// Header candidates for the report columns, tried in order. Matching is
// case-insensitive on trimmed header text.
var (
	nameHeaders = []string{"Publisher Name", "Name", "Publisher", "Site Name"}

	missingLinesHeaders = []string{
		"Missing Lines Text", "Missing Lines", "Missing",
		"File 1 Column C", "Rows with Missing Participants",
	}

	bidderHeaders = []string{"Bidder", "Bidder Name", "Partner", "Partner Name"}
)

// ReportReader loads supply-chain report workbooks.
type ReportReader struct {
	logger *slog.Logger
}

// NewReportReader builds a report reader. Nil logger falls back to the slog
// default.
func NewReportReader(logger *slog.Logger) *ReportReader {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReportReader{logger: logger}
}

// ReadReport opens an xlsx workbook, finds the report sheet, and returns its
// rows. The Domain and missing-lines columns are required; everything else
// degrades gracefully (Name falls back to Domain downstream, Bidder stays
// empty).
func (r *ReportReader) ReadReport(path string) ([]domain.ReportRow, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open report workbook: %w", err)
	}
	defer f.Close()

	rows, sheet, err := r.findReportSheet(f)
	if err != nil {
		return nil, err
	}
	r.logger.Debug("report sheet selected",
		slog.String("sheet", sheet),
		slog.Int("rows", len(rows)))

	header := rows[0]
	domainCol, ok := resolveColumn(header, "Domain")
	if !ok {
		return nil, apperrors.NewMissingColumn("supply chain report", "Domain", "Domain")
	}
	missingCol, ok := resolveColumn(header, missingLinesHeaders...)
	if !ok {
		// Last resort: any header mentioning both missing and line.
		missingCol, ok = scanColumn(header, func(h string) bool {
			return strings.Contains(h, "missing") && strings.Contains(h, "line")
		})
	}
	if !ok {
		return nil, apperrors.NewMissingColumn("supply chain report", "missing lines", missingLinesHeaders...)
	}

	nameCol, hasName := resolveColumn(header, nameHeaders...)
	bidderCol, hasBidder := resolveColumn(header, bidderHeaders...)
	statusCol, hasStatus := resolveColumn(header, "Status")
	platformCol, hasPlatform := resolveColumn(header, "Platform")
	codeCol, hasCode := resolveColumn(header, "Status Code", "Code")

	out := make([]domain.ReportRow, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := domain.ReportRow{
			Domain:           cell(row, domainCol),
			MissingLinesText: cell(row, missingCol),
		}
		if hasName {
			rec.Name = cell(row, nameCol)
		}
		if hasBidder {
			rec.Bidder = cell(row, bidderCol)
		}
		if hasStatus {
			rec.Status = cell(row, statusCol)
		}
		if hasPlatform {
			rec.Platform = cell(row, platformCol)
		}
		if hasCode {
			rec.StatusCode = cell(row, codeCol)
		}
		out = append(out, rec)
	}
	if len(out) == 0 {
		return nil, apperrors.ErrEmptyTable
	}

	r.logger.Info("report loaded",
		slog.String("path", path),
		slog.Int("rows", len(out)),
		slog.Bool("has_bidder_column", hasBidder))
	return out, nil
}

// findReportSheet returns the first sheet whose header row resolves a Domain
// column, preferring the workbook's active sheet.
func (r *ReportReader) findReportSheet(f *excelize.File) ([][]string, string, error) {
	names := f.GetSheetList()
	if active := f.GetSheetName(f.GetActiveSheetIndex()); active != "" {
		ordered := []string{active}
		for _, n := range names {
			if n != active {
				ordered = append(ordered, n)
			}
		}
		names = ordered
	}

	for _, name := range names {
		rows, err := f.GetRows(name)
		if err != nil || len(rows) < 2 {
			continue
		}
		if _, ok := resolveColumn(rows[0], "Domain"); ok {
			return rows, name, nil
		}
	}
	return nil, "", apperrors.ErrNoSheet
}

// resolveColumn finds the index of the first candidate present in the header
// row, comparing trimmed and case-folded.
func resolveColumn(header []string, candidates ...string) (int, bool) {
	for _, cand := range candidates {
		for i, h := range header {
			if strings.EqualFold(strings.TrimSpace(h), cand) {
				return i, true
			}
		}
	}
	return 0, false
}

// scanColumn finds the first header for which match returns true; the header
// is lowercased and trimmed before the call.
func scanColumn(header []string, match func(string) bool) (int, bool) {
	for i, h := range header {
		if match(strings.ToLower(strings.TrimSpace(h))) {
			return i, true
		}
	}
	return 0, false
}

func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
