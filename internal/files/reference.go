package files

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"

	apperrors "github.com/SataStrike/Highlighter/internal/errors"
	"github.com/SataStrike/Highlighter/pkg/contracts/domain"
)

var (
	lineHeaders     = []string{"Line", "AdsLine", "Ads.txt Line", "Line Content"}
	categoryHeaders = []string{"Category", "Line category", "Type", "Line Type", "LineType"}
)

// ReferenceReader loads the canonical ads.txt referential from CSV.
type ReferenceReader struct {
	logger *slog.Logger
}

// NewReferenceReader builds a reference reader. Nil logger falls back to the
// slog default.
func NewReferenceReader(logger *slog.Logger) *ReferenceReader {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReferenceReader{logger: logger}
}

// ReadReference parses the reference CSV. The line and category columns are
// required; rows missing either value are skipped with a debug log rather
// than failing the run.
func (r *ReferenceReader) ReadReference(path string) ([]domain.ReferenceEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open reference file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse reference CSV: %w", err)
	}
	if len(records) < 2 {
		return nil, apperrors.ErrEmptyTable
	}

	header := records[0]
	lineCol, ok := resolveColumn(header, lineHeaders...)
	if !ok {
		return nil, apperrors.NewMissingColumn("reference sheet", "line", lineHeaders...)
	}
	categoryCol, ok := resolveColumn(header, categoryHeaders...)
	if !ok {
		return nil, apperrors.NewMissingColumn("reference sheet", "category", categoryHeaders...)
	}
	statusCol, hasStatus := resolveColumn(header, "Status")

	out := make([]domain.ReferenceEntry, 0, len(records)-1)
	skipped := 0
	for i, row := range records[1:] {
		entry := domain.ReferenceEntry{
			RawLine:  cell(row, lineCol),
			Category: cell(row, categoryCol),
		}
		if hasStatus {
			entry.Status = cell(row, statusCol)
		}
		if entry.RawLine == "" || entry.Category == "" {
			skipped++
			r.logger.Debug("skipping malformed reference row", slog.Int("row", i+1))
			continue
		}
		out = append(out, entry)
	}

	r.logger.Info("reference loaded",
		slog.String("path", path),
		slog.Int("entries", len(out)),
		slog.Int("skipped", skipped))
	return out, nil
}
