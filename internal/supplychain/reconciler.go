package supplychain

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/SataStrike/Highlighter/pkg/contracts/domain"
)

// domainSuffixRE strips a trailing TLD from a bidder name, so
// "openx.com, 123, RESELLER" reports the bidder "openx".
var domainSuffixRE = regexp.MustCompile(`\.\w+$`)

// rowTally holds the classification outcome of one report row before it is
// merged into a DomainSummary.
type rowTally struct {
	master, primary, secondary                       int
	masterLines, primaryLines, secondaryLines, unknownLines []string
}

// Reconciler folds report rows into per-(domain, name) summaries using a
// Classifier over a ReferenceIndex.
type Reconciler struct {
	classifier *Classifier
	logger     *slog.Logger
	observer   Observer
}

// NewReconciler builds a reconciler. Nil logger falls back to the slog
// default; nil observer discards audit events.
func NewReconciler(index *ReferenceIndex, logger *slog.Logger, observer Observer) *Reconciler {
	if logger == nil {
		logger = slog.Default()
	}
	if observer == nil {
		observer = NopObserver{}
	}
	return &Reconciler{
		classifier: NewClassifier(index),
		logger:     logger,
		observer:   observer,
	}
}

// Reconcile processes report rows in input order and returns one summary per
// distinct (domain, name) key, ordered by first appearance. Rows that fail
// to process still contribute a zero-count summary; only rows with an empty
// domain are dropped.
func (r *Reconciler) Reconcile(rows []domain.ReportRow) []domain.DomainSummary {
	runID := uuid.NewString()
	logger := r.logger.With(slog.String("run_id", runID))
	logger.Info("starting reconciliation", slog.Int("rows", len(rows)))

	summaries := make([]domain.DomainSummary, 0, len(rows))
	indexByKey := make(map[string]int, len(rows))

	for i, row := range rows {
		dom := strings.TrimSpace(row.Domain)
		if dom == "" {
			logger.Debug("skipping row without domain", slog.Int("row", i))
			continue
		}
		name := strings.TrimSpace(row.Name)
		if name == "" {
			name = dom
		}

		tally, err := r.processRow(i, row)
		if err != nil {
			r.observer.RowFailure(i, dom, name, err)
			tally = &rowTally{}
		}

		key := dom + "_" + name
		if idx, seen := indexByKey[key]; seen {
			mergeTally(&summaries[idx], row, tally)
		} else {
			indexByKey[key] = len(summaries)
			summaries = append(summaries, newSummary(dom, name, row, tally))
		}
	}

	logger.Info("reconciliation complete",
		slog.Int("rows", len(rows)),
		slog.Int("summaries", len(summaries)))
	return summaries
}

// processRow parses and classifies one row's missing-lines text. A panic
// while handling a malformed cell is confined to the row.
func (r *Reconciler) processRow(rowIndex int, row domain.ReportRow) (tally *rowTally, err error) {
	defer func() {
		if p := recover(); p != nil {
			tally, err = nil, fmt.Errorf("processing missing lines: %v", p)
		}
	}()

	tally = &rowTally{}
	for _, line := range ParseMissingLines(row.MissingLinesText) {
		normalized := Normalize(line)
		if normalized == "" {
			continue
		}
		result := r.classifier.Classify(line)
		r.observer.Decision(rowIndex, normalized, result)

		switch result.Category.Bucket() {
		case domain.CategoryMaster:
			tally.master++
			tally.masterLines = append(tally.masterLines, line)
		case domain.CategoryPrimary:
			tally.primary++
			tally.primaryLines = append(tally.primaryLines, line)
		case domain.CategoryUnknown:
			tally.unknownLines = append(tally.unknownLines, line)
		default:
			tally.secondary++
			tally.secondaryLines = append(tally.secondaryLines, line)
		}
	}
	return tally, nil
}

// newSummary creates the first summary for a (domain, name) key.
func newSummary(dom, name string, row domain.ReportRow, t *rowTally) domain.DomainSummary {
	return domain.DomainSummary{
		Domain:                dom,
		Name:                  name,
		Status:                row.Status,
		MasterMissing:         t.master,
		PrimaryMissing:        t.primary,
		SecondaryMissing:      t.secondary,
		TotalMissing:          t.master + t.primary + t.secondary,
		UnknownLines:          len(t.unknownLines),
		MasterLines:           strings.Join(t.masterLines, ", "),
		PrimaryLines:          strings.Join(t.primaryLines, ", "),
		SecondaryLines:        strings.Join(t.secondaryLines, ", "),
		UnknownLinesText:      strings.Join(t.unknownLines, ", "),
		MissingPrimaryBidders: formatBidders(extractPrimaryBidders(row, t.primaryLines)),
	}
}

// mergeTally adds a subsequent row's tally to an existing summary: counts
// accumulate, line text and bidder names append. Repeated bidder mentions
// across merged rows are preserved on purpose; they reflect repeated report
// occurrences.
func mergeTally(s *domain.DomainSummary, row domain.ReportRow, t *rowTally) {
	s.MasterMissing += t.master
	s.PrimaryMissing += t.primary
	s.SecondaryMissing += t.secondary
	s.TotalMissing += t.master + t.primary + t.secondary
	s.UnknownLines += len(t.unknownLines)

	s.MasterLines = appendJoined(s.MasterLines, t.masterLines)
	s.PrimaryLines = appendJoined(s.PrimaryLines, t.primaryLines)
	s.SecondaryLines = appendJoined(s.SecondaryLines, t.secondaryLines)
	s.UnknownLinesText = appendJoined(s.UnknownLinesText, t.unknownLines)

	if bidders := extractPrimaryBidders(row, t.primaryLines); len(bidders) > 0 {
		formatted := formatBidders(bidders)
		if s.MissingPrimaryBidders == "" || s.MissingPrimaryBidders == domain.NoMissingBidders {
			s.MissingPrimaryBidders = formatted
		} else {
			s.MissingPrimaryBidders += "; " + formatted
		}
	}
}

// extractPrimaryBidders resolves the bidder names behind a row's missing
// primary lines. A dedicated bidder column on the report wins; otherwise
// names come from the line prefixes with their domain suffix stripped.
func extractPrimaryBidders(row domain.ReportRow, primaryLines []string) []string {
	if b := strings.TrimSpace(row.Bidder); b != "" && len(primaryLines) > 0 {
		return []string{b}
	}

	var bidders []string
	for _, line := range primaryLines {
		normalized := Normalize(line)
		bidder := bidderPrefix(normalized)
		if bidder == "" {
			continue
		}
		bidder = domainSuffixRE.ReplaceAllString(bidder, "")
		if bidder != "" {
			bidders = append(bidders, bidder)
		}
	}
	return bidders
}

// formatBidders renders bidder names with the trailing space and "; " join
// the downstream mail templates expect, or the sentinel when empty.
func formatBidders(bidders []string) string {
	if len(bidders) == 0 {
		return domain.NoMissingBidders
	}
	formatted := make([]string, len(bidders))
	for i, b := range bidders {
		formatted[i] = b + " "
	}
	return strings.Join(formatted, "; ")
}

// appendJoined appends newly classified lines to an existing joined string.
func appendJoined(existing string, lines []string) string {
	if len(lines) == 0 {
		return existing
	}
	joined := strings.Join(lines, ", ")
	if existing == "" {
		return joined
	}
	return existing + ", " + joined
}
