// Package highlight implements the period-over-period metric diff engine
// behind the domains highlighter: it outer-joins two performance exports on
// website name, computes percentage differences per metric, flags new and
// deprecated domains, and resolves a highlight priority per row from the
// configured rules.
package highlight

import (
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"github.com/SataStrike/Highlighter/internal/rules"
	"github.com/SataStrike/Highlighter/pkg/contracts/domain"
)

// MetricColumns is the canonical diffable column set, in output order.
// "Time in view" and "Platform" ride along in exports but are not diffed.
var MetricColumns = []string{
	"Revenue", "Ad Requests", "RPB", "CPM", "Bid Rate",
	"Win Rate", "Fill Rate", "Impressions", "Viewability",
}

// DomainStatus marks a website's membership across the two periods.
type DomainStatus string

const (
	StatusPresent    DomainStatus = "Present in both"
	StatusNew        DomainStatus = "New"
	StatusDeprecated DomainStatus = "Deprecated"
)

// Row is one diffed website. Values holds the latest-period numbers, Diffs
// the percentage change per metric; absence of a key means the value or diff
// could not be computed for that metric.
type Row struct {
	Website  string
	Status   DomainStatus
	Values   map[string]float64
	Diffs    map[string]float64
	Priority rules.Priority
}

// Engine diffs two periods of metric rows under a rule set.
type Engine struct {
	logger *slog.Logger
	rules  rules.Set
}

// NewEngine builds a diff engine. Nil logger falls back to the slog default.
func NewEngine(logger *slog.Logger, ruleSet rules.Set) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{logger: logger, rules: ruleSet}
}

// Diff outer-joins the latest and oldest exports by website and returns one
// row per website, sorted by website name for a stable output.
func (e *Engine) Diff(latest, oldest []domain.MetricRow) []Row {
	latestBySite := indexBySite(latest)
	oldestBySite := indexBySite(oldest)

	sites := make([]string, 0, len(latestBySite)+len(oldestBySite))
	seen := make(map[string]bool, len(latestBySite)+len(oldestBySite))
	for _, r := range append(append([]domain.MetricRow{}, latest...), oldest...) {
		if r.Website != "" && !seen[r.Website] {
			seen[r.Website] = true
			sites = append(sites, r.Website)
		}
	}
	sort.Strings(sites)

	out := make([]Row, 0, len(sites))
	for _, site := range sites {
		newer, inLatest := latestBySite[site]
		older, inOldest := oldestBySite[site]

		row := Row{
			Website: site,
			Values:  make(map[string]float64, len(MetricColumns)),
			Diffs:   make(map[string]float64, len(MetricColumns)),
		}
		switch {
		case inLatest && inOldest:
			row.Status = StatusPresent
		case inLatest:
			row.Status = StatusNew
		default:
			row.Status = StatusDeprecated
		}

		// Deprecated domains carry no values in the output; new domains
		// keep their values but have no baseline to diff against.
		if row.Status != StatusDeprecated {
			for _, col := range MetricColumns {
				v, ok := parseMetric(newer.Values[col])
				if !ok {
					continue
				}
				row.Values[col] = v
				if row.Status != StatusPresent {
					continue
				}
				base, ok := parseMetric(older.Values[col])
				if !ok || base == 0 {
					continue
				}
				row.Diffs[col] = (v - base) / base * 100
			}
		}

		row.Priority = e.rules.Resolve(row.Diffs)
		out = append(out, row)
	}

	e.logger.Info("metric diff complete",
		slog.Int("latest_rows", len(latest)),
		slog.Int("oldest_rows", len(oldest)),
		slog.Int("output_rows", len(out)))
	return out
}

// Header returns the output column set: website, value and diff per metric,
// then the membership status and resolved priority.
func Header() []string {
	header := []string{"Website/App Name"}
	for _, col := range MetricColumns {
		header = append(header, col, col+" % Diff")
	}
	return append(header, "New and Deprecated", "Priority")
}

// Record renders one row against Header. Missing values and diffs render as
// empty cells.
func (r Row) Record() []string {
	rec := []string{r.Website}
	for _, col := range MetricColumns {
		rec = append(rec, formatCell(r.Values, col), formatCell(r.Diffs, col))
	}
	return append(rec, string(r.Status), string(r.Priority))
}

func formatCell(m map[string]float64, col string) string {
	v, ok := m[col]
	if !ok {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func indexBySite(rows []domain.MetricRow) map[string]domain.MetricRow {
	idx := make(map[string]domain.MetricRow, len(rows))
	for _, r := range rows {
		if r.Website != "" {
			idx[r.Website] = r
		}
	}
	return idx
}

// parseMetric converts raw cell text to a number, tolerating thousands
// separators and percent signs.
func parseMetric(raw string) (float64, bool) {
	cleaned := strings.TrimSpace(strings.TrimSuffix(strings.ReplaceAll(raw, ",", ""), "%"))
	if cleaned == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
