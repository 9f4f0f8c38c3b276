// Package errordist computes per-website error distributions from ad-server
// error exports: each error row's share of its website's total ad calls, plus
// a one-row-per-website summary led by the dominant error.
package errordist

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/SataStrike/Highlighter/pkg/contracts/domain"
)

// Row is one error record annotated with its share of the website total.
type Row struct {
	domain.ErrorRecord

	// Share of the website's total ad calls, formatted "12.34%".
	Percentage string
}

// Summary condenses a website to its dominant error (highest ad-call count)
// and the website-wide totals.
type Summary struct {
	Website       string
	TopError      string
	TopType       string
	TopReason     string
	TotalAdCalls  float64
	TopPercentage string
}

// Calculator distributes error ad-call counts per website.
type Calculator struct {
	logger *slog.Logger
}

// NewCalculator builds a distribution calculator. Nil logger falls back to
// the slog default.
func NewCalculator(logger *slog.Logger) *Calculator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Calculator{logger: logger}
}

// Distribute annotates every record with its percentage of the website's
// total ad calls. Output is grouped by website in ascending name order;
// within a website, records keep their input order. Websites whose total is
// zero render every share as "0.00%".
func (c *Calculator) Distribute(records []domain.ErrorRecord) []Row {
	totals := make(map[string]float64, len(records))
	bySite := make(map[string][]domain.ErrorRecord, len(records))
	for _, rec := range records {
		totals[rec.Website] += rec.AdCalls
		bySite[rec.Website] = append(bySite[rec.Website], rec)
	}

	sites := make([]string, 0, len(bySite))
	for site := range bySite {
		sites = append(sites, site)
	}
	sort.Strings(sites)

	out := make([]Row, 0, len(records))
	for _, site := range sites {
		total := totals[site]
		for _, rec := range bySite[site] {
			out = append(out, Row{
				ErrorRecord: rec,
				Percentage:  formatShare(rec.AdCalls, total),
			})
		}
	}

	c.logger.Info("error distribution computed",
		slog.Int("records", len(records)),
		slog.Int("websites", len(sites)))
	return out
}

// Summarize reduces records to one row per website, keyed on the error with
// the highest ad-call count. Ties keep the earlier record. Output is sorted
// by website name.
func (c *Calculator) Summarize(records []domain.ErrorRecord) []Summary {
	totals := make(map[string]float64, len(records))
	top := make(map[string]domain.ErrorRecord, len(records))
	for _, rec := range records {
		totals[rec.Website] += rec.AdCalls
		if best, ok := top[rec.Website]; !ok || rec.AdCalls > best.AdCalls {
			top[rec.Website] = rec
		}
	}

	sites := make([]string, 0, len(top))
	for site := range top {
		sites = append(sites, site)
	}
	sort.Strings(sites)

	out := make([]Summary, 0, len(sites))
	for _, site := range sites {
		best := top[site]
		out = append(out, Summary{
			Website:       site,
			TopError:      best.CSMError,
			TopType:       best.Type,
			TopReason:     best.AdsTxtReason,
			TotalAdCalls:  totals[site],
			TopPercentage: formatShare(best.AdCalls, totals[site]),
		})
	}
	return out
}

func formatShare(part, total float64) string {
	if total == 0 {
		return "0.00%"
	}
	return fmt.Sprintf("%.2f%%", part/total*100)
}

// Header returns the distribution output columns.
func Header() []string {
	return []string{"Website", "CSM Error", "Type", "Ads.txt Reason", "Ad Calls", "Percentage"}
}

// Record renders one distribution row against Header.
func (r Row) Record() []string {
	return []string{
		r.Website, r.CSMError, r.Type, r.AdsTxtReason,
		fmt.Sprintf("%g", r.AdCalls), r.Percentage,
	}
}

// SummaryHeader returns the per-website summary output columns.
func SummaryHeader() []string {
	return []string{"Website", "Top Error", "Type", "Ads.txt Reason", "Total Ad Calls", "Top Error Share"}
}

// Record renders one summary row against SummaryHeader.
func (s Summary) Record() []string {
	return []string{
		s.Website, s.TopError, s.TopType, s.TopReason,
		fmt.Sprintf("%g", s.TotalAdCalls), s.TopPercentage,
	}
}
