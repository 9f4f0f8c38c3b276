// Package mailer renders analysis results as markdown mail bodies ready to
// paste into an email or a shared doc.
package mailer

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/nao1215/markdown"

	"github.com/SataStrike/Highlighter/internal/revenue"
)

// Composer renders markdown mail bodies.
type Composer struct {
	logger *slog.Logger
	now    func() time.Time
}

// NewComposer builds a mail composer. Nil logger falls back to the slog
// default.
func NewComposer(logger *slog.Logger) *Composer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Composer{logger: logger, now: time.Now}
}

// WriteTargetAnalysis renders a revenue target gap analysis: the headline
// numbers, then the value each funnel metric alone must reach.
func (c *Composer) WriteTargetAnalysis(w io.Writer, analysis revenue.TargetAnalysis) error {
	md := markdown.NewMarkdown(w)

	md.H1("Revenue Target Analysis")
	md.PlainText("")
	md.PlainTextf("Generated on %s.", c.now().Format("2006-01-02"))
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Figure", "Value"},
		Rows: [][]string{
			{"Current revenue", formatMoney(analysis.CurrentRevenue)},
			{"Target revenue", formatMoney(analysis.TargetRevenue)},
			{"Required multiplier", fmt.Sprintf("%.2fx", analysis.RequiredMultiplier)},
		},
	})
	md.PlainText("")

	md.H2("What Each Metric Must Reach On Its Own")
	md.PlainText("")

	rows := make([][]string, 0, len(analysis.Metrics))
	for _, m := range analysis.Metrics {
		rows = append(rows, []string{
			m.Metric,
			fmt.Sprintf("%.2f", m.Current),
			fmt.Sprintf("%.2f", m.Required),
			fmt.Sprintf("%+.1f%%", m.IncreasePct),
			fmt.Sprintf("%+.2f", m.IncreaseAbs),
		})
	}
	md.Table(markdown.TableSet{
		Header: []string{"Metric", "Current", "Required", "Increase %", "Increase"},
		Rows:   rows,
	})
	md.PlainText("")
	md.PlainText("Each row assumes the other metrics stay flat; rates cap at 100%.")

	if err := md.Build(); err != nil {
		return fmt.Errorf("failed to render target analysis: %w", err)
	}
	c.logger.Debug("target analysis mail rendered", slog.Int("metrics", len(analysis.Metrics)))
	return nil
}

// WriteBidRateImpact renders a bid-rate improvement summary.
func (c *Composer) WriteBidRateImpact(w io.Writer, in revenue.BidRateInputs, impact revenue.BidRateImpact) error {
	md := markdown.NewMarkdown(w)

	md.H1("Bid Rate Improvement Summary")
	md.PlainText("")
	md.PlainTextf("Moving the bid rate from %.1f%% to %.1f%% on %s monthly ad calls.",
		in.CurrentBidRate, in.ImprovedBidRate, formatCount(in.MonthlyAdCalls))
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Figure", "Current", "Improved"},
		Rows: [][]string{
			{"Biddable calls / month", formatCount(impact.CurrentBiddable), formatCount(impact.ImprovedBiddable)},
			{"Monthly revenue", formatMoney(impact.CurrentMonthly), formatMoney(impact.ImprovedMonthly)},
		},
	})
	md.PlainText("")

	md.H2("Upside")
	md.PlainText("")
	md.BulletList(
		fmt.Sprintf("Additional monthly revenue: %s", formatMoney(impact.AdditionalMonthly)),
		fmt.Sprintf("Additional annual revenue: %s", formatMoney(impact.AdditionalAnnual)),
	)

	if err := md.Build(); err != nil {
		return fmt.Errorf("failed to render bid rate summary: %w", err)
	}
	c.logger.Debug("bid rate mail rendered")
	return nil
}

func formatMoney(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

// formatCount renders large call volumes in billions or millions.
func formatCount(v float64) string {
	switch {
	case v >= 1e9:
		return fmt.Sprintf("%.2fB", v/1e9)
	case v >= 1e6:
		return fmt.Sprintf("%.2fM", v/1e6)
	default:
		return fmt.Sprintf("%.0f", v)
	}
}
