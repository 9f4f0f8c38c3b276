// Package revenue models programmatic revenue: projections from the ad
// funnel (requests, bid rate, win rate, CPM or RPB) and the per-metric
// uplifts required to reach a revenue target.
package revenue

import (
	"fmt"
	"log/slog"
	"math"
)

// FunnelInputs are the current ad-funnel numbers a projection starts from.
// Rates are percentages (0-100], CPM is per thousand impressions, RPB is
// revenue per bid.
type FunnelInputs struct {
	AdRequests float64
	BidRate    float64
	WinRate    float64
	CPM        float64
	RPB        float64
}

// MetricTarget is the value one funnel metric must reach, alone, for current
// revenue to hit the target.
type MetricTarget struct {
	Metric      string
	Current     float64
	Required    float64
	IncreasePct float64
	IncreaseAbs float64
}

// TargetAnalysis is the full gap analysis between current and target revenue.
type TargetAnalysis struct {
	CurrentRevenue     float64
	TargetRevenue      float64
	RequiredMultiplier float64
	Metrics            []MetricTarget
}

// Calculator projects revenue and derives per-metric targets.
type Calculator struct {
	logger *slog.Logger
}

// NewCalculator builds a revenue calculator. Nil logger falls back to the
// slog default.
func NewCalculator(logger *slog.Logger) *Calculator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Calculator{logger: logger}
}

// RevenueFromCPM projects revenue from the impression funnel:
// requests scaled by bid and win rate give impressions, priced at CPM.
func (c *Calculator) RevenueFromCPM(in FunnelInputs) (float64, error) {
	if err := validateFunnel(in); err != nil {
		return 0, err
	}
	impressions := in.AdRequests * (in.BidRate / 100) * (in.WinRate / 100)
	return impressions * in.CPM / 1000, nil
}

// RevenueFromRPB projects revenue from bid volume: billions of requests
// scaled by bid rate, priced at revenue per billion bids.
func (c *Calculator) RevenueFromRPB(in FunnelInputs) (float64, error) {
	if in.AdRequests <= 0 {
		return 0, fmt.Errorf("ad requests must be positive, got %g", in.AdRequests)
	}
	if err := validateRate("bid rate", in.BidRate); err != nil {
		return 0, err
	}
	if in.RPB <= 0 {
		return 0, fmt.Errorf("RPB must be positive, got %g", in.RPB)
	}
	return in.AdRequests / 1e9 * (in.BidRate / 100) * in.RPB, nil
}

// AnalyzeTarget computes the overall multiplier between current and target
// revenue and, for each funnel metric, the value it alone must reach. Since
// revenue is linear in each metric, every required value is current × the
// multiplier; rate metrics are additionally capped at 100.
func (c *Calculator) AnalyzeTarget(in FunnelInputs, target float64) (TargetAnalysis, error) {
	current, err := c.RevenueFromCPM(in)
	if err != nil {
		return TargetAnalysis{}, err
	}
	if target <= 0 {
		return TargetAnalysis{}, fmt.Errorf("target revenue must be positive, got %g", target)
	}

	multiplier := target / current
	analysis := TargetAnalysis{
		CurrentRevenue:     current,
		TargetRevenue:      target,
		RequiredMultiplier: multiplier,
	}

	metrics := []struct {
		name    string
		current float64
		isRate  bool
	}{
		{"Ad Requests", in.AdRequests, false},
		{"Bid Rate", in.BidRate, true},
		{"Win Rate", in.WinRate, true},
		{"CPM", in.CPM, false},
	}
	if in.RPB > 0 {
		metrics = append(metrics, struct {
			name    string
			current float64
			isRate  bool
		}{"RPB", in.RPB, false})
	}
	for _, m := range metrics {
		required := m.current * multiplier
		if m.isRate {
			required = math.Min(required, 100)
		}
		analysis.Metrics = append(analysis.Metrics, MetricTarget{
			Metric:      m.name,
			Current:     m.current,
			Required:    required,
			IncreasePct: (required - m.current) / m.current * 100,
			IncreaseAbs: required - m.current,
		})
	}

	c.logger.Info("revenue target analyzed",
		slog.Float64("current", current),
		slog.Float64("target", target),
		slog.Float64("multiplier", multiplier))
	return analysis, nil
}

func validateFunnel(in FunnelInputs) error {
	if in.AdRequests <= 0 {
		return fmt.Errorf("ad requests must be positive, got %g", in.AdRequests)
	}
	if err := validateRate("bid rate", in.BidRate); err != nil {
		return err
	}
	if err := validateRate("win rate", in.WinRate); err != nil {
		return err
	}
	if in.CPM <= 0 {
		return fmt.Errorf("CPM must be positive, got %g", in.CPM)
	}
	return nil
}

func validateRate(name string, v float64) error {
	if v <= 0 || v > 100 {
		return fmt.Errorf("%s must be in (0, 100], got %g", name, v)
	}
	return nil
}
