package revenue

import (
	"fmt"
	"log/slog"
)

const callsPerBillion = 1e9

// BidRateInputs describe a bid-rate improvement scenario: how much monthly
// traffic becomes biddable at a given rate, and what a billion biddable
// calls are worth.
type BidRateInputs struct {
	MonthlyAdCalls    float64
	CurrentBidRate    float64
	ImprovedBidRate   float64
	RevenuePerBillion float64
}

// BidRateImpact is the revenue effect of moving from the current to the
// improved bid rate.
type BidRateImpact struct {
	CurrentBiddable   float64
	ImprovedBiddable  float64
	CurrentMonthly    float64
	ImprovedMonthly   float64
	AdditionalMonthly float64
	AdditionalAnnual  float64
}

// AnalyzeBidRate projects monthly and annual revenue at both bid rates.
// Biddable volume is monthly ad calls scaled by the rate; revenue scales
// with billions of biddable calls.
func (c *Calculator) AnalyzeBidRate(in BidRateInputs) (BidRateImpact, error) {
	if in.MonthlyAdCalls <= 0 {
		return BidRateImpact{}, fmt.Errorf("monthly ad calls must be positive, got %g", in.MonthlyAdCalls)
	}
	if err := validateRate("current bid rate", in.CurrentBidRate); err != nil {
		return BidRateImpact{}, err
	}
	if err := validateRate("improved bid rate", in.ImprovedBidRate); err != nil {
		return BidRateImpact{}, err
	}
	if in.ImprovedBidRate <= in.CurrentBidRate {
		return BidRateImpact{}, fmt.Errorf("improved bid rate %g must exceed current %g",
			in.ImprovedBidRate, in.CurrentBidRate)
	}
	if in.RevenuePerBillion <= 0 {
		return BidRateImpact{}, fmt.Errorf("revenue per billion must be positive, got %g", in.RevenuePerBillion)
	}

	impact := BidRateImpact{
		CurrentBiddable:  in.MonthlyAdCalls * in.CurrentBidRate / 100,
		ImprovedBiddable: in.MonthlyAdCalls * in.ImprovedBidRate / 100,
	}
	impact.CurrentMonthly = impact.CurrentBiddable / callsPerBillion * in.RevenuePerBillion
	impact.ImprovedMonthly = impact.ImprovedBiddable / callsPerBillion * in.RevenuePerBillion
	impact.AdditionalMonthly = impact.ImprovedMonthly - impact.CurrentMonthly
	impact.AdditionalAnnual = impact.AdditionalMonthly * 12

	c.logger.Info("bid rate impact analyzed",
		slog.Float64("current_rate", in.CurrentBidRate),
		slog.Float64("improved_rate", in.ImprovedBidRate),
		slog.Float64("additional_monthly", impact.AdditionalMonthly))
	return impact, nil
}
