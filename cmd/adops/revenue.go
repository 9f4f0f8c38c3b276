package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/SataStrike/Highlighter/internal/infrastructure"
	"github.com/SataStrike/Highlighter/internal/mailer"
	"github.com/SataStrike/Highlighter/internal/revenue"
)

// NewRevenueCmd creates the revenue command group.
func NewRevenueCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "revenue",
		Short: "Model revenue scenarios",
		Long: `Revenue models programmatic revenue from the ad funnel and renders the
result as a markdown mail body.`,
	}

	cmd.AddCommand(newRevenueTargetCmd())
	cmd.AddCommand(newRevenueBidRateCmd())

	return cmd
}

// newRevenueTargetCmd creates the revenue target subcommand.
func newRevenueTargetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "target",
		Short: "Compute what each funnel metric must reach to hit a revenue target",
		Long: `Target projects current revenue from ad requests, bid rate, win rate, and
CPM, then computes the value each metric alone must reach for revenue to hit
the target.

Example:
  adops revenue target --ad-requests 1000000 --bid-rate 40 --win-rate 25 --cpm 2 --target 400`,
		Args: cobra.NoArgs,
		RunE: runRevenueTargetCmd,
	}

	cmd.Flags().Float64("ad-requests", 0, "Monthly ad requests (required)")
	cmd.Flags().Float64("bid-rate", 0, "Bid rate percentage (required)")
	cmd.Flags().Float64("win-rate", 0, "Win rate percentage (required)")
	cmd.Flags().Float64("cpm", 0, "CPM in dollars (required)")
	cmd.Flags().Float64("rpb", 0, "Revenue per billion bids in dollars (optional)")
	cmd.Flags().Float64("target", 0, "Target revenue in dollars (required)")
	cmd.Flags().StringP("output", "o", "", "Write the mail body to this file instead of stdout")
	for _, name := range []string{"ad-requests", "bid-rate", "win-rate", "cpm", "target"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}

// runRevenueTargetCmd executes the revenue target subcommand.
func runRevenueTargetCmd(cmd *cobra.Command, _ []string) error {
	if _, err := setup(cmd); err != nil {
		return err
	}
	logger := infrastructure.GetLogger()

	in := revenue.FunnelInputs{}
	for flag, dst := range map[string]*float64{
		"ad-requests": &in.AdRequests,
		"bid-rate":    &in.BidRate,
		"win-rate":    &in.WinRate,
		"cpm":         &in.CPM,
		"rpb":         &in.RPB,
	} {
		v, err := cmd.Flags().GetFloat64(flag)
		if err != nil {
			return err
		}
		*dst = v
	}
	target, err := cmd.Flags().GetFloat64("target")
	if err != nil {
		return err
	}

	analysis, err := revenue.NewCalculator(logger).AnalyzeTarget(in, target)
	if err != nil {
		return err
	}

	out, closeOut, err := mailOutput(cmd)
	if err != nil {
		return err
	}
	defer closeOut()

	return mailer.NewComposer(logger).WriteTargetAnalysis(out, analysis)
}

// newRevenueBidRateCmd creates the revenue bidrate subcommand.
func newRevenueBidRateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bidrate",
		Short: "Project the revenue uplift of a bid-rate improvement",
		Long: `Bidrate projects monthly and annual revenue at the current and improved bid
rates, given monthly ad-call volume and the revenue a billion biddable calls
generate.

Example:
  adops revenue bidrate --monthly-ad-calls 2000000000 --current-rate 40 --improved-rate 50 --revenue-per-billion 16000`,
		Args: cobra.NoArgs,
		RunE: runRevenueBidRateCmd,
	}

	cmd.Flags().Float64("monthly-ad-calls", 0, "Monthly ad calls (required)")
	cmd.Flags().Float64("current-rate", 0, "Current bid rate percentage (required)")
	cmd.Flags().Float64("improved-rate", 0, "Improved bid rate percentage (required)")
	cmd.Flags().Float64("revenue-per-billion", 0, "Revenue per billion biddable calls in dollars (required)")
	cmd.Flags().StringP("output", "o", "", "Write the mail body to this file instead of stdout")
	for _, name := range []string{"monthly-ad-calls", "current-rate", "improved-rate", "revenue-per-billion"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}

// runRevenueBidRateCmd executes the revenue bidrate subcommand.
func runRevenueBidRateCmd(cmd *cobra.Command, _ []string) error {
	if _, err := setup(cmd); err != nil {
		return err
	}
	logger := infrastructure.GetLogger()

	in := revenue.BidRateInputs{}
	for flag, dst := range map[string]*float64{
		"monthly-ad-calls":    &in.MonthlyAdCalls,
		"current-rate":        &in.CurrentBidRate,
		"improved-rate":       &in.ImprovedBidRate,
		"revenue-per-billion": &in.RevenuePerBillion,
	} {
		v, err := cmd.Flags().GetFloat64(flag)
		if err != nil {
			return err
		}
		*dst = v
	}

	impact, err := revenue.NewCalculator(logger).AnalyzeBidRate(in)
	if err != nil {
		return err
	}

	out, closeOut, err := mailOutput(cmd)
	if err != nil {
		return err
	}
	defer closeOut()

	return mailer.NewComposer(logger).WriteBidRateImpact(out, in, impact)
}

// mailOutput resolves the --output flag to a writer, defaulting to the
// command's stdout.
func mailOutput(cmd *cobra.Command) (io.Writer, func(), error) {
	path, err := cmd.Flags().GetString("output")
	if err != nil {
		return nil, nil, err
	}
	if path == "" {
		return cmd.OutOrStdout(), func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, func() { f.Close() }, nil
}
