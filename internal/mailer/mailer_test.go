package mailer

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SataStrike/Highlighter/internal/revenue"
)

func TestWriteTargetAnalysis(t *testing.T) {
	c := NewComposer(nil)
	c.now = func() time.Time { return time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC) }

	analysis := revenue.TargetAnalysis{
		CurrentRevenue:     200,
		TargetRevenue:      400,
		RequiredMultiplier: 2,
		Metrics: []revenue.MetricTarget{
			{Metric: "Bid Rate", Current: 40, Required: 80, IncreasePct: 100, IncreaseAbs: 40},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, c.WriteTargetAnalysis(&buf, analysis))

	body := buf.String()
	assert.Contains(t, body, "# Revenue Target Analysis")
	assert.Contains(t, body, "2026-08-01")
	assert.Contains(t, body, "$200.00")
	assert.Contains(t, body, "$400.00")
	assert.Contains(t, body, "2.00x")
	assert.Contains(t, body, "Bid Rate")
	assert.Contains(t, body, "+100.0%")
}

func TestWriteBidRateImpact(t *testing.T) {
	c := NewComposer(nil)

	in := revenue.BidRateInputs{
		MonthlyAdCalls:    2e9,
		CurrentBidRate:    40,
		ImprovedBidRate:   50,
		RevenuePerBillion: 1000,
	}
	impact := revenue.BidRateImpact{
		CurrentBiddable:   8e8,
		ImprovedBiddable:  1e9,
		CurrentMonthly:    800,
		ImprovedMonthly:   1000,
		AdditionalMonthly: 200,
		AdditionalAnnual:  2400,
	}

	var buf bytes.Buffer
	require.NoError(t, c.WriteBidRateImpact(&buf, in, impact))

	body := buf.String()
	assert.Contains(t, body, "# Bid Rate Improvement Summary")
	assert.Contains(t, body, "2.00B")
	assert.Contains(t, body, "800.00M")
	assert.Contains(t, body, "$200.00")
	assert.Contains(t, body, "$2400.00")
}
