package errordist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SataStrike/Highlighter/pkg/contracts/domain"
)

func record(site, errName string, adCalls float64) domain.ErrorRecord {
	return domain.ErrorRecord{
		Website:      site,
		CSMError:     errName,
		Type:         "CSM",
		AdsTxtReason: "missing line",
		AdCalls:      adCalls,
	}
}

func TestDistributeShares(t *testing.T) {
	rows := NewCalculator(nil).Distribute([]domain.ErrorRecord{
		record("b.com", "timeout", 75),
		record("a.com", "no bid", 30),
		record("b.com", "no fill", 25),
		record("a.com", "timeout", 70),
	})
	require.Len(t, rows, 4)

	// Grouped by website name, input order inside each group.
	assert.Equal(t, "a.com", rows[0].Website)
	assert.Equal(t, "no bid", rows[0].CSMError)
	assert.Equal(t, "30.00%", rows[0].Percentage)
	assert.Equal(t, "70.00%", rows[1].Percentage)
	assert.Equal(t, "b.com", rows[2].Website)
	assert.Equal(t, "75.00%", rows[2].Percentage)
	assert.Equal(t, "25.00%", rows[3].Percentage)
}

func TestDistributeZeroTotal(t *testing.T) {
	rows := NewCalculator(nil).Distribute([]domain.ErrorRecord{
		record("a.com", "timeout", 0),
	})
	require.Len(t, rows, 1)
	assert.Equal(t, "0.00%", rows[0].Percentage)
}

func TestSummarizePicksDominantError(t *testing.T) {
	summaries := NewCalculator(nil).Summarize([]domain.ErrorRecord{
		record("a.com", "no bid", 30),
		record("a.com", "timeout", 70),
		record("b.com", "no fill", 10),
	})
	require.Len(t, summaries, 2)

	a := summaries[0]
	assert.Equal(t, "a.com", a.Website)
	assert.Equal(t, "timeout", a.TopError)
	assert.Equal(t, 100.0, a.TotalAdCalls)
	assert.Equal(t, "70.00%", a.TopPercentage)

	b := summaries[1]
	assert.Equal(t, "b.com", b.Website)
	assert.Equal(t, "100.00%", b.TopPercentage)
}

func TestSummarizeTieKeepsEarlierRecord(t *testing.T) {
	summaries := NewCalculator(nil).Summarize([]domain.ErrorRecord{
		record("a.com", "first", 50),
		record("a.com", "second", 50),
	})
	require.Len(t, summaries, 1)
	assert.Equal(t, "first", summaries[0].TopError)
}

func TestRecordsAlignWithHeaders(t *testing.T) {
	row := Row{ErrorRecord: record("a.com", "timeout", 70), Percentage: "70.00%"}
	assert.Len(t, row.Record(), len(Header()))

	s := Summary{Website: "a.com"}
	assert.Len(t, s.Record(), len(SummaryHeader()))
}
