package supplychain

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SataStrike/Highlighter/pkg/contracts/domain"
)

func testIndex(t *testing.T) *ReferenceIndex {
	t.Helper()
	return BuildIndex([]domain.ReferenceEntry{
		refEntry("primary.com, 111, DIRECT", "Main"),
		refEntry("secondary.com, 222, RESELLER", "Secondary"),
		refEntry("master.com, 333, DIRECT", "Master"),
	}, nil)
}

func TestReconcileSingleRow(t *testing.T) {
	r := NewReconciler(testIndex(t), slog.Default(), nil)

	rows := []domain.ReportRow{{
		Domain:           "foo.com",
		Name:             "Foo",
		Status:           "Live",
		MissingLinesText: "primary.com, 111, DIRECT\nsecondary.com, 222, RESELLER\nmaster.com, 333, DIRECT",
	}}

	got := r.Reconcile(rows)
	require.Len(t, got, 1)

	s := got[0]
	assert.Equal(t, "foo.com", s.Domain)
	assert.Equal(t, "Foo", s.Name)
	assert.Equal(t, "Live", s.Status)
	assert.Equal(t, 1, s.PrimaryMissing)
	assert.Equal(t, 1, s.SecondaryMissing)
	assert.Equal(t, 1, s.MasterMissing)
	assert.Equal(t, 3, s.TotalMissing)
	assert.Equal(t, 0, s.UnknownLines)
	assert.Equal(t, "primary.com, 111, DIRECT", s.PrimaryLines)
	assert.Equal(t, "secondary.com, 222, RESELLER", s.SecondaryLines)
	assert.Equal(t, "master.com, 333, DIRECT", s.MasterLines)
	// Bidder extracted from the primary line, domain suffix stripped, with
	// the trailing space the mail template expects.
	assert.Equal(t, "primary ", s.MissingPrimaryBidders)
}

func TestReconcileMergesDuplicateKeys(t *testing.T) {
	r := NewReconciler(testIndex(t), nil, nil)

	rows := []domain.ReportRow{
		{Domain: "foo.com", Name: "Foo", MissingLinesText: "primary.com, 111, DIRECT"},
		{Domain: "bar.com", Name: "Bar", MissingLinesText: "secondary.com, 222, RESELLER"},
		{Domain: "foo.com", Name: "Foo", MissingLinesText: "master.com, 333, DIRECT"},
	}

	got := r.Reconcile(rows)
	require.Len(t, got, 2)

	// Insertion order of first appearance.
	assert.Equal(t, "foo.com", got[0].Domain)
	assert.Equal(t, "bar.com", got[1].Domain)

	foo := got[0]
	assert.Equal(t, 1, foo.PrimaryMissing)
	assert.Equal(t, 1, foo.MasterMissing)
	assert.Equal(t, 2, foo.TotalMissing)
	assert.Equal(t, "primary.com, 111, DIRECT", foo.PrimaryLines)
	assert.Equal(t, "master.com, 333, DIRECT", foo.MasterLines)
}

func TestReconcileMergeAppendsLineText(t *testing.T) {
	r := NewReconciler(testIndex(t), nil, nil)

	rows := []domain.ReportRow{
		{Domain: "foo.com", Name: "Foo", MissingLinesText: "primary.com, 111, DIRECT"},
		{Domain: "foo.com", Name: "Foo", MissingLinesText: "primary.com, 111, DIRECT"},
	}

	got := r.Reconcile(rows)
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].PrimaryMissing)
	assert.Equal(t, "primary.com, 111, DIRECT, primary.com, 111, DIRECT", got[0].PrimaryLines)
	// Repeated bidder mentions are preserved, reflecting repeated report
	// occurrences.
	assert.Equal(t, "primary ; primary ", got[0].MissingPrimaryBidders)
}

func TestReconcileEmptyMissingLines(t *testing.T) {
	r := NewReconciler(testIndex(t), nil, nil)

	got := r.Reconcile([]domain.ReportRow{{Domain: "foo.com", Name: "Foo"}})
	require.Len(t, got, 1)

	s := got[0]
	assert.Zero(t, s.TotalMissing)
	assert.Zero(t, s.PrimaryMissing)
	assert.Equal(t, domain.NoMissingBidders, s.MissingPrimaryBidders)
	assert.Empty(t, s.PrimaryLines)
}

func TestReconcileNameFallsBackToDomain(t *testing.T) {
	r := NewReconciler(testIndex(t), nil, nil)

	got := r.Reconcile([]domain.ReportRow{{Domain: "foo.com"}})
	require.Len(t, got, 1)
	assert.Equal(t, "foo.com", got[0].Name)
}

func TestReconcileSkipsRowsWithoutDomain(t *testing.T) {
	r := NewReconciler(testIndex(t), nil, nil)

	got := r.Reconcile([]domain.ReportRow{
		{Name: "Orphan", MissingLinesText: "primary.com, 111, DIRECT"},
		{Domain: "foo.com", Name: "Foo"},
	})
	require.Len(t, got, 1)
	assert.Equal(t, "foo.com", got[0].Domain)
}

func TestReconcileBidderColumnWins(t *testing.T) {
	r := NewReconciler(testIndex(t), nil, nil)

	got := r.Reconcile([]domain.ReportRow{{
		Domain:           "foo.com",
		Name:             "Foo",
		Bidder:           "SomePartner",
		MissingLinesText: "primary.com, 111, DIRECT",
	}})
	require.Len(t, got, 1)
	assert.Equal(t, "SomePartner ", got[0].MissingPrimaryBidders)
}

func TestReconcileUniqueKeys(t *testing.T) {
	r := NewReconciler(testIndex(t), nil, nil)

	rows := []domain.ReportRow{
		{Domain: "a.com", Name: "A"},
		{Domain: "a.com", Name: "B"}, // same domain, different name: distinct
		{Domain: "a.com", Name: "A"},
		{Domain: "b.com", Name: "A"},
	}
	got := r.Reconcile(rows)

	seen := make(map[string]bool)
	for _, s := range got {
		key := s.Key()
		assert.False(t, seen[key], "duplicate key %s", key)
		seen[key] = true
	}
	assert.Len(t, got, 3)
}

// recordingObserver captures audit events for assertions.
type recordingObserver struct {
	decisions []domain.Classification
	failures  int
}

func (o *recordingObserver) Decision(_ int, _ string, result domain.Classification) {
	o.decisions = append(o.decisions, result)
}

func (o *recordingObserver) RowFailure(int, string, string, error) { o.failures++ }

func TestReconcileObserverSeesDecisions(t *testing.T) {
	obs := &recordingObserver{}
	r := NewReconciler(testIndex(t), nil, obs)

	r.Reconcile([]domain.ReportRow{{
		Domain:           "foo.com",
		Name:             "Foo",
		MissingLinesText: "primary.com, 111, DIRECT\nmystery vendor thing",
	}})

	require.Len(t, obs.decisions, 2)
	assert.Equal(t, domain.MatchExact, obs.decisions[0].Match)
	assert.Equal(t, domain.MatchNone, obs.decisions[1].Match)
	assert.Equal(t, domain.CategoryUnknown, obs.decisions[1].Category)
}

func TestReconcileEndToEnd(t *testing.T) {
	idx := BuildIndex([]domain.ReferenceEntry{
		refEntry("primary.com, 111, DIRECT", "Primary"),
		refEntry("secondary.com, 222, RESELLER", "Secondary"),
	}, nil)
	r := NewReconciler(idx, nil, nil)

	rows := []domain.ReportRow{
		{Domain: "foo.com", Name: "Foo", MissingLinesText: "primary.com, 111, DIRECT"},
		{Domain: "bar.com", Name: "Bar", MissingLinesText: "secondary.com, 222, RESELLER"},
		{Domain: "foo.com", Name: "Foo", MissingLinesText: "secondary.com, 222, RESELLER"},
	}
	got := r.Reconcile(rows)

	require.Len(t, got, 2)
	foo, bar := got[0], got[1]
	assert.Equal(t, "foo.com_Foo", foo.Key())
	assert.Equal(t, 1, foo.PrimaryMissing)
	assert.Equal(t, 1, foo.SecondaryMissing)
	assert.Equal(t, 2, foo.TotalMissing)
	assert.Equal(t, 1, bar.SecondaryMissing)
	assert.Equal(t, 1, bar.TotalMissing)
}
