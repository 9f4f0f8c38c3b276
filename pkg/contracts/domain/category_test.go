package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		raw  string
		want Category
	}{
		{"Main", CategoryPrimary},
		{"MAIN", CategoryPrimary},
		{"primary", CategoryPrimary},
		{"Master", CategoryMaster},
		{"secondary", CategorySecondary},
		{"  Master  ", CategoryMaster},
		{"", CategoryUnknown},
		{"deprecated", Category("Deprecated")},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseCategory(tt.raw))
		})
	}
}

func TestCategoryBucket(t *testing.T) {
	assert.Equal(t, CategoryPrimary, CategoryPrimary.Bucket())
	assert.Equal(t, CategoryMaster, CategoryMaster.Bucket())
	assert.Equal(t, CategoryUnknown, CategoryUnknown.Bucket())
	assert.Equal(t, CategorySecondary, CategorySecondary.Bucket())
	assert.Equal(t, CategorySecondary, Category("Deprecated").Bucket())
}

func TestDomainSummaryKey(t *testing.T) {
	s := DomainSummary{Domain: "a.com", Name: "Pub"}
	assert.Equal(t, "a.com_Pub", s.Key())
}

func TestSummaryRecordAlignsWithHeader(t *testing.T) {
	assert.Len(t, DomainSummary{}.Record(), len(SummaryHeader()))
}
