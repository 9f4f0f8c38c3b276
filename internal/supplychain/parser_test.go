package supplychain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMissingLinesEmpty(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{name: "empty", in: ""},
		{name: "whitespace", in: "   "},
		{name: "web token", in: "web"},
		{name: "web token upper", in: "WEB"},
		{name: "web token padded", in: "  Web  "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, ParseMissingLines(tt.in))
		})
	}
}

func TestParseMissingLinesMultiline(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "two entries on newlines",
			in:   "a.com, 123, RESELLER\nb.com, 456, DIRECT",
			want: []string{"a.com, 123, RESELLER", "b.com, 456, DIRECT"},
		},
		{
			name: "windows newlines",
			in:   "a.com, 123, RESELLER\r\nb.com, 456, DIRECT",
			want: []string{"a.com, 123, RESELLER", "b.com, 456, DIRECT"},
		},
		{
			name: "literal backslash n",
			in:   `a.com, 123, RESELLER\nb.com, 456, DIRECT`,
			want: []string{"a.com, 123, RESELLER", "b.com, 456, DIRECT"},
		},
		{
			name: "numbered list",
			in:   "1. a.com, 123, RESELLER\n2. b.com, 456, DIRECT",
			want: []string{"a.com, 123, RESELLER", "b.com, 456, DIRECT"},
		},
		{
			name: "bullets and blank lines",
			in:   "• a.com, 123, RESELLER\n\n- b.com, 456, DIRECT\n",
			want: []string{"a.com, 123, RESELLER", "b.com, 456, DIRECT"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseMissingLines(tt.in))
		})
	}
}

func TestParseMissingLinesSemicolons(t *testing.T) {
	got := ParseMissingLines("a.com, 123, RESELLER; b.com, 456, DIRECT")
	assert.Equal(t, []string{"a.com, 123, RESELLER", "b.com, 456, DIRECT"}, got)
}

func TestParseMissingLinesInlinePatterns(t *testing.T) {
	// Two full entries embedded in prose on one line.
	got := ParseMissingLines("missing a.com, 123, RESELLER and also b.com, 456, DIRECT, cert99")
	assert.Equal(t, []string{"a.com, 123, RESELLER", "b.com, 456, DIRECT, cert99"}, got)
}

func TestParseMissingLinesSingleEntry(t *testing.T) {
	in := "a.com, 123, RESELLER"
	got := ParseMissingLines(in)
	assert.Equal(t, []string{in}, got)
}

func TestParseMissingLinesCommaSplit(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "three parts with keyword kept whole",
			in:   "somebidder, 99, reseller",
			want: []string{"somebidder, 99, reseller"},
		},
		{
			name: "parts without keyword split apart",
			in:   "alpha, beta, gamma, delta, epsilon",
			want: []string{"alpha", "beta", "gamma", "delta", "epsilon"},
		},
		{
			name: "pure numbers dropped",
			in:   "123, 456, 789",
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseMissingLines(tt.in))
		})
	}
}

func TestParseMissingLinesNoDelimiters(t *testing.T) {
	assert.Equal(t, []string{"pubmatic"}, ParseMissingLines("  pubmatic  "))
}

func TestAppendCandidate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		kept bool
	}{
		{name: "full entry", in: "a.com, 123, RESELLER, cert1", kept: true},
		{name: "domain only", in: "openx.com", kept: true},
		{name: "keyword only", in: "something RESELLER here now extra", kept: true},
		{name: "short text", in: "pubmatic partner", kept: true},
		{name: "pure number dropped", in: "123456", kept: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := appendCandidate(nil, tt.in)
			if tt.kept {
				assert.Equal(t, []string{tt.in}, got)
			} else {
				assert.Empty(t, got)
			}
		})
	}
}
