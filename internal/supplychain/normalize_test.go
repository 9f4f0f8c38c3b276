package supplychain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "whitespace only", in: "   \t ", want: ""},
		{name: "lowercases", in: "OpenX.com, 537100188, RESELLER", want: "openx.com, 537100188, reseller"},
		{name: "collapses whitespace", in: "google.com,   pub-123,\tDIRECT", want: "google.com, pub-123, direct"},
		{name: "keeps periods", in: "openx.com", want: "openx.com"},
		{name: "keeps hyphen underscore comma", in: "ad-server_x.io, a_b-c", want: "ad-server_x.io, a_b-c"},
		{name: "strips special characters", in: "pubmatic.com! (123) #RESELLER", want: "pubmatic.com 123 reseller"},
		{name: "trims", in: "  appnexus.com, 1234, DIRECT  ", want: "appnexus.com, 1234, direct"},
		{name: "adds space after bare comma", in: "a.com,123,RESELLER", want: "a.com, 123, reseller"},
		{name: "tightens wide comma spacing", in: "a.com ,  123 , RESELLER", want: "a.com, 123, reseller"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"OpenX.com, 537100188, RESELLER, abc123",
		"a * b",
		"  Google.com  (pub)  ",
		"",
		"smartadserver.com, 1234, DIRECT",
		"a.com,123,RESELLER",
		"trailing.com,",
	}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "input %q", in)
	}
}

func TestBidderPrefix(t *testing.T) {
	assert.Equal(t, "openx.com", bidderPrefix("openx.com, 123, reseller"))
	assert.Equal(t, "", bidderPrefix("openx.com"))
	assert.Equal(t, "adagio.io", bidderPrefix("adagio.io,1010"))
}
