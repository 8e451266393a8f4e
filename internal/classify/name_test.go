package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Datadog, Inc.", "datadog inc"},
		{"Datadog Inc", "datadog inc"},
		{"  DATADOG   INC  ", "datadog inc"},
		{"AT&T", "att"},
		{"7-Eleven", "7eleven"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeName(tt.input), "input %q", tt.input)
	}

	// The whole point: punctuation variants collapse to the same key.
	assert.Equal(t, NormalizeName("Datadog, Inc."), NormalizeName("Datadog Inc"))
}

func TestExtractIPOInfo(t *testing.T) {
	tests := []struct {
		input    string
		ticker   string
		exchange string
	}{
		{"IPO: FB", "FB", ""},
		{"IPO: LON: WPS", "WPS", "LON"},
		{"IPO: WORK", "WORK", ""},
		{"Acquired by Salesforce", "", ""},
		{"", "", ""},
	}

	for _, tt := range tests {
		ticker, exchange := ExtractIPOInfo(tt.input)
		assert.Equal(t, tt.ticker, ticker, "input %q", tt.input)
		assert.Equal(t, tt.exchange, exchange, "input %q", tt.input)
	}
}

func TestExtractExitYear(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Acquired by BigCo in 2021", "2021"},
		{"IPO 2019 (NYSE)", "2019"},
		{"Sold in 1998 to Conglomerate", "1998"},
		{"Exited", ""},
		{"Series 3000 product line divested", ""},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ExtractExitYear(tt.input), "input %q", tt.input)
	}
}
