package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStandardizeIndustry(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Enterprise Software", "Technology & Software"},
		{"SaaS", "Technology & Software"},
		{"Machine Learning", "Artificial Intelligence & Data"},
		{"Banking", "Financial Services"},
		{"Renewable Energy", "Energy & Sustainability"},
		{"NFT", "Blockchain & Crypto"},
		{"Zoology", "Other"},
		{"", "Other"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, StandardizeIndustry(tt.input), "input %q", tt.input)
	}
}

func TestStandardizeIndustryAlwaysReturnsStandardCategory(t *testing.T) {
	inputs := []string{
		"Fintech", "Cyber Security", "Hospital Management", "Retail",
		"completely made up industry", "", "   ",
	}
	for _, input := range inputs {
		got := StandardizeIndustry(input)
		assert.True(t, IsStandardIndustryCategory(got), "input %q mapped to %q", input, got)
	}
}

func TestIndustryCategoryNames(t *testing.T) {
	names := IndustryCategoryNames()
	assert.Len(t, names, 19)
	assert.Equal(t, IndustryCategoryOther, names[len(names)-1])
}
