package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLocation(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		city        string
		stateRegion string
		country     string
	}{
		{"us state", "San Francisco, California", "San Francisco", "California", "United States"},
		{"us state abbreviation", "Austin, TX", "Austin", "TX", "United States"},
		{"canadian province", "Toronto, Ontario", "Toronto", "Ontario", "Canada"},
		{"uk constituent", "London, United Kingdom", "London", "United Kingdom", "United Kingdom"},
		{"uk nation", "Edinburgh, Scotland", "Edinburgh", "Scotland", "United Kingdom"},
		{"unrecognized region is country", "Berlin, Germany", "Berlin", "", "Germany"},
		{"three parts us", "New York, NY, United States", "New York", "NY", "United States"},
		{"three parts foreign", "Sydney, NSW, Australia", "Sydney", "NSW", "Australia"},
		{"single part", "Singapore", "Singapore", "", ""},
		{"empty", "", "", "", ""},
		{"whitespace only", "   ", "", "", ""},
		{"trims spaces", " Boston ,  Massachusetts ", "Boston", "Massachusetts", "United States"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			city, stateRegion, country := ParseLocation(tt.input)
			assert.Equal(t, tt.city, city)
			assert.Equal(t, tt.stateRegion, stateRegion)
			assert.Equal(t, tt.country, country)
		})
	}
}
