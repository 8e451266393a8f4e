package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategorizeCompanySize(t *testing.T) {
	valid := map[string]string{
		"c_00001_00010": "Startup",
		"c_00011_00050": "Startup",
		"c_00051_00100": "Small",
		"c_00101_00250": "Small",
		"c_00251_00500": "Medium",
		"c_00501_01000": "Medium",
		"c_01001_05000": "Large",
		"c_05001_10000": "Enterprise",
		"c_10001_max":   "Enterprise",
	}
	labels := map[string]struct{}{
		"Startup": {}, "Small": {}, "Medium": {}, "Large": {}, "Enterprise": {},
	}

	for code, want := range valid {
		got := CategorizeCompanySize(code)
		assert.Equal(t, want, got, "code %s", code)
		assert.Contains(t, labels, got)
	}

	assert.Empty(t, CategorizeCompanySize(""))
	assert.Empty(t, CategorizeCompanySize("c_99999"))
}

func TestCategorizeRevenueTier(t *testing.T) {
	valid := map[string]string{
		"r_00000000": "Pre-Revenue",
		"r_00001000": "Early Stage",
		"r_00010000": "Growth Stage",
		"r_00050000": "Growth Stage",
		"r_00100000": "Scale-up",
		"r_00500000": "Scale-up",
		"r_01000000": "Unicorn",
		"r_10000000": "Unicorn",
	}

	for code, want := range valid {
		assert.Equal(t, want, CategorizeRevenueTier(code), "code %s", code)
	}

	assert.Empty(t, CategorizeRevenueTier(""))
	assert.Empty(t, CategorizeRevenueTier("r_unknown"))
}

func TestCategorizeInvestmentStage(t *testing.T) {
	tests := []struct {
		year string
		want string
	}{
		{"2024", "Recent"},
		{"2020", "Recent"},
		{"2019", "Mature"},
		{"2015", "Mature"},
		{"2014", "Legacy"},
		{"1998", "Legacy"},
		{" 2021 ", "Recent"},
		{"", ""},
		{"n/a", ""},
		{"circa 2010", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CategorizeInvestmentStage(tt.year), "year %q", tt.year)
	}
}

func TestDecodeRanges(t *testing.T) {
	assert.Equal(t, "$100M - $500M", DecodeRevenueRange("r_00100000"))
	assert.Equal(t, "1,001-5,000", DecodeEmployeeCount("c_01001_05000"))

	// Unknown codes pass through, empty becomes N/A.
	assert.Equal(t, "r_oddball", DecodeRevenueRange("r_oddball"))
	assert.Equal(t, "N/A", DecodeRevenueRange(""))
	assert.Equal(t, "N/A", DecodeEmployeeCount(""))
}
