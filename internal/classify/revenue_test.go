package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimatePredictedRevenue(t *testing.T) {
	tests := []struct {
		name         string
		employeeCode string
		industry     string
		want         float64
	}{
		{"software midsize", "c_00101_00250", "Technology & Software", 175 * 500000},
		{"energy large", "c_01001_05000", "Energy & Sustainability", 3000 * 800000},
		{"unknown industry uses default", "c_00011_00050", "Something Else", 30 * 300000},
		{"blank industry uses default", "c_00051_00100", "", 75 * 300000},
		{"unknown employee code", "c_bogus", "Technology & Software", 0},
		{"blank employee code", "", "Technology & Software", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EstimatePredictedRevenue(tt.employeeCode, tt.industry))
		})
	}
}
