package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeStatus(t *testing.T) {
	tests := []struct {
		name      string
		rawStatus string
		exitType  string
		isPublic  bool
		want      string
	}{
		{"portfolio keyword is active", "Portfolio Company", "", false, "Active"},
		{"current keyword is active", "Current", "", false, "Active"},
		{"keyword match is case-insensitive", "ACTIVE INVESTMENT", "", false, "Active"},
		{"ipo overrides active raw status", "Active", "", true, "Exit"},
		{"exit type overrides raw status", "Active", "Acquisition", false, "Exit"},
		{"literal None exit type is ignored", "Current Portfolio", "None", false, "Active"},
		{"former defaults to exit", "Former", "", false, "Exit"},
		{"empty status defaults to exit", "", "", false, "Exit"},
		{"garbled status defaults to exit", "???", "", false, "Exit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeStatus(tt.rawStatus, tt.exitType, tt.isPublic))
		})
	}
}
