//go:build unit
// +build unit

package audits

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRiskLevel(t *testing.T) {
	tests := []struct {
		text string
		want RiskLevel
	}{
		{"RISK: LOW\nNo issues found.", RiskLow},
		{"risk: medium\nTwo upheld complaints.", RiskMedium},
		{"\n\n**RISK: HIGH**\nRepeated rejections.", RiskHigh},
		{"RISK: SEVERE", RiskUnknown},
		{"The dealer looks fine.\nRISK: LOW", RiskUnknown},
		{"", RiskUnknown},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseRiskLevel(tt.text), tt.text)
	}
}
