package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeCommission_WorkedExample(t *testing.T) {
	// 1000.00 sale in minor units
	split := ComputeCommission(100000)

	assert.Equal(t, int64(3000), split.TotalCommission)
	assert.Equal(t, int64(150), split.PlatformFee)
	assert.Equal(t, int64(2850), split.AgentCommission)
	assert.Equal(t, split.TotalCommission, split.PlatformFee+split.AgentCommission)
}

func TestComputeCommission_Rounding(t *testing.T) {
	tests := []struct {
		name       string
		saleAmount int64
		total      int64
		platform   int64
	}{
		{"exact split", 100000, 3000, 150},
		{"rounds half up", 1050, 32, 2},
		{"tiny sale", 10, 0, 0},
		{"one unit", 17, 1, 0},
		{"zero sale", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			split := ComputeCommission(tt.saleAmount)
			assert.Equal(t, tt.total, split.TotalCommission)
			assert.Equal(t, tt.platform, split.PlatformFee)
			assert.Equal(t, tt.total-tt.platform, split.AgentCommission)
		})
	}
}

func TestComputeCommission_ScalesLinearly(t *testing.T) {
	base := ComputeCommission(100000)
	scaled := ComputeCommission(100000 * 100)

	assert.Equal(t, base.TotalCommission*100, scaled.TotalCommission)
	assert.Equal(t, base.PlatformFee*100, scaled.PlatformFee)
	assert.Equal(t, base.AgentCommission*100, scaled.AgentCommission)
}

func TestPercentHalfUp(t *testing.T) {
	assert.Equal(t, int64(3000), PercentHalfUp(100000, 3))
	assert.Equal(t, int64(32), PercentHalfUp(1050, 3))  // 31.5 rounds up
	assert.Equal(t, int64(1), PercentHalfUp(17, 3))     // 0.51 rounds up
	assert.Equal(t, int64(0), PercentHalfUp(10, 3))     // 0.3 rounds down
	assert.Equal(t, int64(1000), PercentHalfUp(10000, 10))
}

func TestValidCommissionAmount(t *testing.T) {
	// cap is 10% of the sale
	assert.True(t, ValidCommissionAmount(3000, 100000))
	assert.True(t, ValidCommissionAmount(10000, 100000))
	assert.False(t, ValidCommissionAmount(10001, 100000))
	assert.False(t, ValidCommissionAmount(0, 100000))
	assert.False(t, ValidCommissionAmount(-1, 100000))
}
