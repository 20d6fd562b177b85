package emissions

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetGridFactor_KnownGrids(t *testing.T) {
	tests := []struct {
		grid string
		want float64
	}{
		{grid: "in", want: 0.716},
		{grid: "us", want: 0.386},
		{grid: "br", want: 0.074},
		{grid: "za", want: 0.928},
	}

	for _, tt := range tests {
		t.Run(tt.grid, func(t *testing.T) {
			assert.InDelta(t, tt.want, GetGridFactor(tt.grid), 1e-9)
		})
	}
}

func TestGetGridFactor_UnknownGridUsesDefault(t *testing.T) {
	assert.InDelta(t, DefaultGridFactor, GetGridFactor("nowhere"), 1e-9)
	assert.InDelta(t, DefaultGridFactor, GetGridFactor(""), 1e-9)
}

func TestGridFactorsArePositive(t *testing.T) {
	for grid, factor := range GridEmissionFactors {
		assert.Greater(t, factor, 0.0, "grid %s must have a positive factor", grid)
	}
}

func TestDefaultGridFactorMatchesConstant(t *testing.T) {
	// The default path is the published Indian grid factor.
	assert.InDelta(t, 0.716, DefaultGridFactor, 1e-9)
}
