package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name                               string
		value, srcMin, srcMax, dstMin, dstMax, want float64
	}{
		{"source min maps to target min", 0, 0, 10, 0, 1, 0},
		{"source max maps to target max", 10, 0, 10, 0, 1, 1},
		{"midpoint", 5, 0, 10, 0, 1, 0.5},
		{"shifted target range", 5, 0, 10, 10, 60, 35},
		{"value below source range extrapolates", -5, 0, 10, 0, 1, -0.5},
		{"degenerate range returns target min", 7, 3, 3, 0.5, 3.0, 0.5},
		{"degenerate range ignores value", -999, 3, 3, 10, 60, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.value, tt.srcMin, tt.srcMax, tt.dstMin, tt.dstMax)
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}
}

func TestNormalizeUnit(t *testing.T) {
	assert.InDelta(t, 0.25, NormalizeUnit(25, 0, 100), 1e-12)
	assert.InDelta(t, 0.0, NormalizeUnit(42, 7, 7), 1e-12)
}
