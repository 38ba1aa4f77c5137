package physics

import (
	"math/rand"

	"github.com/mkarvelas/marketglow/internal/domain"
)

// DefaultMargin is the inset from the region edges when placing particles.
const DefaultMargin = 10.0

// PositionInitializer scatters particles uniformly inside a bounded region.
// The random source is injected so tests can replay exact placements.
type PositionInitializer struct {
	width  float64
	height float64
	margin float64
	rng    *rand.Rand
}

// NewPositionInitializer creates an initializer for a width×height region
// with the given inset margin. rng must not be nil.
func NewPositionInitializer(width, height, margin float64, rng *rand.Rand) *PositionInitializer {
	return &PositionInitializer{
		width:  width,
		height: height,
		margin: margin,
		rng:    rng,
	}
}

// Place assigns each stock a position drawn uniformly from
// [margin, width-margin] × [margin, height-margin] and returns a new
// collection. Velocities are not touched.
func (p *PositionInitializer) Place(stocks []domain.Stock) []domain.Stock {
	out := make([]domain.Stock, len(stocks))
	for i, s := range stocks {
		s.Position = domain.Vec{
			X: p.uniform(p.margin, p.width-p.margin),
			Y: p.uniform(p.margin, p.height-p.margin),
		}
		out[i] = s
	}
	return out
}

func (p *PositionInitializer) uniform(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + p.rng.Float64()*(hi-lo)
}
