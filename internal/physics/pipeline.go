package physics

import "github.com/mkarvelas/marketglow/internal/domain"

// TickConfig parameterizes one simulation step.
type TickConfig struct {
	Mode      Mode
	Strength  float64
	TimeDelta float64
	Bounds    domain.Bounds
}

// Prepare runs the per-snapshot stages: property mapping followed by
// position initialization. The result is the base state ticks derive from.
func Prepare(stocks []domain.Stock, init *PositionInitializer) []domain.Stock {
	return init.Place(MapProperties(stocks))
}

// Tick runs one attraction + integration step and returns a new collection.
// The attraction force must be applied before integration so the centroid
// is computed over a consistent position snapshot.
func Tick(stocks []domain.Stock, cfg TickConfig) []domain.Stock {
	return Integrate(Attract(stocks, cfg.Mode, cfg.Strength), cfg.TimeDelta, cfg.Bounds)
}

// Run advances the collection by n ticks. n <= 0 returns a copy unchanged.
func Run(stocks []domain.Stock, cfg TickConfig, n int) []domain.Stock {
	out := make([]domain.Stock, len(stocks))
	copy(out, stocks)
	for i := 0; i < n; i++ {
		out = Tick(out, cfg)
	}
	return out
}
