package physics

import (
	"gonum.org/v1/gonum/floats"

	"github.com/mkarvelas/marketglow/internal/domain"
)

// Mode selects the metric used to weight attraction.
type Mode string

const (
	// ModeValue weights by Rule-of-40 score.
	ModeValue Mode = "value"
	// ModeGrowth weights by revenue growth.
	ModeGrowth Mode = "growth"
	// ModeProfit weights by operating margin.
	ModeProfit Mode = "profit"
	// ModeSize weights by market capitalization.
	ModeSize Mode = "size"
)

// Modes lists the recognized attraction modes.
func Modes() []Mode {
	return []Mode{ModeValue, ModeGrowth, ModeProfit, ModeSize}
}

// weightFunc extracts the weighting metric from a stock.
type weightFunc func(domain.Stock) float64

// extractor returns the metric extractor for a mode, or nil for an
// unrecognized mode.
func (m Mode) extractor() weightFunc {
	switch m {
	case ModeValue:
		return func(s domain.Stock) float64 { return s.RuleOf40 }
	case ModeGrowth:
		return func(s domain.Stock) float64 { return s.RevenueGrowth }
	case ModeProfit:
		return func(s domain.Stock) float64 { return s.OperatingMargin }
	case ModeSize:
		return func(s domain.Stock) float64 { return s.MarketCap }
	default:
		return nil
	}
}

const (
	// attractorThreshold is the normalized weight above which a stock
	// joins the attractor set.
	attractorThreshold = 0.7
	// weightEpsilon pads the normalization denominator so a flat
	// collection never divides by zero.
	weightEpsilon = 0.001
)

// Attract applies one discrete attraction step: stocks whose normalized
// weight exceeds the attractor threshold define a weighted centroid, and
// every stock's velocity is nudged toward it, scaled by strength and by
// (1 - weight) so the cluster core barely moves while low-weight stocks
// are pulled hardest. An unrecognized mode or an empty attractor set
// returns the input unchanged (a fresh copy either way).
func Attract(stocks []domain.Stock, mode Mode, strength float64) []domain.Stock {
	out := make([]domain.Stock, len(stocks))
	copy(out, stocks)

	extract := mode.extractor()
	if extract == nil || len(out) == 0 {
		return out
	}

	raw := make([]float64, len(out))
	for i, s := range out {
		raw[i] = extract(s)
	}

	lo, hi := floats.Min(raw), floats.Max(raw)
	weights := make([]float64, len(raw))
	for i, v := range raw {
		weights[i] = (v - lo) / (hi - lo + weightEpsilon)
	}

	var cx, cy, wsum float64
	for i, w := range weights {
		if w > attractorThreshold {
			cx += out[i].Position.X * w
			cy += out[i].Position.Y * w
			wsum += w
		}
	}
	if wsum == 0 {
		return out
	}
	cx /= wsum
	cy /= wsum

	for i := range out {
		pull := strength * (1 - weights[i])
		out[i].Velocity.X += (cx - out[i].Position.X) * pull
		out[i].Velocity.Y += (cy - out[i].Position.Y) * pull
	}
	return out
}
