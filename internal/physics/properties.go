package physics

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/mkarvelas/marketglow/internal/domain"
)

// Size and fallback constants for the market-cap → bubble-size mapping.
const (
	SizeMin      = 10.0
	SizeMax      = 60.0
	SizeFallback = 5.0 // non-positive market cap

	PulseMin      = 0.5
	PulseMax      = 3.0
	PulseFallback = 1.0
)

// Color maps daily change and Rule-of-40 to an HSL triple.
// Hue runs from red (strong gains) through yellow down to deep blue
// (strong losses); saturation grows with the Rule-of-40 magnitude.
func Color(changePct, ruleOf40 float64) domain.HSL {
	var hue float64
	switch {
	case changePct >= 3:
		hue = 0
	case changePct >= 1:
		hue = 30
	case changePct >= 0:
		hue = 50
	case changePct >= -1:
		hue = 180
	case changePct >= -3:
		hue = 200
	default:
		hue = 220
	}

	saturation := 50 + math.Abs(ruleOf40)/2
	saturation = math.Min(100, math.Max(40, saturation))

	return domain.HSL{Hue: hue, Saturation: saturation, Lightness: 60}
}

// Glow maps a Rule-of-40 score to a glow intensity in [0.1, 1.0].
// Piecewise linear; the step from 0.1 to 0.2 at score 0 is deliberate,
// negative scores all sit on the 0.1 floor.
func Glow(ruleOf40 float64) float64 {
	switch {
	case ruleOf40 >= 80:
		return 1.0
	case ruleOf40 >= 40:
		return 0.5 + (ruleOf40-40)/80
	case ruleOf40 >= 0:
		return 0.2 + (ruleOf40/40)*0.3
	default:
		return 0.1
	}
}

// Opacity maps a debt-to-equity ratio to an opacity in [0.4, 1.0].
// Healthy debt stays fully opaque; heavier debt turns the particle ghostly.
func Opacity(debtToEquity float64) float64 {
	switch {
	case debtToEquity <= 50:
		return 1.0
	case debtToEquity <= 150:
		return 0.9 - (debtToEquity-50)/100*0.3
	default:
		return math.Max(0.4, 0.6-(debtToEquity-150)/200*0.2)
	}
}

// Elasticity maps volatility percent to a bounce coefficient in [0.3, 1.0].
func Elasticity(volatility float64) float64 {
	if volatility <= 0 {
		return 0.5
	}
	return math.Min(1.0, 0.3+volatility/100)
}

// VelocityVector derives the initial velocity from revenue growth and
// one-month momentum. Growth sets the speed; its sign picks a fixed
// diagonal (up-right for growth, down-left for contraction). Momentum is
// added to the vertical component only.
func VelocityVector(revenueGrowth, monthChangePct float64) domain.Vec {
	speed := math.Abs(revenueGrowth) / 20

	angle := 45.0
	if revenueGrowth < 0 {
		angle = -135.0
	}
	rad := angle * math.Pi / 180

	return domain.Vec{
		X: speed * math.Cos(rad),
		Y: speed*math.Sin(rad) + monthChangePct/100,
	}
}

// sizeScale holds the collection-level log-cap range for the size mapping.
type sizeScale struct {
	minLog, maxLog float64
}

// newSizeScale reduces the collection's positive market caps to a log10
// range. The aggregate must be taken before any per-stock size is emitted
// so results cannot depend on iteration order.
func newSizeScale(stocks []domain.Stock) sizeScale {
	logs := make([]float64, 0, len(stocks))
	for _, s := range stocks {
		if s.MarketCap > 0 {
			logs = append(logs, math.Log10(s.MarketCap+1))
		}
	}
	if len(logs) == 0 {
		return sizeScale{}
	}
	return sizeScale{minLog: floats.Min(logs), maxLog: floats.Max(logs)}
}

// size maps one market cap against the collection scale to [SizeMin, SizeMax].
func (sc sizeScale) size(marketCap float64) float64 {
	if marketCap <= 0 {
		return SizeFallback
	}
	return Normalize(math.Log10(marketCap+1), sc.minLog, sc.maxLog, SizeMin, SizeMax)
}

// pulseScale holds the collection-level volume range for the pulse mapping.
type pulseScale struct {
	minVol, maxVol float64
	empty          bool
}

func newPulseScale(stocks []domain.Stock) pulseScale {
	if len(stocks) == 0 {
		return pulseScale{empty: true}
	}
	vols := make([]float64, 0, len(stocks))
	for _, s := range stocks {
		vols = append(vols, s.Volume)
	}
	return pulseScale{minVol: floats.Min(vols), maxVol: floats.Max(vols)}
}

// pulse maps one volume against the collection scale to [PulseMin, PulseMax].
func (ps pulseScale) pulse(volume float64) float64 {
	if ps.empty || volume <= 0 {
		return PulseFallback
	}
	return Normalize(volume, ps.minVol, ps.maxVol, PulseMin, PulseMax)
}

// MapProperties derives every visual/kinematic property from the raw
// metrics and returns a new collection. Positions are left untouched;
// the PositionInitializer owns those.
func MapProperties(stocks []domain.Stock) []domain.Stock {
	sizes := newSizeScale(stocks)
	pulses := newPulseScale(stocks)

	out := make([]domain.Stock, len(stocks))
	for i, s := range stocks {
		s.Color = Color(s.ChangePct, s.RuleOf40)
		s.Size = sizes.size(s.MarketCap)
		s.Glow = Glow(s.RuleOf40)
		s.Opacity = Opacity(s.DebtToEquity)
		s.PulseSpeed = pulses.pulse(s.Volume)
		s.Elasticity = Elasticity(s.Volatility)
		s.Velocity = VelocityVector(s.RevenueGrowth, s.MonthChangePct)
		out[i] = s
	}
	return out
}
