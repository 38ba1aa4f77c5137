// Package domain provides core domain models and types.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// HSL is a color in hue/saturation/lightness space.
// Hue is in degrees [0, 360), saturation and lightness are percentages.
type HSL struct {
	Hue        float64 `json:"h"`
	Saturation float64 `json:"s"`
	Lightness  float64 `json:"l"`
}

// Vec is a 2-D vector, used for both velocity and position deltas.
type Vec struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Bounds is the rectangle particles are confined to.
type Bounds struct {
	XMin float64 `json:"x_min"`
	XMax float64 `json:"x_max"`
	YMin float64 `json:"y_min"`
	YMax float64 `json:"y_max"`
}

// Valid reports whether the rectangle is non-degenerate.
func (b Bounds) Valid() bool {
	return b.XMin < b.XMax && b.YMin < b.YMax
}

// Stock represents one tradable instrument: raw metrics supplied by the
// market-data provider plus the derived visual/kinematic properties the
// renderer consumes. Ticker is the stable identity for the lifetime of a
// snapshot; raw metrics are immutable per tick, derived fields are
// recomputed by the physics pipeline.
type Stock struct {
	Ticker string `json:"ticker"`
	Sector string `json:"sector"`

	// Raw metrics (from provider)
	Price           float64 `json:"price"`
	ChangePct       float64 `json:"change_pct"`
	WeekChangePct   float64 `json:"week_change"`
	MonthChangePct  float64 `json:"month_change"`
	Volume          float64 `json:"volume"`
	MarketCap       float64 `json:"market_cap"`
	OperatingMargin float64 `json:"operating_margin"`
	RevenueGrowth   float64 `json:"revenue_growth"`
	RuleOf40        float64 `json:"rule_of_40"`
	PERatio         float64 `json:"pe_ratio"`
	Beta            float64 `json:"beta"`
	Volatility      float64 `json:"volatility"`
	DebtToEquity    float64 `json:"debt_to_equity"`

	// Derived visual/kinematic properties
	Color      HSL     `json:"color"`
	Size       float64 `json:"size"`
	Glow       float64 `json:"glow"`
	Opacity    float64 `json:"opacity"`
	PulseSpeed float64 `json:"pulse_speed"`
	Elasticity float64 `json:"elasticity"`
	Velocity   Vec     `json:"velocity"`
	Position   Vec     `json:"position"`
}

// Snapshot is one ingested market snapshot. The stock set is fixed for the
// lifetime of the snapshot and replaced wholesale on the next ingestion.
type Snapshot struct {
	ID        uuid.UUID `json:"id"`
	FetchedAt time.Time `json:"fetched_at"`
	Stocks    []Stock   `json:"stocks"`
}

// NewSnapshot creates a snapshot with a fresh identity.
func NewSnapshot(stocks []Stock) Snapshot {
	return Snapshot{
		ID:        uuid.New(),
		FetchedAt: time.Now().UTC(),
		Stocks:    stocks,
	}
}

// CloneStocks returns a deep copy of the snapshot's stock slice.
// Stock contains no reference fields, so a slice copy is a deep copy.
func (s Snapshot) CloneStocks() []Stock {
	out := make([]Stock, len(s.Stocks))
	copy(out, s.Stocks)
	return out
}
