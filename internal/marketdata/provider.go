package marketdata

import (
	"context"
	"hash/fnv"
	"math"

	"github.com/mkarvelas/marketglow/internal/domain"
)

// StaticProvider is a deterministic in-process QuoteProvider used in dev
// mode and in tests. Metrics are derived from a hash of the ticker so a
// given universe always produces the same snapshot, with enough spread to
// exercise every property mapping.
type StaticProvider struct{}

// NewStaticProvider creates a deterministic provider.
func NewStaticProvider() *StaticProvider {
	return &StaticProvider{}
}

// Fetch synthesizes one quote per ticker.
func (p *StaticProvider) Fetch(_ context.Context, tickers []string) ([]domain.Quote, error) {
	out := make([]domain.Quote, 0, len(tickers))
	for _, t := range tickers {
		if t == "" {
			continue
		}
		out = append(out, synthQuote(t))
	}
	return out, nil
}

// synthQuote derives a plausible quote from the ticker hash. unit maps a
// sub-hash to [0,1); each metric stretches that into its natural range.
func synthQuote(ticker string) domain.Quote {
	h := fnv.New64a()
	_, _ = h.Write([]byte(ticker))
	seed := h.Sum64()

	unit := func(salt uint64) float64 {
		x := seed ^ (salt * 0x9e3779b97f4a7c15)
		x ^= x >> 33
		x *= 0xff51afd7ed558ccd
		x ^= x >> 33
		return float64(x%1_000_000) / 1_000_000
	}

	price := 10 + unit(1)*990
	prevClose := price / (1 + (unit(2)-0.5)*0.12) // daily change within ±6%

	// One month of closes drifting toward the current price.
	closes := make([]float64, 21)
	start := price * (1 - (unit(3)-0.5)*0.4)
	for i := range closes {
		t := float64(i) / float64(len(closes)-1)
		wobble := math.Sin(float64(i)*1.7+unit(4)*6) * price * 0.01
		closes[i] = start + (price-start)*t + wobble
	}

	low := price * (0.5 + unit(5)*0.3)
	high := price * (1.1 + unit(6)*0.5)

	return domain.Quote{
		Ticker:          ticker,
		Sector:          sectorFor(seed),
		Price:           price,
		PrevClose:       prevClose,
		Volume:          1e6 + unit(7)*1.5e8,
		MarketCap:       5e9 + unit(8)*3e12,
		OperatingMargin: (unit(9) - 0.25) * 80,  // -20 .. 60
		RevenueGrowth:   (unit(10) - 0.3) * 100, // -30 .. 70
		PERatio:         5 + unit(11)*80,
		Beta:            0.5 + unit(12)*1.8,
		High52Week:      high,
		Low52Week:       low,
		DebtToEquity:    unit(13) * 350,
		CloseHistory:    closes,
	}
}

var sectors = []string{
	"Technology", "Financial Services", "Healthcare", "Consumer Cyclical",
	"Energy", "Industrials", "Communication Services",
}

func sectorFor(seed uint64) string {
	return sectors[seed%uint64(len(sectors))]
}
