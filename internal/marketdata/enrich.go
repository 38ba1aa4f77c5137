// Package marketdata ingests raw quotes from a provider, enriches them into
// stock records, and caches the resulting snapshots with a TTL. The physics
// core only ever sees the enriched, validated output.
package marketdata

import (
	"fmt"
	"math"

	"github.com/markcheno/go-talib"

	"github.com/mkarvelas/marketglow/internal/domain"
)

// Sessions used for momentum lookback over the one-month close history.
const (
	weekSessions = 5
)

// Enrich converts a raw quote into a stock record: daily change, Rule-of-40,
// volatility from the 52-week range, and week/month momentum from the close
// history. Required fields are validated here so malformed provider output
// fails fast instead of corrupting the simulation.
func Enrich(q domain.Quote) (domain.Stock, error) {
	if q.Ticker == "" {
		return domain.Stock{}, fmt.Errorf("quote missing ticker symbol")
	}
	if q.Price <= 0 {
		return domain.Stock{}, fmt.Errorf("quote for %s missing price", q.Ticker)
	}

	s := domain.Stock{
		Ticker:          q.Ticker,
		Sector:          q.Sector,
		Price:           round2(q.Price),
		Volume:          q.Volume,
		MarketCap:       q.MarketCap,
		OperatingMargin: round2(q.OperatingMargin),
		RevenueGrowth:   round2(q.RevenueGrowth),
		RuleOf40:        round2(q.OperatingMargin + q.RevenueGrowth),
		PERatio:         round2(q.PERatio),
		Beta:            q.Beta,
		DebtToEquity:    round2(q.DebtToEquity),
	}

	if q.PrevClose > 0 {
		s.ChangePct = round2((q.Price - q.PrevClose) / q.PrevClose * 100)
	}

	s.Volatility = round2(rangeVolatility(q.High52Week, q.Low52Week))
	s.WeekChangePct = round2(momentum(q.CloseHistory, q.Price, weekSessions))
	s.MonthChangePct = round2(momentum(q.CloseHistory, q.Price, len(q.CloseHistory)))

	return s, nil
}

// EnrichAll enriches every quote, failing on the first malformed record.
func EnrichAll(quotes []domain.Quote) ([]domain.Stock, error) {
	out := make([]domain.Stock, 0, len(quotes))
	for _, q := range quotes {
		s, err := Enrich(q)
		if err != nil {
			return nil, fmt.Errorf("enrich quote: %w", err)
		}
		out = append(out, s)
	}
	return out, nil
}

// rangeVolatility estimates volatility percent from the 52-week range
// relative to its midpoint.
func rangeVolatility(high, low float64) float64 {
	if high <= 0 || low <= 0 || high < low {
		return 0
	}
	avg := (high + low) / 2
	return (high - low) / avg * 100
}

// momentum returns the percent change of the current price against the
// close n sessions back, computed as a rate-of-change series over the
// history with the current price appended. Too little history yields zero.
func momentum(closes []float64, price float64, n int) float64 {
	if n <= 0 || len(closes) < n {
		return 0
	}
	series := make([]float64, 0, len(closes)+1)
	series = append(series, closes...)
	series = append(series, price)

	roc := talib.Roc(series, n)
	last := roc[len(roc)-1]
	if math.IsNaN(last) || math.IsInf(last, 0) {
		return 0
	}
	return last
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
