package marketdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkarvelas/marketglow/internal/domain"
)

func validQuote() domain.Quote {
	return domain.Quote{
		Ticker:          "AAPL",
		Sector:          "Technology",
		Price:           200,
		PrevClose:       195,
		Volume:          5e7,
		MarketCap:       3e12,
		OperatingMargin: 30,
		RevenueGrowth:   8,
		PERatio:         28,
		Beta:            1.2,
		High52Week:      240,
		Low52Week:       160,
		DebtToEquity:    150,
		CloseHistory:    []float64{180, 182, 185, 184, 188, 190, 192, 191, 195, 198},
	}
}

func TestEnrichComputesDerivedMetrics(t *testing.T) {
	s, err := Enrich(validQuote())
	require.NoError(t, err)

	assert.Equal(t, "AAPL", s.Ticker)
	assert.InDelta(t, 38, s.RuleOf40, 1e-9)
	// (200-195)/195*100 = 2.56...
	assert.InDelta(t, 2.56, s.ChangePct, 0.01)
	// 52-week range vs midpoint: 80/200*100 = 40.
	assert.InDelta(t, 40, s.Volatility, 1e-9)
	// Month momentum against the oldest close: (200-180)/180*100.
	assert.InDelta(t, 11.11, s.MonthChangePct, 0.01)
	// Week momentum against the close 5 sessions back (190).
	assert.InDelta(t, (200.0-190)/190*100, s.WeekChangePct, 0.01)
}

func TestEnrichFailsFastOnMissingFields(t *testing.T) {
	q := validQuote()
	q.Ticker = ""
	_, err := Enrich(q)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ticker")

	q = validQuote()
	q.Price = 0
	_, err = Enrich(q)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "price")
}

func TestEnrichToleratesMissingHistory(t *testing.T) {
	q := validQuote()
	q.CloseHistory = nil

	s, err := Enrich(q)
	require.NoError(t, err)
	assert.Zero(t, s.MonthChangePct)
	assert.Zero(t, s.WeekChangePct)
}

func TestEnrichToleratesMissingRange(t *testing.T) {
	q := validQuote()
	q.High52Week = 0
	q.Low52Week = 0

	s, err := Enrich(q)
	require.NoError(t, err)
	assert.Zero(t, s.Volatility)
}

func TestEnrichAllPropagatesFirstError(t *testing.T) {
	quotes := []domain.Quote{validQuote(), {Ticker: "BROKEN"}}
	_, err := EnrichAll(quotes)
	assert.Error(t, err)
}

func TestEnrichAllEmpty(t *testing.T) {
	out, err := EnrichAll(nil)
	require.NoError(t, err)
	assert.Empty(t, out)
}
