package domain

import "context"

// Quote is a raw per-ticker record as delivered by a market-data source,
// before enrichment. CloseHistory is ordered oldest-first and covers
// roughly one month of sessions; it may be empty when the source has no
// history for the ticker.
type Quote struct {
	Ticker          string
	Sector          string
	Price           float64
	PrevClose       float64
	Volume          float64
	MarketCap       float64
	OperatingMargin float64
	RevenueGrowth   float64
	PERatio         float64
	Beta            float64
	High52Week      float64
	Low52Week       float64
	DebtToEquity    float64
	CloseHistory    []float64
}

// QuoteProvider supplies raw per-ticker quotes from a market-data source.
// Implementations own transport, retries, and rate limiting; the core
// never talks to a provider directly. Tickers the source cannot resolve
// are skipped, not errors; an error means the source itself was
// unreachable or returned malformed data.
type QuoteProvider interface {
	Fetch(ctx context.Context, tickers []string) ([]Quote, error)
}

// SnapshotCache is an explicit cache handle for ingested snapshots.
// Entries expire after the TTL configured at construction; Get reports a
// miss for absent or expired entries.
type SnapshotCache interface {
	Get(key string) (Snapshot, bool, error)
	Put(key string, snap Snapshot) error
}
