package marketdata

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/mkarvelas/marketglow/internal/domain"
)

// snapshotKey is the cache key for the market-wide snapshot.
const snapshotKey = "market_snapshot"

// Service produces enriched market snapshots: cache hit when fresh,
// otherwise provider fetch + enrichment + cache fill.
type Service struct {
	provider domain.QuoteProvider
	cache    domain.SnapshotCache
	tickers  []string
	log      zerolog.Logger
}

// NewService creates a market-data service over the given provider and
// cache. tickers is the universe to fetch, already capped by the caller.
func NewService(provider domain.QuoteProvider, cache domain.SnapshotCache, tickers []string, log zerolog.Logger) *Service {
	return &Service{
		provider: provider,
		cache:    cache,
		tickers:  tickers,
		log:      log.With().Str("service", "marketdata").Logger(),
	}
}

// Snapshot returns the current market snapshot, consulting the cache first.
func (s *Service) Snapshot(ctx context.Context) (domain.Snapshot, error) {
	if snap, ok, err := s.cache.Get(snapshotKey); err != nil {
		s.log.Warn().Err(err).Msg("Snapshot cache read failed, falling through to provider")
	} else if ok {
		s.log.Debug().Int("stocks", len(snap.Stocks)).Msg("Using cached market snapshot")
		return snap, nil
	}

	return s.Refresh(ctx)
}

// Refresh bypasses the cache: fetches, enriches, and stores a fresh
// snapshot.
func (s *Service) Refresh(ctx context.Context) (domain.Snapshot, error) {
	s.log.Info().Int("tickers", len(s.tickers)).Msg("Fetching market snapshot")

	quotes, err := s.provider.Fetch(ctx, s.tickers)
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("failed to fetch quotes: %w", err)
	}

	stocks, err := EnrichAll(quotes)
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("failed to enrich quotes: %w", err)
	}

	snap := domain.NewSnapshot(stocks)
	if err := s.cache.Put(snapshotKey, snap); err != nil {
		// A broken cache should not take down ingestion.
		s.log.Warn().Err(err).Msg("Failed to cache market snapshot")
	}

	s.log.Info().Int("stocks", len(stocks)).Str("snapshot_id", snap.ID.String()).Msg("Market snapshot ready")
	return snap, nil
}
