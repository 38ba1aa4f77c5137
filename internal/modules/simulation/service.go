// Package simulation holds the per-snapshot simulation state and derives
// renderable frames from it.
package simulation

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/mkarvelas/marketglow/internal/config"
	"github.com/mkarvelas/marketglow/internal/domain"
	"github.com/mkarvelas/marketglow/internal/marketdata"
	"github.com/mkarvelas/marketglow/internal/physics"
)

// Scene is what the renderer consumes: the snapshot identity plus the
// property-annotated stock collection.
type Scene struct {
	SnapshotID string         `json:"snapshot_id"`
	FetchedAt  time.Time      `json:"fetched_at"`
	Bounds     domain.Bounds  `json:"bounds"`
	Stocks     []domain.Stock `json:"stocks"`
}

// Service owns the simulation base state for the current snapshot.
//
// Tick semantics: the mapped and placed collection is kept as an immutable
// base, and every Tick call derives its frames from that base. Repeated
// identical requests therefore return identical results; continuous motion
// is the stream's job, which accumulates over its own private copy.
type Service struct {
	market *marketdata.Service
	sim    config.SimConfig
	log    zerolog.Logger

	mu   sync.RWMutex
	snap domain.Snapshot
	base []domain.Stock
}

// NewService creates a simulation service. Call LoadSnapshot before
// serving scenes.
func NewService(market *marketdata.Service, sim config.SimConfig, log zerolog.Logger) *Service {
	return &Service{
		market: market,
		sim:    sim,
		log:    log.With().Str("service", "simulation").Logger(),
	}
}

// rng returns the position random source: seeded from config for
// reproducible dev runs, time-seeded otherwise.
func (s *Service) rng() *rand.Rand {
	seed := s.sim.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// LoadSnapshot ingests the current market snapshot and rebuilds the base
// state: property mapping followed by position initialization.
func (s *Service) LoadSnapshot(ctx context.Context) error {
	snap, err := s.market.Snapshot(ctx)
	if err != nil {
		return fmt.Errorf("failed to load market snapshot: %w", err)
	}
	s.install(snap)
	return nil
}

// Refresh forces a new market snapshot and rebuilds the base state.
func (s *Service) Refresh(ctx context.Context) error {
	snap, err := s.market.Refresh(ctx)
	if err != nil {
		return fmt.Errorf("failed to refresh market snapshot: %w", err)
	}
	s.install(snap)
	return nil
}

func (s *Service) install(snap domain.Snapshot) {
	init := physics.NewPositionInitializer(s.sim.Width, s.sim.Height, s.sim.Margin, s.rng())
	base := physics.Prepare(snap.Stocks, init)

	s.mu.Lock()
	s.snap = snap
	s.base = base
	s.mu.Unlock()

	s.log.Info().
		Str("snapshot_id", snap.ID.String()).
		Int("stocks", len(base)).
		Msg("Simulation base state rebuilt")
}

// Reshuffle re-randomizes positions over the current snapshot without
// refetching market data.
func (s *Service) Reshuffle() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.base) == 0 {
		return fmt.Errorf("no snapshot loaded")
	}

	init := physics.NewPositionInitializer(s.sim.Width, s.sim.Height, s.sim.Margin, rand.New(rand.NewSource(time.Now().UnixNano())))
	s.base = init.Place(s.base)
	return nil
}

// Scene returns the base scene without applying any forces.
func (s *Service) Scene() Scene {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sceneLocked(s.base)
}

// Tick derives frames ticks from the base state. Unknown modes are
// tolerated: the attraction stage is a no-op and only integration runs.
// Strength is applied as given; zero disables attraction and negative
// values repel. The base state is never advanced.
func (s *Service) Tick(mode physics.Mode, strength float64, frames int) Scene {
	if frames <= 0 {
		frames = 1
	}

	s.mu.RLock()
	base := make([]domain.Stock, len(s.base))
	copy(base, s.base)
	snap := s.snap
	s.mu.RUnlock()

	cfg := s.tickConfig(mode, strength)
	out := physics.Run(base, cfg, frames)

	return Scene{
		SnapshotID: snap.ID.String(),
		FetchedAt:  snap.FetchedAt,
		Bounds:     cfg.Bounds,
		Stocks:     out,
	}
}

// Advance runs one tick over the supplied state, for callers that keep
// their own accumulating copy (the frame stream). Strength is applied
// as given, like Tick.
func (s *Service) Advance(stocks []domain.Stock, mode physics.Mode, strength float64) []domain.Stock {
	return physics.Tick(stocks, s.tickConfig(mode, strength))
}

// DefaultStrength returns the configured attraction strength, for callers
// whose requests omit an explicit value.
func (s *Service) DefaultStrength() float64 {
	return s.sim.Strength
}

// BaseStocks returns a private copy of the base collection.
func (s *Service) BaseStocks() []domain.Stock {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Stock, len(s.base))
	copy(out, s.base)
	return out
}

// StockCount reports the size of the loaded snapshot.
func (s *Service) StockCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.base)
}

func (s *Service) tickConfig(mode physics.Mode, strength float64) physics.TickConfig {
	return physics.TickConfig{
		Mode:      mode,
		Strength:  strength,
		TimeDelta: s.sim.TimeDelta,
		Bounds:    s.sim.Bounds(),
	}
}

func (s *Service) sceneLocked(stocks []domain.Stock) Scene {
	out := make([]domain.Stock, len(stocks))
	copy(out, stocks)
	return Scene{
		SnapshotID: s.snap.ID.String(),
		FetchedAt:  s.snap.FetchedAt,
		Bounds:     s.sim.Bounds(),
		Stocks:     out,
	}
}
