package simulation

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkarvelas/marketglow/internal/config"
	"github.com/mkarvelas/marketglow/internal/database"
	"github.com/mkarvelas/marketglow/internal/marketdata"
	"github.com/mkarvelas/marketglow/internal/physics"
)

func testSimConfig() config.SimConfig {
	return config.SimConfig{
		Width:     100,
		Height:    100,
		Margin:    10,
		TimeDelta: 0.1,
		Strength:  0.03,
		Seed:      42,
	}
}

func newTestService(t *testing.T) *Service {
	t.Helper()

	db, err := database.New(database.Config{Path: "file::memory:", Name: "cache"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	cache, err := marketdata.NewCache(db, 5*time.Minute)
	require.NoError(t, err)

	market := marketdata.NewService(
		marketdata.NewStaticProvider(),
		cache,
		[]string{"AAPL", "TSLA", "NVDA", "AMD", "MSFT"},
		zerolog.Nop(),
	)

	svc := NewService(market, testSimConfig(), zerolog.Nop())
	require.NoError(t, svc.LoadSnapshot(context.Background()))
	return svc
}

func TestSceneCarriesMappedProperties(t *testing.T) {
	svc := newTestService(t)
	scene := svc.Scene()

	require.Len(t, scene.Stocks, 5)
	assert.NotEmpty(t, scene.SnapshotID)

	for _, s := range scene.Stocks {
		assert.GreaterOrEqual(t, s.Glow, 0.1)
		assert.LessOrEqual(t, s.Glow, 1.0)
		assert.GreaterOrEqual(t, s.Opacity, 0.4)
		assert.LessOrEqual(t, s.Opacity, 1.0)
		assert.GreaterOrEqual(t, s.Elasticity, 0.3)
		assert.LessOrEqual(t, s.Elasticity, 1.0)
		assert.GreaterOrEqual(t, s.Position.X, 10.0)
		assert.LessOrEqual(t, s.Position.X, 90.0)
	}
}

func TestTickDerivesFromImmutableBase(t *testing.T) {
	svc := newTestService(t)
	before := svc.Scene()

	a := svc.Tick(physics.ModeValue, 0.03, 1)
	b := svc.Tick(physics.ModeValue, 0.03, 1)

	// Identical requests against the same base give identical frames.
	assert.Equal(t, a.Stocks, b.Stocks)

	// The base scene is untouched by ticking.
	assert.Equal(t, before.Stocks, svc.Scene().Stocks)
}

func TestTickUnknownModeOnlyIntegrates(t *testing.T) {
	svc := newTestService(t)
	base := svc.BaseStocks()

	scene := svc.Tick(physics.Mode("nonsense"), 0.03, 1)
	require.Len(t, scene.Stocks, len(base))

	// No attraction applied: velocity is just the damped initial velocity.
	for i, s := range scene.Stocks {
		assert.InDelta(t, base[i].Velocity.X*physics.Damping, s.Velocity.X, 1e-9)
	}
}

func TestTickStaysInBounds(t *testing.T) {
	svc := newTestService(t)
	scene := svc.Tick(physics.ModeSize, 0.5, 100)

	for _, s := range scene.Stocks {
		assert.GreaterOrEqual(t, s.Position.X, 0.0)
		assert.LessOrEqual(t, s.Position.X, 100.0)
		assert.GreaterOrEqual(t, s.Position.Y, 0.0)
		assert.LessOrEqual(t, s.Position.Y, 100.0)
	}
}

func TestTickDefaultsFrames(t *testing.T) {
	svc := newTestService(t)
	a := svc.Tick(physics.ModeValue, 0.03, 0)
	b := svc.Tick(physics.ModeValue, 0.03, 1)
	assert.Equal(t, a.Stocks, b.Stocks)
}

func TestTickZeroStrengthDisablesAttraction(t *testing.T) {
	svc := newTestService(t)
	base := svc.BaseStocks()

	scene := svc.Tick(physics.ModeValue, 0, 1)
	require.Len(t, scene.Stocks, len(base))

	// Zero strength means no pull toward the centroid: velocity is just
	// the damped initial velocity, same as with no attraction mode at all.
	for i, s := range scene.Stocks {
		assert.InDelta(t, base[i].Velocity.X*physics.Damping, s.Velocity.X, 1e-9)
		assert.InDelta(t, base[i].Velocity.Y*physics.Damping, s.Velocity.Y, 1e-9)
	}
}

func TestAdvanceAccumulates(t *testing.T) {
	svc := newTestService(t)
	state := svc.BaseStocks()

	first := svc.Advance(state, physics.ModeValue, 0.03)
	second := svc.Advance(first, physics.ModeValue, 0.03)

	assert.NotEqual(t, first, second)
	// Base remains untouched by stream advancement.
	assert.Equal(t, state, svc.BaseStocks())
}

func TestReshuffleKeepsProperties(t *testing.T) {
	svc := newTestService(t)
	before := svc.Scene()

	require.NoError(t, svc.Reshuffle())
	after := svc.Scene()

	require.Len(t, after.Stocks, len(before.Stocks))
	for i := range after.Stocks {
		assert.Equal(t, before.Stocks[i].Ticker, after.Stocks[i].Ticker)
		assert.Equal(t, before.Stocks[i].Size, after.Stocks[i].Size)
		assert.Equal(t, before.Stocks[i].Glow, after.Stocks[i].Glow)
	}
}

func TestReshuffleWithoutSnapshotErrors(t *testing.T) {
	svc := NewService(nil, testSimConfig(), zerolog.Nop())
	assert.Error(t, svc.Reshuffle())
}
