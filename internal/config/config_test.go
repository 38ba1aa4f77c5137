package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATA_DIR", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8001, cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 60, cfg.MaxStocks)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	assert.Equal(t, 100.0, cfg.Sim.Width)
	assert.Equal(t, 10.0, cfg.Sim.Margin)
	assert.Equal(t, 0.1, cfg.Sim.TimeDelta)
	assert.Equal(t, 0.03, cfg.Sim.Strength)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATA_DIR", t.TempDir())
	t.Setenv("GO_PORT", "9090")
	t.Setenv("SIM_WIDTH", "250")
	t.Setenv("SIM_HEIGHT", "180")
	t.Setenv("SIM_SEED", "42")
	t.Setenv("DEV_MODE", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, 250.0, cfg.Sim.Width)
	assert.Equal(t, 180.0, cfg.Sim.Height)
	assert.Equal(t, int64(42), cfg.Sim.Seed)
	assert.True(t, cfg.DevMode)
}

func TestLoadRejectsDegenerateRegion(t *testing.T) {
	t.Setenv("DATA_DIR", t.TempDir())
	t.Setenv("SIM_WIDTH", "15")
	t.Setenv("SIM_HEIGHT", "15")
	// Margin 10 on a 15-unit region leaves no interior.
	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsNegativeTimeDelta(t *testing.T) {
	t.Setenv("DATA_DIR", t.TempDir())
	t.Setenv("SIM_TIME_DELTA", "-0.5")
	_, err := Load()
	assert.Error(t, err)
}

func TestSimBounds(t *testing.T) {
	s := SimConfig{Width: 200, Height: 120}
	b := s.Bounds()
	assert.Equal(t, 0.0, b.XMin)
	assert.Equal(t, 200.0, b.XMax)
	assert.Equal(t, 120.0, b.YMax)
	assert.True(t, b.Valid())
}
