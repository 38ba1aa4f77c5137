// Package config provides configuration management functionality.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/mkarvelas/marketglow/internal/domain"
)

// Config holds application configuration
type Config struct {
	DataDir  string // Base directory for the snapshot cache database
	Port     int
	LogLevel string
	DevMode  bool // Deterministic seed + fake provider, no external calls

	MaxStocks       int           // Cap on tickers fetched per snapshot
	CacheTTL        time.Duration // Snapshot cache time-to-live
	RefreshSchedule string        // Cron expression for background refresh

	Sim    SimConfig
	Stream StreamConfig
}

// SimConfig holds the simulation region and force parameters
type SimConfig struct {
	Width     float64
	Height    float64
	Margin    float64
	TimeDelta float64
	Strength  float64
	Seed      int64 // Position seed; 0 means time-seeded
}

// Bounds returns the simulation bounding rectangle.
func (s SimConfig) Bounds() domain.Bounds {
	return domain.Bounds{XMin: 0, XMax: s.Width, YMin: 0, YMax: s.Height}
}

// StreamConfig holds WebSocket frame streaming parameters
type StreamConfig struct {
	Interval time.Duration // Delay between streamed frames
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	dataDir := getEnv("DATA_DIR", "./data")
	absDataDir, err := filepath.Abs(dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve data directory path: %w", err)
	}
	if err := os.MkdirAll(absDataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	cfg := &Config{
		DataDir:         absDataDir,
		Port:            getEnvAsInt("GO_PORT", 8001),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		DevMode:         getEnvAsBool("DEV_MODE", false),
		MaxStocks:       getEnvAsInt("MAX_STOCKS", 60),
		CacheTTL:        time.Duration(getEnvAsInt("CACHE_TTL_SECONDS", 300)) * time.Second,
		RefreshSchedule: getEnv("REFRESH_SCHEDULE", "@every 5m"),
		Sim: SimConfig{
			Width:     getEnvAsFloat("SIM_WIDTH", 100),
			Height:    getEnvAsFloat("SIM_HEIGHT", 100),
			Margin:    getEnvAsFloat("SIM_MARGIN", 10),
			TimeDelta: getEnvAsFloat("SIM_TIME_DELTA", 0.1),
			Strength:  getEnvAsFloat("SIM_STRENGTH", 0.03),
			Seed:      int64(getEnvAsInt("SIM_SEED", 0)),
		},
		Stream: StreamConfig{
			Interval: time.Duration(getEnvAsInt("STREAM_INTERVAL_MS", 100)) * time.Millisecond,
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if required configuration is present and consistent
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if c.MaxStocks <= 0 {
		return fmt.Errorf("MAX_STOCKS must be positive, got %d", c.MaxStocks)
	}
	if !c.Sim.Bounds().Valid() {
		return fmt.Errorf("invalid simulation region %gx%g", c.Sim.Width, c.Sim.Height)
	}
	if c.Sim.Margin < 0 || c.Sim.Margin*2 >= c.Sim.Width || c.Sim.Margin*2 >= c.Sim.Height {
		return fmt.Errorf("margin %g does not fit region %gx%g", c.Sim.Margin, c.Sim.Width, c.Sim.Height)
	}
	if c.Sim.TimeDelta < 0 {
		return fmt.Errorf("SIM_TIME_DELTA must be non-negative, got %g", c.Sim.TimeDelta)
	}
	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
