// Package main is the entry point for the Marketglow visualization server.
// It ingests market snapshots, maps financial metrics to visual/kinematic
// particle properties, and serves the simulated scene to renderers over
// HTTP and WebSocket.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/mkarvelas/marketglow/internal/config"
	"github.com/mkarvelas/marketglow/internal/database"
	"github.com/mkarvelas/marketglow/internal/marketdata"
	"github.com/mkarvelas/marketglow/internal/modules/simulation"
	"github.com/mkarvelas/marketglow/internal/scheduler"
	"github.com/mkarvelas/marketglow/internal/server"
	"github.com/mkarvelas/marketglow/pkg/logger"
)

func main() {
	// Load configuration first to get log level
	cfg, err := config.Load()
	if err != nil {
		fallbackLog := logger.New(logger.Config{Level: "info", Pretty: true})
		fallbackLog.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: true,
	})
	logger.SetGlobalLogger(log)

	log.Info().Msg("Starting Marketglow")

	// Snapshot cache database
	cacheDB, err := database.New(database.Config{
		Path: filepath.Join(cfg.DataDir, "cache.db"),
		Name: "cache",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open cache database")
	}
	defer cacheDB.Close()

	cache, err := marketdata.NewCache(cacheDB, cfg.CacheTTL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize snapshot cache")
	}

	// Market-data service. Dev mode uses the deterministic in-process
	// provider; a real deployment plugs a live QuoteProvider in here.
	provider := marketdata.NewStaticProvider()
	if !cfg.DevMode {
		log.Warn().Msg("No live quote provider configured, using static provider")
	}

	market := marketdata.NewService(provider, cache, marketdata.Universe(cfg.MaxStocks), log)

	// Simulation service over the ingested snapshot
	sim := simulation.NewService(market, cfg.Sim, log)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	if err := sim.LoadSnapshot(ctx); err != nil {
		cancel()
		log.Fatal().Err(err).Msg("Failed to load initial snapshot")
	}
	cancel()

	// Background snapshot refresh
	sched := scheduler.New(log)
	refreshJob := scheduler.NewRefreshJob(sim, 60*time.Second)
	if err := sched.AddJob(cfg.RefreshSchedule, refreshJob); err != nil {
		log.Fatal().Err(err).Str("schedule", cfg.RefreshSchedule).Msg("Failed to register refresh job")
	}
	sched.Start()

	// HTTP server
	srv := server.New(server.Config{
		Log:        log,
		Config:     cfg,
		Simulation: sim,
	})

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down")

	sched.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server shutdown failed")
	}

	log.Info().Msg("Marketglow stopped")
}
