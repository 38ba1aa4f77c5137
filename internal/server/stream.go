package server

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"

	"github.com/mkarvelas/marketglow/internal/config"
	"github.com/mkarvelas/marketglow/internal/modules/simulation"
	"github.com/mkarvelas/marketglow/internal/physics"
)

const streamWriteWait = 10 * time.Second

// StreamHandler streams simulation frames over a WebSocket. Unlike the
// one-shot tick endpoint, the stream keeps a private accumulating copy of
// the scene so connected renderers see continuous motion. Each connection
// gets its own copy; the shared base state is never advanced.
type StreamHandler struct {
	simulation *simulation.Service
	interval   time.Duration
	log        zerolog.Logger
}

// NewStreamHandler creates a frame stream handler.
func NewStreamHandler(sim *simulation.Service, cfg config.StreamConfig, log zerolog.Logger) *StreamHandler {
	return &StreamHandler{
		simulation: sim,
		interval:   cfg.Interval,
		log:        log.With().Str("handler", "stream").Logger(),
	}
}

// ServeHTTP handles GET /api/simulation/stream. Query parameters:
// mode (attraction mode, default "value") and strength (force multiplier,
// configured default when absent; an explicit zero turns attraction off).
func (h *StreamHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	mode := physics.Mode(r.URL.Query().Get("mode"))
	if mode == "" {
		mode = physics.ModeValue
	}

	strength := h.simulation.DefaultStrength()
	if raw := r.URL.Query().Get("strength"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			strength = v
		}
	}

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		h.log.Warn().Err(err).Msg("WebSocket accept failed")
		return
	}
	defer conn.Close(websocket.StatusNormalClosure, "stream finished")

	// The stream is write-only, so CloseRead keeps draining control frames
	// and cancels the returned context when the client closes.
	ctx := conn.CloseRead(r.Context())

	h.log.Info().Str("mode", string(mode)).Float64("strength", strength).Msg("Frame stream opened")

	base := h.simulation.Scene()
	state := base.Stocks
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			h.log.Debug().Msg("Frame stream closed by client")
			return
		case <-ticker.C:
			state = h.simulation.Advance(state, mode, strength)

			writeCtx, cancel := context.WithTimeout(ctx, streamWriteWait)
			err := wsjson.Write(writeCtx, conn, simulation.Scene{
				SnapshotID: base.SnapshotID,
				FetchedAt:  base.FetchedAt,
				Bounds:     base.Bounds,
				Stocks:     state,
			})
			cancel()
			if err != nil {
				h.log.Debug().Err(err).Msg("Frame stream write failed, closing")
				return
			}
		}
	}
}
