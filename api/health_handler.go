package api

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type healthHandler struct {
	responder   Responder
	logger      zerolog.Logger
	db          Pinger
	startupTime time.Time
}

func newHealthHandler(db Pinger, startupTime time.Time) healthHandler {
	logger := log.With().Str("handlerName", "healthHandler").Logger()

	return healthHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		db:          db,
		startupTime: startupTime,
	}
}

// health reports process uptime in seconds and, when a database is wired, its reachability
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} healthResponse
// @Router /api/health [get]
func (h healthHandler) health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := healthResponse{
			Status: "ok",
			Uptime: time.Since(h.startupTime).Seconds(),
		}

		if h.db != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()

			response.Database = "ok"
			if err := h.db.Ping(ctx); err != nil {
				h.logger.Warn().Err(err).Msg("Database ping failed")
				response.Status = "degraded"
				response.Database = "unavailable"
			}
		}

		h.responder.WriteJSON(w, response)
	}
}
