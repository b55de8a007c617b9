package api

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type healthHandler struct {
	responder   Responder
	logger      zerolog.Logger
	startupTime time.Time
}

func newHealthHandler(startupTime time.Time) healthHandler {
	logger := log.With().Str("handlerName", "healthHandler").Logger()

	return healthHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		startupTime: startupTime,
	}
}

// check is the liveness probe
func (h healthHandler) check() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.writeJSON(w, http.StatusOK, envelope{
			Success: true,
			Message: "MediConnect API is running",
			Data: map[string]string{
				"uptime": time.Since(h.startupTime).Round(time.Second).String(),
			},
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
	}
}
