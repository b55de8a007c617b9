package api

import (
	"encoding/json"
	"net/http"

	"github.com/mediconnect/backend/errs"
	"github.com/mediconnect/backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type alertHandler struct {
	responder  Responder
	logger     zerolog.Logger
	dispatcher *services.AlertDispatcher
}

func newAlertHandler(dispatcher *services.AlertDispatcher) alertHandler {
	logger := log.With().Str("handlerName", "alertHandler").Logger()

	return alertHandler{
		responder:  NewResponder(logger),
		logger:     logger,
		dispatcher: dispatcher,
	}
}

// sendEmergencyAlert validates the request, then fans one email out per
// requested service and blocks until every send has finished.
func (h alertHandler) sendEmergencyAlert() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req emergencyAlertRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode emergency alert request body")
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}

		if len(req.Services) == 0 {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("services"))
			return
		}
		if req.Location.Latitude == nil {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("location.latitude"))
			return
		}
		if req.Location.Longitude == nil {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("location.longitude"))
			return
		}

		loc := services.Location{
			Latitude:  *req.Location.Latitude,
			Longitude: *req.Location.Longitude,
			Address:   req.Address,
		}

		if err := h.dispatcher.Dispatch(r.Context(), req.Services, loc); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteMessage(w, http.StatusOK, "Emergency alerts sent successfully")
	}
}
