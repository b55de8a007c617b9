package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mediconnect/backend/errs"
	"github.com/rs/zerolog"
)

type Responder struct {
	logger zerolog.Logger
}

func NewResponder(logger zerolog.Logger) Responder {
	return Responder{logger}
}

func (r Responder) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")

	jsonData, err := json.Marshal(body)
	if err != nil {
		r.logger.Error().Err(err).Msg("error marshaling response data")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(status)
	if _, err := w.Write(jsonData); err != nil {
		r.logger.Error().Err(err).Msg("error writing response")
	}
}

// WriteData writes a success envelope wrapping a single record or object.
func (r Responder) WriteData(w http.ResponseWriter, status int, data any) {
	r.writeJSON(w, status, envelope{Success: true, Data: data})
}

// WriteDataWithMessage writes a success envelope with a human-readable message.
func (r Responder) WriteDataWithMessage(w http.ResponseWriter, status int, data any, message string) {
	r.writeJSON(w, status, envelope{Success: true, Data: data, Message: message})
}

// WriteList writes a success envelope wrapping a collection plus its count.
func (r Responder) WriteList(w http.ResponseWriter, data any, count int) {
	r.writeJSON(w, http.StatusOK, envelope{Success: true, Data: data, Count: &count})
}

// WriteMessage writes a success envelope carrying only a message.
func (r Responder) WriteMessage(w http.ResponseWriter, status int, message string) {
	r.writeJSON(w, status, envelope{Success: true, Message: message})
}

// WriteError converts any error into the failure envelope. ApiErr instances
// keep their own status code; everything else surfaces as a generic 500.
func (r Responder) WriteError(w http.ResponseWriter, err error) {
	var apiErr *errs.ApiErr

	if !errors.As(err, &apiErr) {
		r.logger.Error().Msg(err.Error())
		r.writeJSON(w, http.StatusInternalServerError, envelope{
			Success: false,
			Message: "An unexpected error occurred",
			Error:   err.Error(),
		})
		return
	}

	body := envelope{
		Success: false,
		Message: apiErr.Error(),
	}
	if apiErr.Cause != nil {
		body.Error = apiErr.Cause.Error()
	}

	r.writeJSON(w, apiErr.StatusCode, body)
}

// wrapDatabaseError wraps a database error with context information
func wrapDatabaseError(operation, entity string, cause error) error {
	return errs.NewDatabaseError(operation, entity, cause)
}
