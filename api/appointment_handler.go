package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/mediconnect/backend/database"
	"github.com/mediconnect/backend/errs"
	"github.com/mediconnect/backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type appointmentHandler struct {
	responder       Responder
	logger          zerolog.Logger
	appointmentRepo *database.AppointmentRepo
}

func newAppointmentHandler(appointmentRepo *database.AppointmentRepo) appointmentHandler {
	logger := log.With().Str("handlerName", "appointmentHandler").Logger()

	return appointmentHandler{
		responder:       NewResponder(logger),
		logger:          logger,
		appointmentRepo: appointmentRepo,
	}
}

var appointmentUpdatableColumns = map[string]string{
	"doctor":    "doctor",
	"specialty": "specialty",
	"date":      "date",
	"time":      "time",
	"reason":    "reason",
	"status":    "status",
	"type":      "type",
	"location":  "location",
	"comments":  "comments",
}

// createAppointment creates a new appointment
func (h appointmentHandler) createAppointment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var appointment models.Appointment
		if err := json.NewDecoder(r.Body).Decode(&appointment); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode appointment request body")
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}

		if appointment.Doctor == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("doctor"))
			return
		}
		if appointment.Date == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("date"))
			return
		}
		if appointment.Time == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("time"))
			return
		}

		// identifier and creation date are system-assigned
		appointment.ID = 0
		appointment.CreatedAt = time.Time{}
		if appointment.Status == "" {
			appointment.Status = "pending"
		}
		if appointment.Type == "" {
			appointment.Type = "regular"
		}

		if err := h.appointmentRepo.Add(&appointment); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "appointment", err))
			return
		}

		h.responder.WriteDataWithMessage(w, http.StatusCreated, appointment, "Appointment created successfully")
	}
}

// getAllAppointments retrieves all appointments
func (h appointmentHandler) getAllAppointments() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		appointments, err := h.appointmentRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "appointments", err))
			return
		}

		h.responder.WriteList(w, appointments, len(appointments))
	}
}

// getAppointment retrieves a specific appointment by ID
func (h appointmentHandler) getAppointment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		appointment, err := h.appointmentRepo.FindByID(id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "appointment", err))
			return
		}
		if appointment == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Appointment not found"))
			return
		}

		h.responder.WriteData(w, http.StatusOK, appointment)
	}
}

// updateAppointment applies a partial update to an existing appointment.
// Status transitions are plain field replacements; the server enforces no
// state machine.
func (h appointmentHandler) updateAppointment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode appointment request body")
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}

		fields := make(map[string]any, len(body))
		for field, value := range body {
			if column, ok := appointmentUpdatableColumns[field]; ok {
				fields[column] = value
			}
		}
		if len(fields) == 0 {
			h.responder.WriteError(w, errs.NewBadRequestError("no updatable fields provided"))
			return
		}

		updated, err := h.appointmentRepo.UpdateFields(id, fields)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "appointment", err))
			return
		}
		if updated == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Appointment not found"))
			return
		}

		h.responder.WriteDataWithMessage(w, http.StatusOK, updated, "Appointment updated successfully")
	}
}

// deleteAppointment deletes an appointment and returns the record that was removed
func (h appointmentHandler) deleteAppointment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		deleted, err := h.appointmentRepo.Delete(id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "appointment", err))
			return
		}
		if deleted == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Appointment not found"))
			return
		}

		h.responder.WriteDataWithMessage(w, http.StatusOK, deleted, "Appointment deleted successfully")
	}
}
