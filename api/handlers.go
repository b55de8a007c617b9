package api

import (
	"time"

	"github.com/mediconnect/backend/database"
	"github.com/mediconnect/backend/services"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(db database.Database, dispatcher *services.AlertDispatcher, startupTime time.Time) *routeHandlers {
	return &routeHandlers{
		healthHandler:      newHealthHandler(startupTime),
		alertHandler:       newAlertHandler(dispatcher),
		blogHandler:        newBlogHandler(db.BlogRepo()),
		appointmentHandler: newAppointmentHandler(db.AppointmentRepo()),
	}
}
