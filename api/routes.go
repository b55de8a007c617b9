package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// setupRoutes registers the full HTTP surface under /api
func setupRoutes(r chi.Router, handlers *routeHandlers) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.healthHandler.check())

		r.Post("/send-emergency-alert", handlers.alertHandler.sendEmergencyAlert())

		r.Route("/blogs", func(r chi.Router) {
			r.Post("/", handlers.blogHandler.createBlog())
			r.Get("/", handlers.blogHandler.getAllBlogs())
			r.Get("/{id}", handlers.blogHandler.getBlog())
			r.Put("/{id}", handlers.blogHandler.updateBlog())
			r.Delete("/{id}", handlers.blogHandler.deleteBlog())
		})

		r.Route("/appointments", func(r chi.Router) {
			r.Post("/", handlers.appointmentHandler.createAppointment())
			r.Get("/", handlers.appointmentHandler.getAllAppointments())
			r.Get("/{id}", handlers.appointmentHandler.getAppointment())
			r.Put("/{id}", handlers.appointmentHandler.updateAppointment())
			r.Delete("/{id}", handlers.appointmentHandler.deleteAppointment())
		})
	})

	// Anything the table above does not match answers with the same 404
	// envelope, method mismatches included.
	notFound := func(w http.ResponseWriter, r *http.Request) {
		responder := NewResponder(log.Logger)
		responder.writeJSON(w, http.StatusNotFound, envelope{
			Success: false,
			Message: "Route not found",
		})
	}
	r.NotFound(notFound)
	r.MethodNotAllowed(notFound)
}
