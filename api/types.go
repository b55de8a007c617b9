package api

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	healthHandler      healthHandler
	alertHandler       alertHandler
	blogHandler        blogHandler
	appointmentHandler appointmentHandler
}

// envelope is the single response shape used by every route. The original
// appointment surface answered with bare records; blogs and appointments
// now share this one envelope.
type envelope struct {
	Success   bool   `json:"success"`
	Data      any    `json:"data,omitempty"`
	Message   string `json:"message,omitempty"`
	Count     *int   `json:"count,omitempty"`
	Error     string `json:"error,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
}

// emergencyAlertRequest is the body of POST /api/send-emergency-alert.
// Latitude and longitude are pointers so that absence is distinguishable
// from zero.
type emergencyAlertRequest struct {
	Services []string `json:"services"`
	Location struct {
		Latitude  *float64 `json:"latitude"`
		Longitude *float64 `json:"longitude"`
	} `json:"location"`
	Address string `json:"address"`
}
