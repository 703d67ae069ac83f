package get_venue_info

import (
	"net/http"

	"github.com/m04kA/Fairway-BookingService/internal/api/handlers"
)

type Logger interface {
	Info(format string, v ...interface{})
}

type Handler struct {
	venue  *VenueResponse
	logger Logger
}

func NewHandler(venue *VenueResponse, logger Logger) *Handler {
	return &Handler{
		venue:  venue,
		logger: logger,
	}
}

// Handle GET /api/v1/venue
// Публичный endpoint - без авторизации
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	h.logger.Info("GET /venue - Venue info requested: bays=%d", h.venue.Bays)
	handlers.RespondJSON(w, http.StatusOK, h.venue)
}
