package wire

import (
	"stay-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireUnit(r chi.Router, unitHandler *adaptor.UnitHandler) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/units - List bookable units (public)
	r.Get("/api/units", unitHandler.ListUnits)

	// GET /api/units/{id}/availability - Check a date range (public)
	r.Get("/api/units/{id}/availability", unitHandler.CheckAvailability)
}
