package wire

import (
	"stay-booking/internal/adaptor"
	"stay-booking/pkg/middleware"
	"stay-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireReservation(
	r chi.Router,
	reservationHandler *adaptor.ReservationHandler,
	limiter *middleware.RateLimiter,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES (rate limited) ====================
	// Booking and lookup carry no authentication, so abuse is bounded per
	// client IP instead.
	r.Group(func(r chi.Router) {
		r.Use(limiter.Middleware())

		// POST /api/reservations - Create new reservation (public)
		r.Post("/api/reservations", reservationHandler.CreateReservation)

		// POST /api/reservations/lookup - Look up own reservation (public)
		r.Post("/api/reservations/lookup", reservationHandler.LookupReservation)
	})

	// ==================== STAFF ROUTES ====================
	r.Route("/api/admin/reservations", func(r chi.Router) {
		r.Use(middleware.StaffKey(config.Admin, log))

		// PUT /api/admin/reservations/{id}/cancel - Cancel reservation (staff)
		r.Put("/{id}/cancel", reservationHandler.CancelReservation)
	})
}
