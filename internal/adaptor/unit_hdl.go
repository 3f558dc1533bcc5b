package adaptor

import (
	"errors"
	"net/http"

	"stay-booking/internal/usecase"
	"stay-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type UnitHandler struct {
	service usecase.UnitService
	log     *zap.Logger
}

func NewUnitHandler(service usecase.UnitService, log *zap.Logger) *UnitHandler {
	return &UnitHandler{
		service: service,
		log:     log.With(zap.String("handler", "unit")),
	}
}

// ListUnits handles GET /api/units (public)
func (h *UnitHandler) ListUnits(w http.ResponseWriter, r *http.Request) {
	units, err := h.service.ListUnits(r.Context())
	if err != nil {
		h.log.Error("Failed to list units", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	utils.ResponseSuccess(w, "success", units)
}

// CheckAvailability handles GET /api/units/{id}/availability?check_in=...&check_out=... (public)
func (h *UnitHandler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	unitID := chi.URLParam(r, "id")
	if unitID == "" {
		utils.ResponseBadRequest(w, "Unit ID is required", nil)
		return
	}

	query := r.URL.Query()
	result, err := h.service.CheckAvailability(r.Context(), unitID, query.Get("check_in"), query.Get("check_out"))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrValidation):
			utils.ResponseBadRequest(w, err.Error(), nil)
		case errors.Is(err, usecase.ErrNotFound):
			utils.ResponseNotFound(w, err.Error())
		default:
			h.log.Error("Failed to check availability", zap.Error(err))
			utils.ResponseInternalError(w, "Internal server error")
		}
		return
	}

	utils.ResponseSuccess(w, "success", result)
}
