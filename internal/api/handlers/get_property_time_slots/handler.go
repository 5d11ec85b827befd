package get_property_time_slots

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RealtyService/internal/api/handlers"
	"github.com/m04kA/SMC-RealtyService/internal/service/timeslots"
)

const msgMissingPropertyID = "ID объекта обязателен"

type Handler struct {
	service TimeSlotService
	logger  Logger
}

func NewHandler(service TimeSlotService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/properties/{propertyId}/time-slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	propertyID := mux.Vars(r)["propertyId"]
	if propertyID == "" {
		h.logger.Warn("GET /properties/{id}/time-slots - Missing property ID")
		handlers.RespondBadRequest(w, msgMissingPropertyID)
		return
	}

	result, err := h.service.GetByProperty(r.Context(), propertyID)
	if err != nil {
		switch {
		case errors.Is(err, timeslots.ErrInvalidInput):
			h.logger.Warn("GET /properties/{id}/time-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgMissingPropertyID)

		default:
			h.logger.Error("GET /properties/{id}/time-slots - Failed to get time slots: property_id=%s, error=%v", propertyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /properties/{id}/time-slots - Time slots retrieved successfully: property_id=%s, count=%d",
		propertyID, len(result.TimeSlots))
	handlers.RespondJSON(w, http.StatusOK, result)
}
