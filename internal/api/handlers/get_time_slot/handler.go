package get_time_slot

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RealtyService/internal/api/handlers"
	"github.com/m04kA/SMC-RealtyService/internal/service/timeslots"
)

const (
	msgMissingSlotID = "ID слота обязателен"
	msgSlotNotFound  = "слот показа не найден"
)

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

// Handle GET /api/v1/time-slots/{slotId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slotID := mux.Vars(r)["slotId"]
	if slotID == "" {
		h.logger.Warn("GET /time-slots/{id} - Missing slot ID")
		handlers.RespondBadRequest(w, msgMissingSlotID)
		return
	}

	result, err := h.service.GetByID(r.Context(), slotID)
	if err != nil {
		switch {
		case errors.Is(err, timeslots.ErrTimeSlotNotFound):
			h.logger.Warn("GET /time-slots/{id} - Time slot not found: slot_id=%s", slotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		default:
			h.logger.Error("GET /time-slots/{id} - Failed to get time slot: slot_id=%s, error=%v", slotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /time-slots/{id} - Time slot retrieved successfully: slot_id=%s", slotID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
