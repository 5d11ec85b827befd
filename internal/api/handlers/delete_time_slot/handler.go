package delete_time_slot

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RealtyService/internal/api/handlers"
	"github.com/m04kA/SMC-RealtyService/internal/api/middleware"
	"github.com/m04kA/SMC-RealtyService/internal/service/timeslots"
)

const (
	msgUnauthorized  = "требуется авторизация"
	msgMissingSlotID = "ID слота обязателен"
	msgSlotNotFound  = "слот показа не найден"
	msgAccessDenied  = "удалить слот может только создавший его агент"
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

// Handle DELETE /api/v1/time-slots/{slotId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	agentID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /time-slots/{id} - Unauthorized request")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	slotID := mux.Vars(r)["slotId"]
	if slotID == "" {
		h.logger.Warn("DELETE /time-slots/{id} - Missing slot ID")
		handlers.RespondBadRequest(w, msgMissingSlotID)
		return
	}

	if err := h.service.Delete(r.Context(), slotID, agentID); err != nil {
		switch {
		case errors.Is(err, timeslots.ErrTimeSlotNotFound):
			h.logger.Warn("DELETE /time-slots/{id} - Time slot not found: slot_id=%s", slotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, timeslots.ErrAccessDenied):
			h.logger.Warn("DELETE /time-slots/{id} - Access denied: slot_id=%s, agent_id=%s", slotID, agentID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, timeslots.ErrInvalidInput):
			h.logger.Warn("DELETE /time-slots/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgMissingSlotID)

		default:
			h.logger.Error("DELETE /time-slots/{id} - Failed to delete time slot: slot_id=%s, agent_id=%s, error=%v",
				slotID, agentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /time-slots/{id} - Time slot deleted successfully: slot_id=%s, agent_id=%s", slotID, agentID)
	handlers.RespondNoContent(w)
}
