package update_time_slot

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RealtyService/internal/api/handlers"
	"github.com/m04kA/SMC-RealtyService/internal/api/middleware"
	"github.com/m04kA/SMC-RealtyService/internal/service/timeslots"
	"github.com/m04kA/SMC-RealtyService/internal/service/timeslots/models"
)

const (
	msgUnauthorized       = "требуется авторизация"
	msgMissingSlotID      = "ID слота обязателен"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные слота"
	msgInvalidTimeRange   = "время окончания должно быть позже времени начала"
	msgSlotNotFound       = "слот показа не найден"
	msgAccessDenied       = "изменять слот может только создавший его агент"
	msgSlotBooked         = "забронированный слот нельзя изменить"
	msgTimeSlotConflict   = "слот пересекается с существующим слотом объекта"
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

// Handle PUT /api/v1/time-slots/{slotId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	agentID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /time-slots/{id} - Unauthorized request")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	slotID := mux.Vars(r)["slotId"]
	if slotID == "" {
		h.logger.Warn("PUT /time-slots/{id} - Missing slot ID")
		handlers.RespondBadRequest(w, msgMissingSlotID)
		return
	}

	var req models.UpdateTimeSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /time-slots/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.AgentID = agentID

	result, err := h.service.Update(r.Context(), slotID, &req)
	if err != nil {
		switch {
		case errors.Is(err, timeslots.ErrTimeSlotNotFound):
			h.logger.Warn("PUT /time-slots/{id} - Time slot not found: slot_id=%s", slotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, timeslots.ErrAccessDenied):
			h.logger.Warn("PUT /time-slots/{id} - Access denied: slot_id=%s, agent_id=%s", slotID, agentID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, timeslots.ErrSlotBooked):
			h.logger.Warn("PUT /time-slots/{id} - Slot already booked: slot_id=%s", slotID)
			handlers.RespondConflict(w, msgSlotBooked)

		case errors.Is(err, timeslots.ErrTimeSlotConflict):
			h.logger.Warn("PUT /time-slots/{id} - Conflict: slot_id=%s, error=%v", slotID, err)
			handlers.RespondConflict(w, msgTimeSlotConflict)

		case errors.Is(err, timeslots.ErrInvalidTimeRange):
			h.logger.Warn("PUT /time-slots/{id} - Invalid time range: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, timeslots.ErrInvalidInput):
			h.logger.Warn("PUT /time-slots/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /time-slots/{id} - Failed to update time slot: slot_id=%s, agent_id=%s, error=%v",
				slotID, agentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /time-slots/{id} - Time slot updated successfully: slot_id=%s, agent_id=%s", slotID, agentID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
