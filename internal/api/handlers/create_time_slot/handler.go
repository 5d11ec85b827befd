package create_time_slot

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
	msgMissingPropertyID  = "ID объекта обязателен"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные слота"
	msgInvalidTimeRange   = "время окончания должно быть позже времени начала"
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

// Handle POST /api/v1/properties/{propertyId}/time-slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	agentID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /properties/{id}/time-slots - Unauthorized request")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	propertyID := mux.Vars(r)["propertyId"]
	if propertyID == "" {
		h.logger.Warn("POST /properties/{id}/time-slots - Missing property ID")
		handlers.RespondBadRequest(w, msgMissingPropertyID)
		return
	}

	var req models.CreateTimeSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /properties/{id}/time-slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.AgentID = agentID
	req.PropertyID = propertyID

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, timeslots.ErrTimeSlotConflict):
			h.logger.Warn("POST /properties/{id}/time-slots - Conflict: property_id=%s, date=%s, time=%s-%s",
				propertyID, req.Date, req.StartTime, req.EndTime)
			handlers.RespondConflict(w, msgTimeSlotConflict)

		case errors.Is(err, timeslots.ErrInvalidTimeRange):
			h.logger.Warn("POST /properties/{id}/time-slots - Invalid time range: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, timeslots.ErrInvalidInput):
			h.logger.Warn("POST /properties/{id}/time-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /properties/{id}/time-slots - Failed to create time slot: property_id=%s, agent_id=%s, error=%v",
				propertyID, agentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /properties/{id}/time-slots - Time slot created successfully: slot_id=%s, property_id=%s, agent_id=%s",
		result.ID, propertyID, agentID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
