package book_time_slot

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RealtyService/internal/api/handlers"
	"github.com/m04kA/SMC-RealtyService/internal/api/middleware"
	"github.com/m04kA/SMC-RealtyService/internal/service/timeslots/models"
	bookTimeSlot "github.com/m04kA/SMC-RealtyService/internal/usecase/book_time_slot"
)

const (
	msgUnauthorized     = "требуется авторизация"
	msgMissingSlotID    = "ID слота обязателен"
	msgSlotNotFound     = "слот показа не найден"
	msgSlotNotAvailable = "в выбранном слоте нет свободных мест"
	msgSlotInPast       = "показ уже начался или прошел"
)

type Handler struct {
	useCase BookTimeSlotUseCase
	logger  Logger
}

func NewHandler(useCase BookTimeSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/time-slots/{slotId}/book
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /time-slots/{id}/book - Unauthorized request")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	slotID := mux.Vars(r)["slotId"]
	if slotID == "" {
		h.logger.Warn("POST /time-slots/{id}/book - Missing slot ID")
		handlers.RespondBadRequest(w, msgMissingSlotID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &bookTimeSlot.Request{SlotID: slotID, UserID: userID})
	if err != nil {
		switch {
		case errors.Is(err, bookTimeSlot.ErrTimeSlotNotFound):
			h.logger.Warn("POST /time-slots/{id}/book - Time slot not found: slot_id=%s", slotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, bookTimeSlot.ErrSlotNotAvailable):
			h.logger.Warn("POST /time-slots/{id}/book - Slot not available: slot_id=%s, user_id=%s", slotID, userID)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, bookTimeSlot.ErrInvalidDate):
			h.logger.Warn("POST /time-slots/{id}/book - Slot in the past: slot_id=%s", slotID)
			handlers.RespondBadRequest(w, msgSlotInPast)

		case errors.Is(err, bookTimeSlot.ErrInvalidInput):
			h.logger.Warn("POST /time-slots/{id}/book - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgMissingSlotID)

		default:
			h.logger.Error("POST /time-slots/{id}/book - Failed to book time slot: slot_id=%s, user_id=%s, error=%v",
				slotID, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /time-slots/{id}/book - Time slot booked successfully: slot_id=%s, user_id=%s, attendees=%d/%d",
		slotID, userID, result.Slot.CurrentAttendees, result.Slot.MaxAttendees)
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainTimeSlot(result.Slot))
}
