package get_calendar_grid

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RealtyService/internal/api/handlers"
	getCalendarGrid "github.com/m04kA/SMC-RealtyService/internal/usecase/get_calendar_grid"
)

const (
	msgInvalidPropertyID = "некорректный ID объекта"
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	useCase GetCalendarGridUseCase
	logger  Logger
	now     func() time.Time
}

func NewHandler(useCase GetCalendarGridUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
		now:     time.Now,
	}
}

// Handle GET /api/v1/properties/{propertyId}/calendar
// Query params: date (optional, YYYY-MM-DD, любой день нужного месяца)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	propertyID := mux.Vars(r)["propertyId"]
	if propertyID == "" {
		h.logger.Warn("GET /properties/{id}/calendar - Missing property ID")
		handlers.RespondBadRequest(w, msgInvalidPropertyID)
		return
	}

	useCaseReq, err := ToUseCaseRequest(propertyID, r.URL.Query().Get("date"), h.now())
	if err != nil {
		h.logger.Warn("GET /properties/{id}/calendar - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getCalendarGrid.ErrInvalidInput):
			h.logger.Warn("GET /properties/{id}/calendar - Invalid input: property_id=%s, error=%v", propertyID, err)
			handlers.RespondBadRequest(w, msgInvalidPropertyID)

		default:
			h.logger.Error("GET /properties/{id}/calendar - Failed to build calendar: property_id=%s, error=%v",
				propertyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /properties/{id}/calendar - Calendar built successfully: property_id=%s, month=%s",
		propertyID, result.Month)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
