package get_calendar_grid

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-RealtyService/internal/domain"
)

// UseCase use case для получения календаря показов объекта на месяц
type UseCase struct {
	timeSlotRepo TimeSlotRepository
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(timeSlotRepo TimeSlotRepository, logger Logger) *UseCase {
	return &UseCase{
		timeSlotRepo: timeSlotRepo,
		logger:       logger,
	}
}

// Execute загружает слоты объекта за месяц и раскладывает их по сетке
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetCalendarGrid: property=%s, date=%s", req.PropertyID, req.Date)

	if req.PropertyID == "" {
		uc.logger.Warn("GetCalendarGrid: validation failed: empty property id")
		return nil, fmt.Errorf("%w: propertyID is required", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		uc.logger.Warn("GetCalendarGrid: validation failed: empty date")
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Слоты padding-ячеек все равно не отображаются, поэтому берем только текущий месяц
	first := req.Date.FirstOfMonth()
	last := req.Date.LastOfMonth()

	slots, err := uc.timeSlotRepo.GetByPropertyWithFilter(ctx, domain.TimeSlotsFilter{
		PropertyID: req.PropertyID,
		StartDate:  &first,
		EndDate:    &last,
	})
	if err != nil {
		uc.logger.Error("GetCalendarGrid: failed to get time slots for property=%s: %v", req.PropertyID, err)
		return nil, fmt.Errorf("%w: failed to get time slots: %v", ErrInternal, err)
	}

	days := BuildGrid(req.Date, slots)

	uc.logger.Info("GetCalendarGrid: built grid for property=%s, month=%s, slots=%d",
		req.PropertyID, first, len(slots))

	return &Response{
		PropertyID: req.PropertyID,
		Month:      first,
		Days:       days,
	}, nil
}
