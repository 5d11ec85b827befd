package get_available_slots

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-RealtyService/internal/domain"
	"github.com/m04kA/SMC-RealtyService/pkg/types"
)

// UseCase use case для получения доступных слотов показа на дату
type UseCase struct {
	timeSlotRepo TimeSlotRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(timeSlotRepo TimeSlotRepository, logger Logger) *UseCase {
	return &UseCase{
		timeSlotRepo: timeSlotRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник текущего времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: property=%s, date=%s", req.PropertyID, req.Date)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Дата не должна быть в прошлом
	now := uc.timeProvider.Now()
	today := types.NewDate(now)

	if err := validateDate(req.Date, today); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	// 3. Слоты объекта на эту дату
	slots, err := uc.timeSlotRepo.GetByPropertyWithFilter(ctx, domain.TimeSlotsFilter{
		PropertyID:    req.PropertyID,
		StartDate:     &req.Date,
		EndDate:       &req.Date,
		OnlyAvailable: true,
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get time slots: %v", err)
		return nil, fmt.Errorf("%w: failed to get time slots: %v", ErrInternal, err)
	}

	// 4. Свободные слоты по времени начала
	available := filterAvailableSlots(slots, req.Date, today, types.NewTimeString(now))

	uc.logger.Info("GetAvailableSlots: found %d available slots for property=%s, date=%s",
		len(available), req.PropertyID, req.Date)

	return &Response{
		PropertyID: req.PropertyID,
		Date:       req.Date,
		Slots:      available,
	}, nil
}
