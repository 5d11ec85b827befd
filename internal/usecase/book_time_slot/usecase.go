package book_time_slot

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RealtyService/internal/domain"
	timeSlotRepo "github.com/m04kA/SMC-RealtyService/internal/infra/storage/timeslot"
)

// UseCase use case записи на показ
type UseCase struct {
	timeSlotRepo TimeSlotRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(timeSlotRepo TimeSlotRepository, txManager TransactionManager, logger Logger) *UseCase {
	return &UseCase{
		timeSlotRepo: timeSlotRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник текущего времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute записывает участника на показ
// Использует сериализуемую транзакцию и блокировку строки слота, чтобы
// параллельные записи не превысили вместимость
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookTimeSlot: slot=%s, user=%s", req.SlotID, req.UserID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookTimeSlot: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	var result *domain.TimeSlot

	// 2. Выполняем запись в транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Получаем слот с блокировкой (FOR UPDATE)
		slot, err := uc.timeSlotRepo.GetByID(txCtx, req.SlotID)
		if err != nil {
			if errors.Is(err, timeSlotRepo.ErrTimeSlotNotFound) {
				uc.logger.Warn("BookTimeSlot: slot id=%s not found", req.SlotID)
				return ErrTimeSlotNotFound
			}
			uc.logger.Error("BookTimeSlot: failed to get slot id=%s: %v", req.SlotID, err)
			return fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
		}

		// 2.2. Показ не должен начаться
		if err := validateNotStarted(slot, now); err != nil {
			uc.logger.Warn("BookTimeSlot: %v", err)
			return err
		}

		// 2.3. Проверяем наличие мест
		if !slot.IsAvailable() {
			uc.logger.Warn("BookTimeSlot: slot id=%s not available, %d/%d spots taken, booked=%t",
				slot.ID, slot.CurrentAttendees, slot.MaxAttendees, slot.IsBooked)
			return ErrSlotNotAvailable
		}

		// 2.4. Занимаем место
		slot.RegisterAttendee()

		if err := uc.timeSlotRepo.UpdateAttendance(txCtx, slot.ID, slot.CurrentAttendees, slot.IsBooked); err != nil {
			uc.logger.Error("BookTimeSlot: failed to update attendance for slot id=%s: %v", slot.ID, err)
			return fmt.Errorf("%w: failed to update attendance: %v", ErrInternal, err)
		}

		result = slot
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("BookTimeSlot: user=%s registered for slot id=%s, %d/%d spots taken, booked=%t",
		req.UserID, result.ID, result.CurrentAttendees, result.MaxAttendees, result.IsBooked)

	return &Response{Slot: result}, nil
}
