package book_time_slot

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-RealtyService/internal/domain"
	"github.com/m04kA/SMC-RealtyService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.SlotID == "" {
		return fmt.Errorf("%w: slotID is required", ErrInvalidInput)
	}
	if req.UserID == "" {
		return fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}
	return nil
}

// validateNotStarted проверяет, что показ еще не начался
func validateNotStarted(slot *domain.TimeSlot, now time.Time) error {
	today := types.NewDate(now)

	if slot.Date.Before(today) {
		return fmt.Errorf("%w: slot date %s", ErrInvalidDate, slot.Date)
	}
	if slot.Date == today && slot.StartTime.IsBefore(types.NewTimeString(now)) {
		return fmt.Errorf("%w: slot started at %s", ErrInvalidDate, slot.StartTime)
	}
	return nil
}
