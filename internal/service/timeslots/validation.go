package timeslots

import (
	"fmt"

	"github.com/m04kA/SMC-RealtyService/internal/domain"
	"github.com/m04kA/SMC-RealtyService/pkg/types"
)

// parseDate разбирает дату слота в формате YYYY-MM-DD
func parseDate(value string) (types.Date, error) {
	date, err := types.ParseDate(value)
	if err != nil {
		return types.Date{}, fmt.Errorf("%w: invalid date %q", ErrInvalidInput, value)
	}
	return date, nil
}

// parseTime разбирает время слота в формате HH:MM
func parseTime(field, value string) (types.TimeString, error) {
	t, err := types.NewTimeStringFromString(value)
	if err != nil {
		return types.TimeString{}, fmt.Errorf("%w: invalid %s %q", ErrInvalidInput, field, value)
	}
	return t, nil
}

// validateSlot проверяет временной диапазон и вместимость слота
func validateSlot(slot *domain.TimeSlot) error {
	if !slot.StartTime.IsBefore(slot.EndTime) {
		return fmt.Errorf("%w: start time %s must be before end time %s",
			ErrInvalidTimeRange, slot.StartTime, slot.EndTime)
	}

	if slot.MaxAttendees < domain.MinMaxAttendees || slot.MaxAttendees > domain.MaxAttendeesLimit {
		return fmt.Errorf("%w: maxAttendees must be between %d and %d",
			ErrInvalidInput, domain.MinMaxAttendees, domain.MaxAttendeesLimit)
	}

	if slot.MaxAttendees < slot.CurrentAttendees {
		return fmt.Errorf("%w: maxAttendees %d is less than current attendees %d",
			ErrInvalidInput, slot.MaxAttendees, slot.CurrentAttendees)
	}

	return nil
}

// findConflict возвращает первый слот из existing, пересекающийся со slot
// Сам slot (по ID) при проверке пропускается
func findConflict(slot *domain.TimeSlot, existing []*domain.TimeSlot) *domain.TimeSlot {
	for _, other := range existing {
		if other == nil || other.ID == slot.ID {
			continue
		}
		if slot.Overlaps(other) {
			return other
		}
	}
	return nil
}
