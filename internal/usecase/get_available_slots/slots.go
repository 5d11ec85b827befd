package get_available_slots

import (
	"sort"

	"github.com/m04kA/SMC-RealtyService/internal/domain"
	"github.com/m04kA/SMC-RealtyService/pkg/types"
)

// filterAvailableSlots оставляет слоты, на которые еще можно записаться
// Слот доступен, если он не забронирован и в нем есть свободные места.
// Для сегодняшней даты дополнительно отбрасываются уже начавшиеся слоты.
// Результат упорядочен по времени начала, при равенстве сохраняется входной порядок.
func filterAvailableSlots(slots []*domain.TimeSlot, date types.Date, today types.Date, now types.TimeString) []*domain.TimeSlot {
	result := make([]*domain.TimeSlot, 0, len(slots))

	for _, slot := range slots {
		if slot == nil || slot.Date != date || !slot.IsAvailable() {
			continue
		}
		if date == today && slot.StartTime.IsBefore(now) {
			continue
		}
		result = append(result, slot)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].StartTime.IsBefore(result[j].StartTime)
	})

	return result
}
