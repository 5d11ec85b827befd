package get_calendar_grid

import (
	"github.com/m04kA/SMC-RealtyService/internal/domain"
	"github.com/m04kA/SMC-RealtyService/pkg/types"
)

// GridRange возвращает первый и последний день, видимые в сетке месяца reference
func GridRange(reference types.Date) (types.Date, types.Date) {
	first := reference.FirstOfMonth()
	start := first.AddDays(-int(first.Weekday()))
	return start, start.AddDays(domain.CalendarGridCells - 1)
}

// BuildGrid строит сетку месяца, в который попадает reference
// Сетка всегда состоит из 42 ячеек (6 недель по 7 дней) и начинается с воскресенья:
// перед первым числом добавляются дни предыдущего месяца, после последнего - дни следующего.
// Каждая ячейка текущего месяца получает все слоты своей даты в порядке входного среза,
// ячейки соседних месяцев слотов не получают никогда.
// Функция чистая: входные данные не изменяются, слоты копируются.
func BuildGrid(reference types.Date, slots []*domain.TimeSlot) []domain.DayCell {
	first := reference.FirstOfMonth()
	last := reference.LastOfMonth()
	slotsByDate := groupSlotsByDate(slots)

	cells := make([]domain.DayCell, 0, domain.CalendarGridCells)

	// Дни предыдущего месяца до ближайшего воскресенья
	for i := int(first.Weekday()); i > 0; i-- {
		cells = append(cells, paddingCell(first.AddDays(-i)))
	}

	// Дни текущего месяца
	for day := first; !day.After(last); day = day.AddDays(1) {
		daySlots := slotsByDate[day]
		if daySlots == nil {
			daySlots = []domain.TimeSlot{}
		}
		cells = append(cells, domain.DayCell{
			Date:      day,
			IsPadding: false,
			Slots:     daySlots,
		})
	}

	// Дни следующего месяца до 42 ячеек
	for day := last.AddDays(1); len(cells) < domain.CalendarGridCells; day = day.AddDays(1) {
		cells = append(cells, paddingCell(day))
	}

	return cells
}

// groupSlotsByDate раскладывает слоты по датам, сохраняя относительный порядок
func groupSlotsByDate(slots []*domain.TimeSlot) map[types.Date][]domain.TimeSlot {
	result := make(map[types.Date][]domain.TimeSlot)
	for _, slot := range slots {
		if slot == nil {
			continue
		}
		result[slot.Date] = append(result[slot.Date], *slot)
	}
	return result
}

func paddingCell(date types.Date) domain.DayCell {
	return domain.DayCell{
		Date:      date,
		IsPadding: true,
		Slots:     []domain.TimeSlot{},
	}
}
