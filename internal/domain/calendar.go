package domain

import "github.com/m04kA/SMC-RealtyService/pkg/types"

// DayCell ячейка месячной сетки календаря
// Пересчитывается при каждой навигации по месяцам и нигде не хранится
type DayCell struct {
	Date      types.Date
	IsPadding bool       // День соседнего месяца
	Slots     []TimeSlot // Слоты этого дня в исходном порядке, у padding-ячеек всегда пусто
}
