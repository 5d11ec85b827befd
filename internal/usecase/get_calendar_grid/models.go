package get_calendar_grid

import (
	"github.com/m04kA/SMC-RealtyService/internal/domain"
	"github.com/m04kA/SMC-RealtyService/pkg/types"
)

// Request модель запроса календаря показов объекта
type Request struct {
	PropertyID string     // ID объекта недвижимости
	Date       types.Date // Любая дата нужного месяца
}

// Response модель ответа с сеткой месяца
type Response struct {
	PropertyID string
	Month      types.Date       // Первое число месяца
	Days       []domain.DayCell // Ровно 42 ячейки
}
