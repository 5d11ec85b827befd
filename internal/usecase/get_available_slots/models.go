package get_available_slots

import (
	"github.com/m04kA/SMC-RealtyService/internal/domain"
	"github.com/m04kA/SMC-RealtyService/pkg/types"
)

// Request модель запроса на получение доступных слотов показа
type Request struct {
	PropertyID string     // ID объекта недвижимости
	Date       types.Date // Дата показа
}

// Response модель ответа со списком доступных слотов
type Response struct {
	PropertyID string
	Date       types.Date
	Slots      []*domain.TimeSlot // Упорядочены по времени начала
}
