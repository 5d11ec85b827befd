package book_time_slot

import "github.com/m04kA/SMC-RealtyService/internal/domain"

// Request модель запроса на запись на показ
type Request struct {
	SlotID string // ID слота
	UserID string // ID пользователя (из заголовка X-User-ID)
}

// Response модель ответа с обновленным слотом
type Response struct {
	Slot *domain.TimeSlot
}
