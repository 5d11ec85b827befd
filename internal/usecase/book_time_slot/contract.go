package book_time_slot

import (
	"context"
	"time"

	"github.com/m04kA/SMC-RealtyService/internal/domain"
)

// TimeSlotRepository интерфейс репозитория слотов показов
type TimeSlotRepository interface {
	GetByID(ctx context.Context, id string) (*domain.TimeSlot, error)
	UpdateAttendance(ctx context.Context, id string, currentAttendees int, isBooked bool) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
