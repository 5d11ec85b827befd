package timeslots

import (
	"context"

	"github.com/m04kA/SMC-RealtyService/internal/domain"
)

// TimeSlotRepository интерфейс репозитория слотов показов
type TimeSlotRepository interface {
	Create(ctx context.Context, slot *domain.TimeSlot) (*domain.TimeSlot, error)
	GetByID(ctx context.Context, id string) (*domain.TimeSlot, error)
	GetByPropertyWithFilter(ctx context.Context, filter domain.TimeSlotsFilter) ([]*domain.TimeSlot, error)
	Update(ctx context.Context, slot *domain.TimeSlot) error
	Delete(ctx context.Context, id string) error
}

// IDGenerator генератор идентификаторов слотов
type IDGenerator interface {
	NewID() string
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
