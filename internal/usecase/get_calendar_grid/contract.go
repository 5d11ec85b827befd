package get_calendar_grid

import (
	"context"

	"github.com/m04kA/SMC-RealtyService/internal/domain"
)

// TimeSlotRepository интерфейс репозитория слотов показов
type TimeSlotRepository interface {
	GetByPropertyWithFilter(ctx context.Context, filter domain.TimeSlotsFilter) ([]*domain.TimeSlot, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
