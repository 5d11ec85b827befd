package get_time_slot

import (
	"context"

	"github.com/m04kA/SMC-RealtyService/internal/service/timeslots/models"
)

type TimeSlotService interface {
	GetByID(ctx context.Context, id string) (*models.TimeSlotResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
