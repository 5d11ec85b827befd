package get_property_time_slots

import (
	"context"

	"github.com/m04kA/SMC-RealtyService/internal/service/timeslots/models"
)

type TimeSlotService interface {
	GetByProperty(ctx context.Context, propertyID string) (*models.TimeSlotListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
