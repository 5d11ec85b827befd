package update_time_slot

import (
	"context"

	"github.com/m04kA/SMC-RealtyService/internal/service/timeslots/models"
)

type TimeSlotService interface {
	Update(ctx context.Context, id string, req *models.UpdateTimeSlotRequest) (*models.TimeSlotResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
