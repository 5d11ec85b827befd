package get_calendar_grid

import (
	"context"

	getCalendarGrid "github.com/m04kA/SMC-RealtyService/internal/usecase/get_calendar_grid"
)

type GetCalendarGridUseCase interface {
	Execute(ctx context.Context, req *getCalendarGrid.Request) (*getCalendarGrid.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
