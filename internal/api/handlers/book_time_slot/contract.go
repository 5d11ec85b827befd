package book_time_slot

import (
	"context"

	bookTimeSlot "github.com/m04kA/SMC-RealtyService/internal/usecase/book_time_slot"
)

type BookTimeSlotUseCase interface {
	Execute(ctx context.Context, req *bookTimeSlot.Request) (*bookTimeSlot.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
