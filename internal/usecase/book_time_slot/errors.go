package book_time_slot

import "errors"

var (
	// ErrTimeSlotNotFound возвращается, когда слот не найден
	ErrTimeSlotNotFound = errors.New("book_time_slot: time slot not found")

	// ErrSlotNotAvailable возвращается, когда слот забронирован или в нем не осталось мест
	ErrSlotNotAvailable = errors.New("book_time_slot: slot is not available")

	// ErrInvalidDate возвращается, когда слот уже начался или прошел
	ErrInvalidDate = errors.New("book_time_slot: slot is in the past")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("book_time_slot: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("book_time_slot: internal error")
)
