package timeslots

import "errors"

var (
	// ErrTimeSlotNotFound возвращается, когда слот не найден
	ErrTimeSlotNotFound = errors.New("time slot not found")

	// ErrAccessDenied возвращается, когда агент пытается изменить чужой слот
	ErrAccessDenied = errors.New("access denied")

	// ErrTimeSlotConflict возвращается, когда слот пересекается с другим слотом объекта
	ErrTimeSlotConflict = errors.New("time slot overlaps an existing slot")

	// ErrSlotBooked возвращается при попытке изменить забронированный слот
	ErrSlotBooked = errors.New("time slot is already booked")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidTimeRange возвращается при некорректном временном диапазоне
	ErrInvalidTimeRange = errors.New("invalid time range")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
