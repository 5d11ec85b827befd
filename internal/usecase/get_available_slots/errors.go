package get_available_slots

import "errors"

var (
	// ErrInvalidDate возвращается, когда запрошенная дата уже прошла
	ErrInvalidDate = errors.New("invalid showing date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
