package followerservice

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("followerservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("followerservice client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что FollowerService недоступен и количество подписчиков следует считать нулевым
	ErrServiceDegraded = errors.New("followerservice unavailable: graceful degradation applied")
)
