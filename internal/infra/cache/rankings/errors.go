package rankings

import "errors"

var (
	// ErrCacheMiss возвращается, когда снимка рейтинга нет в кэше или он устарел
	ErrCacheMiss = errors.New("rankings cache: miss")

	// ErrEncode возвращается при ошибке сериализации снимка
	ErrEncode = errors.New("rankings cache: failed to encode snapshot")

	// ErrDecode возвращается при ошибке разбора снимка
	ErrDecode = errors.New("rankings cache: failed to decode snapshot")

	// ErrRedis возвращается при ошибках обращения к Redis
	ErrRedis = errors.New("rankings cache: redis error")
)
