package availability

import "errors"

var (
	// ErrCacheMiss возвращается, когда конфигурации нет в кэше
	ErrCacheMiss = errors.New("availability.cache: miss")

	// ErrCacheOperation возвращается при ошибках Redis
	ErrCacheOperation = errors.New("availability.cache: operation failed")

	// ErrDecode возвращается при поврежденном значении в кэше
	ErrDecode = errors.New("availability.cache: failed to decode value")
)
