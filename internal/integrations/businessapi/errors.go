package businessapi

import "errors"

var (
	// ErrBusinessNotFound возвращается, когда бизнес не найден
	ErrBusinessNotFound = errors.New("business not found")

	// ErrBookingRejected возвращается, когда бэкенд отклонил бронирование
	ErrBookingRejected = errors.New("booking rejected")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("businessapi client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("businessapi client: invalid response")
)
