package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInvalidCustomer возвращается при некорректных контактных данных
	ErrInvalidCustomer = errors.New("create_booking: invalid customer info")

	// ErrBusinessNotFound возвращается, когда бизнес не найден во внешнем API
	ErrBusinessNotFound = errors.New("create_booking: business not found")

	// ErrDateNotBookable возвращается, когда дату нельзя забронировать
	ErrDateNotBookable = errors.New("create_booking: date is not bookable")

	// ErrSlotNotAvailable возвращается, когда выбранный слот недоступен
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrBookingRejected возвращается, когда внешний API отклонил бронирование
	ErrBookingRejected = errors.New("create_booking: booking rejected")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
