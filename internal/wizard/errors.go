package wizard

import "errors"

var (
	// ErrInvalidTransition возвращается, когда действие недопустимо на текущем шаге
	ErrInvalidTransition = errors.New("wizard: action not allowed at current step")

	// ErrUnknownService возвращается, когда услуга не найдена у бизнеса
	ErrUnknownService = errors.New("wizard: unknown service")

	// ErrDateNotBookable возвращается при выборе недоступной даты
	ErrDateNotBookable = errors.New("wizard: date is not bookable")

	// ErrSlotsLoading возвращается при выборе слота до окончания загрузки
	ErrSlotsLoading = errors.New("wizard: slots are still loading")

	// ErrSlotsUnavailable возвращается, когда не удалось загрузить слоты
	ErrSlotsUnavailable = errors.New("wizard: failed to load slots")

	// ErrSuperseded возвращается, когда ответ устарел из-за более нового запроса
	ErrSuperseded = errors.New("wizard: request superseded by a newer one")

	// ErrSlotNotAvailable возвращается при выборе несуществующего или занятого слота
	ErrSlotNotAvailable = errors.New("wizard: slot is not available")

	// ErrInvalidCustomer возвращается при некорректных контактных данных
	ErrInvalidCustomer = errors.New("wizard: invalid customer details")

	// ErrSubmitInProgress возвращается при повторной отправке до получения ответа
	ErrSubmitInProgress = errors.New("wizard: booking submission in progress")

	// ErrBookingRejected возвращается, когда бэкенд отклонил бронирование
	ErrBookingRejected = errors.New("wizard: booking rejected")

	// ErrInvalidContainer возвращается при пустом идентификаторе контейнера
	ErrInvalidContainer = errors.New("wizard: container id is required")

	// ErrBusinessUnavailable возвращается, когда не удалось загрузить бизнес
	ErrBusinessUnavailable = errors.New("wizard: failed to load business")

	// ErrAvailabilityUnavailable возвращается, когда не удалось загрузить расписание бизнеса
	ErrAvailabilityUnavailable = errors.New("wizard: failed to load availability")
)
