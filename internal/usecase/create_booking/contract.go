package create_booking

import (
	"context"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_slots"
)

// SlotsUseCase проверка даты и получение слотов с учетом расписания
type SlotsUseCase interface {
	Execute(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error)
}

// BookingClient внешний сервис, который создает бронирование
type BookingClient interface {
	CreateBooking(ctx context.Context, req *domain.BookingRequest) (*domain.BookingConfirmation, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
