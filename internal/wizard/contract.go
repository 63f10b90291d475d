package wizard

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Backend внешний провайдер конфигурации бизнеса, слотов и бронирований
type Backend interface {
	GetBusiness(ctx context.Context, businessID string) (*domain.Business, error)
	GetSlots(ctx context.Context, businessID, serviceID string, date time.Time) ([]domain.Slot, error)
	CreateBooking(ctx context.Context, req *domain.BookingRequest) (*domain.BookingConfirmation, error)
}

// AvailabilitySource источник расписания и заблокированных дат бизнеса.
// Сервер проверяет даты по тому же источнику, поэтому мастер и сервер не расходятся.
type AvailabilitySource interface {
	GetConfig(ctx context.Context, businessID string) (*domain.BusinessAvailabilityConfig, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
