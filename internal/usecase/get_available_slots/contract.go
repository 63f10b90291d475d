package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// AvailabilityService источник конфигурации доступности бизнеса
type AvailabilityService interface {
	GetConfig(ctx context.Context, businessID string) (*domain.BusinessAvailabilityConfig, error)
}

// SlotSource источник слотов на дату (публичный API бизнесов)
type SlotSource interface {
	GetSlots(ctx context.Context, businessID, serviceID string, date time.Time) ([]domain.Slot, error)
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
