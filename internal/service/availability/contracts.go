package availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// AvailabilityRepository интерфейс репозитория расписания
type AvailabilityRepository interface {
	GetConfig(ctx context.Context, businessID string) (*domain.BusinessAvailabilityConfig, error)
	ReplaceWeeklyAvailability(ctx context.Context, businessID string, days []domain.DayAvailability) error
	AddBlockedDate(ctx context.Context, businessID string, date string) error
	RemoveBlockedDate(ctx context.Context, businessID string, date string) error
}

// ConfigCache интерфейс версионированного кэша конфигурации
type ConfigCache interface {
	Version(ctx context.Context, businessID string) (int64, error)
	Get(ctx context.Context, businessID string, version int64) (*domain.BusinessAvailabilityConfig, error)
	Set(ctx context.Context, businessID string, version int64, cfg *domain.BusinessAvailabilityConfig) error
	Invalidate(ctx context.Context, businessID string) error
}

// TxManager интерфейс менеджера транзакций
type TxManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// CacheMetrics учет попаданий в кэш
type CacheMetrics interface {
	ObserveCache(result string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени в заданном часовом поясе
type RealTimeProvider struct {
	Location *time.Location
}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	if p.Location == nil {
		return time.Now()
	}
	return time.Now().In(p.Location)
}
