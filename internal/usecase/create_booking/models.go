package create_booking

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	BusinessID string           // UUID бизнеса
	ServiceID  string           // ID услуги
	Date       time.Time        // Дата бронирования (без времени)
	StartTime  types.TimeString // Время начала слота (например, "10:00")
	Customer   domain.CustomerInfo
}

// Response модель ответа с подтвержденным бронированием
type Response struct {
	ID            string
	BusinessID    string
	ServiceID     string
	ServiceName   string
	Date          string
	StartTime     types.TimeString
	EndTime       types.TimeString
	CustomerEmail string
}
