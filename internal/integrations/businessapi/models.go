package businessapi

import (
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// Business модель бизнеса из публичного API
type Business struct {
	ID           string         `json:"id"`
	BusinessName string         `json:"business_name"`
	Description  string         `json:"description"`
	Services     []Service      `json:"services"`
	Availability []Availability `json:"availability"`
	BlockedDates []string       `json:"blocked_dates"`
}

// Service услуга бизнеса
type Service struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Duration    int      `json:"duration"` // в минутах
	Price       *float64 `json:"price"`
}

// Availability расписание одного дня недели (0 = понедельник)
type Availability struct {
	Day       int              `json:"day"`
	StartTime types.TimeString `json:"start_time"`
	EndTime   types.TimeString `json:"end_time"`
	Enabled   bool             `json:"enabled"`
}

// Slot слот на выбранную дату
type Slot struct {
	StartTime types.TimeString `json:"start_time"`
	EndTime   types.TimeString `json:"end_time"`
	Available bool             `json:"available"`
}

// CreateBookingRequest тело запроса на бронирование
type CreateBookingRequest struct {
	BusinessID    string           `json:"business_id"`
	ServiceID     string           `json:"service_id"`
	Date          string           `json:"date"`
	StartTime     types.TimeString `json:"start_time"`
	CustomerName  string           `json:"customer_name"`
	CustomerEmail string           `json:"customer_email"`
	CustomerPhone string           `json:"customer_phone"`
}

// Booking подтвержденное бронирование
type Booking struct {
	ID            string           `json:"id"`
	ServiceName   string           `json:"service_name"`
	Date          string           `json:"date"`
	StartTime     types.TimeString `json:"start_time"`
	EndTime       types.TimeString `json:"end_time"`
	CustomerEmail string           `json:"customer_email"`
}

// ErrorResponse модель ошибки публичного API
type ErrorResponse struct {
	Detail string `json:"detail"`
}

func (b *Business) toDomain() *domain.Business {
	result := &domain.Business{
		ID:          b.ID,
		Name:        b.BusinessName,
		Description: b.Description,
		Services:    make([]domain.Service, 0, len(b.Services)),
		Availability: domain.BusinessAvailabilityConfig{
			WeeklyAvailability: make([]domain.DayAvailability, 0, len(b.Availability)),
			BlockedDates:       append([]string(nil), b.BlockedDates...),
		},
	}

	for _, s := range b.Services {
		result.Services = append(result.Services, domain.Service{
			ID:              s.ID,
			Name:            s.Name,
			Description:     s.Description,
			DurationMinutes: s.Duration,
			Price:           s.Price,
		})
	}

	for _, a := range b.Availability {
		result.Availability.WeeklyAvailability = append(result.Availability.WeeklyAvailability, domain.DayAvailability{
			DayIndex:  a.Day,
			StartTime: a.StartTime,
			EndTime:   a.EndTime,
			Enabled:   a.Enabled,
		})
	}

	return result
}

func slotsToDomain(slots []Slot) []domain.Slot {
	result := make([]domain.Slot, 0, len(slots))
	for _, s := range slots {
		result = append(result, domain.Slot{
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
			Available: s.Available,
		})
	}
	return result
}

func (b *Booking) toDomain() *domain.BookingConfirmation {
	return &domain.BookingConfirmation{
		ID:            b.ID,
		ServiceName:   b.ServiceName,
		Date:          b.Date,
		StartTime:     b.StartTime,
		EndTime:       b.EndTime,
		CustomerEmail: b.CustomerEmail,
	}
}
