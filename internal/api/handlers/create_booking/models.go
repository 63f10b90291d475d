package create_booking

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	createBooking "github.com/m04kA/SMC-AvailabilityService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ServiceID   string       `json:"serviceId"`
	BookingDate string       `json:"bookingDate"` // "2025-10-15"
	StartTime   string       `json:"startTime"`   // "10:00"
	Customer    CustomerInfo `json:"customer"`
}

// CustomerInfo контактные данные клиента
type CustomerInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            string `json:"id"`
	BusinessID    string `json:"businessId"`
	ServiceID     string `json:"serviceId"`
	ServiceName   string `json:"serviceName"`
	BookingDate   string `json:"bookingDate"`
	StartTime     string `json:"startTime"`
	EndTime       string `json:"endTime"`
	CustomerEmail string `json:"customerEmail"`
}

// ErrInvalidDate и ErrInvalidTime различают ошибки парсинга запроса
var (
	ErrInvalidDate = errors.New("invalid booking date")
	ErrInvalidTime = errors.New("invalid start time")
)

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(businessID string) (*createBooking.Request, error) {
	// Парсим дату
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}

	// Парсим время
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTime, err)
	}

	return &createBooking.Request{
		BusinessID: businessID,
		ServiceID:  r.ServiceID,
		Date:       bookingDate,
		StartTime:  startTime,
		Customer: domain.CustomerInfo{
			Name:  r.Customer.Name,
			Email: r.Customer.Email,
			Phone: r.Customer.Phone,
		},
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:            resp.ID,
		BusinessID:    resp.BusinessID,
		ServiceID:     resp.ServiceID,
		ServiceName:   resp.ServiceName,
		BookingDate:   resp.Date,
		StartTime:     resp.StartTime.String(),
		EndTime:       resp.EndTime.String(),
		CustomerEmail: resp.CustomerEmail,
	}
}
