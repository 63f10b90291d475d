package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date             string          `json:"date"`
	BusinessID       string          `json:"businessId"`
	ServiceID        string          `json:"serviceId"`
	Slots            []AvailableSlot `json:"slots"`
	NoAvailableSlots bool            `json:"noAvailableSlots"`
}

// AvailableSlot модель временного слота
type AvailableSlot struct {
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	DurationMinutes int    `json:"durationMinutes"`
	Available       bool   `json:"available"`
}

// NotBookableResponse ответ для даты, которую нельзя забронировать
type NotBookableResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Date    string `json:"date"`
	Reason  string `json:"reason"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			StartTime:       slot.StartTime.String(),
			EndTime:         slot.EndTime.String(),
			DurationMinutes: slot.DurationMinutes(),
			Available:       slot.Available,
		}
	}

	return &AvailableSlotsResponse{
		Date:             resp.Date.Format(domain.DateFormat),
		BusinessID:       resp.BusinessID,
		ServiceID:        resp.ServiceID,
		Slots:            slots,
		NoAvailableSlots: resp.NoAvailableSlots,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(businessID, serviceID, dateStr string) (*getAvailableSlots.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		BusinessID: businessID,
		ServiceID:  serviceID,
		Date:       date,
	}, nil
}
