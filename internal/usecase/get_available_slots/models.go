package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Request модель запроса на получение слотов
type Request struct {
	BusinessID string    // UUID бизнеса
	ServiceID  string    // ID услуги
	Date       time.Time // Дата (время суток игнорируется)
}

// Response модель ответа со слотами
type Response struct {
	BusinessID       string
	ServiceID        string
	Date             time.Time
	Slots            []domain.Slot // все слоты, недоступные отображаются неактивными
	AvailableSlots   []domain.Slot // слоты, которые можно выбрать
	NoAvailableSlots bool
}

// NotBookableError причина, по которой дату нельзя забронировать
type NotBookableError struct {
	Date   string
	Reason availability.Reason
}

func (e *NotBookableError) Error() string {
	return ErrDateNotBookable.Error() + ": " + e.Date + " (" + string(e.Reason) + ")"
}

func (e *NotBookableError) Unwrap() error {
	return ErrDateNotBookable
}
