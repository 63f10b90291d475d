package wizard

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Step шаг мастера бронирования
type Step int

const (
	StepSelectingService Step = iota
	StepSelectingDate
	StepSelectingTime
	StepEnteringDetails
	StepConfirmed
)

func (s Step) String() string {
	switch s {
	case StepSelectingService:
		return "selecting_service"
	case StepSelectingDate:
		return "selecting_date"
	case StepSelectingTime:
		return "selecting_time"
	case StepEnteringDetails:
		return "entering_details"
	case StepConfirmed:
		return "confirmed"
	default:
		return "unknown"
	}
}

// State снимок состояния мастера, безопасный для чтения вне блокировки
type State struct {
	Step         Step
	Service      *domain.Service
	Date         *time.Time
	Month        time.Time
	Slots        availability.SlotView
	SlotsLoading bool
	Slot         *domain.Slot
	Customer     domain.CustomerInfo
	Submitting   bool
	Confirmation *domain.BookingConfirmation
	LastError    error
}

// NoAvailableSlots true, когда слоты загружены, но выбрать нечего
func (s State) NoAvailableSlots() bool {
	return s.Step == StepSelectingTime && !s.SlotsLoading && s.Slots.IsEmpty()
}
