package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/integrations/businessapi"
	getAvailableSlots "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_slots"
)

// UseCase use case для создания бронирования.
// Перед отправкой во внешний API повторно проверяет дату и слот.
type UseCase struct {
	slots         SlotsUseCase
	bookingClient BookingClient
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slots SlotsUseCase,
	bookingClient BookingClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		slots:         slots,
		bookingClient: bookingClient,
		logger:        logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: business=%s, service=%s, date=%s, time=%s",
		req.BusinessID, req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем дату и получаем слоты, ограниченные расписанием
	slotsResp, err := uc.slots.Execute(ctx, &getAvailableSlots.Request{
		BusinessID: req.BusinessID,
		ServiceID:  req.ServiceID,
		Date:       req.Date,
	})
	if err != nil {
		var notBookable *getAvailableSlots.NotBookableError

		switch {
		case errors.As(err, &notBookable):
			uc.logger.Warn("CreateBooking: date %s is not bookable: %s", notBookable.Date, notBookable.Reason)
			return nil, fmt.Errorf("%w: %s (%s)", ErrDateNotBookable, notBookable.Date, notBookable.Reason)
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		case errors.Is(err, getAvailableSlots.ErrBusinessNotFound):
			uc.logger.Warn("CreateBooking: business id=%s not found", req.BusinessID)
			return nil, ErrBusinessNotFound
		default:
			uc.logger.Error("CreateBooking: failed to get slots: %v", err)
			return nil, fmt.Errorf("%w: failed to get slots: %v", ErrInternal, err)
		}
	}

	// 3. Выбранный слот должен быть среди доступных
	slot, ok := availability.NewSlotView(slotsResp.Slots).Find(req.StartTime.String())
	if !ok || !slot.Available {
		uc.logger.Warn("CreateBooking: slot %s is not available on %s", req.StartTime, req.Date.Format(domain.DateFormat))
		return nil, fmt.Errorf("%w: %s", ErrSlotNotAvailable, req.StartTime)
	}

	// 4. Отправляем бронирование во внешний API
	confirmation, err := uc.bookingClient.CreateBooking(ctx, &domain.BookingRequest{
		BusinessID: req.BusinessID,
		ServiceID:  req.ServiceID,
		Date:       slotsResp.Date,
		StartTime:  slot.StartTime,
		Customer:   req.Customer,
	})
	if err != nil {
		switch {
		case errors.Is(err, businessapi.ErrBookingRejected):
			uc.logger.Warn("CreateBooking: rejected by business API: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrBookingRejected, err)
		case errors.Is(err, businessapi.ErrBusinessNotFound):
			return nil, ErrBusinessNotFound
		default:
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s", confirmation.ID)

	// Конвертируем в response
	return &Response{
		ID:            confirmation.ID,
		BusinessID:    req.BusinessID,
		ServiceID:     req.ServiceID,
		ServiceName:   confirmation.ServiceName,
		Date:          confirmation.Date,
		StartTime:     confirmation.StartTime,
		EndTime:       confirmation.EndTime,
		CustomerEmail: confirmation.CustomerEmail,
	}, nil
}
