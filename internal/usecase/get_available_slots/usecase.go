package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/integrations/businessapi"
)

// UseCase use case для получения слотов на дату с серверной проверкой доступности
type UseCase struct {
	availabilityService AvailabilityService
	slotSource          SlotSource
	timeProvider        TimeProvider
	logger              Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	availabilityService AvailabilityService,
	slotSource SlotSource,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		availabilityService: availabilityService,
		slotSource:          slotSource,
		timeProvider:        timeProvider,
		logger:              logger,
	}
}

// Execute выполняет use case получения слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: business=%s, service=%s, date=%s",
		req.BusinessID, req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время и переносим дату в его часовой пояс
	now := uc.timeProvider.Now()
	date := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, now.Location())

	// 3. Получаем конфигурацию доступности
	cfg, err := uc.availabilityService.GetConfig(ctx, req.BusinessID)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get availability config: %v", err)
		return nil, fmt.Errorf("%w: failed to get availability config: %v", ErrInternal, err)
	}

	// 4. Проверяем, что дату можно забронировать
	decision := availability.Evaluate(date, cfg, now)
	if !decision.Bookable() {
		uc.logger.Info("GetAvailableSlots: date %s is not bookable: %s", decision.Date, decision.Reason)
		return nil, &NotBookableError{Date: decision.Date, Reason: decision.Reason}
	}

	// 5. Получаем слоты
	slots, err := uc.slotSource.GetSlots(ctx, req.BusinessID, req.ServiceID, date)
	if err != nil {
		if errors.Is(err, businessapi.ErrBusinessNotFound) {
			uc.logger.Warn("GetAvailableSlots: business id=%s not found", req.BusinessID)
			return nil, ErrBusinessNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get slots: %v", err)
		return nil, fmt.Errorf("%w: failed to get slots: %v", ErrInternal, err)
	}

	// 6. Ограничиваем слоты расписанием дня
	day, _ := cfg.Day(availability.DayIndex(date.Weekday()))
	slots = restrictSlots(slots, day, date, now)
	available := availability.FilterAvailableSlots(slots)

	uc.logger.Info("GetAvailableSlots: %d slots, %d available for business=%s, date=%s",
		len(slots), len(available), req.BusinessID, decision.Date)

	return &Response{
		BusinessID:       req.BusinessID,
		ServiceID:        req.ServiceID,
		Date:             date,
		Slots:            slots,
		AvailableSlots:   available,
		NoAvailableSlots: len(available) == 0,
	}, nil
}
