package wizard

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/sequencer"
)

// Wizard состояние одного экземпляра виджета бронирования.
// Все переходы выполняются под мьютексом, запросы к бэкенду - без него.
type Wizard struct {
	mu sync.Mutex

	containerID  string
	business     *domain.Business
	backend      Backend
	source       AvailabilitySource
	timeProvider TimeProvider
	logger       Logger
	slotSeq      *sequencer.Sequencer

	// config текущее расписание; значение не изменяется, при обновлении заменяется указатель
	config *domain.BusinessAvailabilityConfig

	step         Step
	service      *domain.Service
	date         *time.Time
	month        time.Time
	slots        availability.SlotView
	slotsLoading bool
	slot         *domain.Slot
	customer     domain.CustomerInfo
	submitting   bool
	confirmation *domain.BookingConfirmation
	lastErr      error
}

// New создает мастер для уже загруженного бизнеса.
// source может быть nil: тогда используется расписание из описания бизнеса.
func New(
	containerID string,
	business *domain.Business,
	backend Backend,
	source AvailabilitySource,
	timeProvider TimeProvider,
	logger Logger,
) *Wizard {
	w := &Wizard{
		containerID:  containerID,
		business:     business,
		backend:      backend,
		source:       source,
		timeProvider: timeProvider,
		logger:       logger,
		slotSeq:      sequencer.New(),
		config:       &business.Availability,
	}
	w.month = w.currentMonth()
	return w
}

// Business возвращает бизнес, для которого открыт мастер
func (w *Wizard) Business() *domain.Business {
	return w.business
}

// Snapshot возвращает копию текущего состояния
func (w *Wizard) Snapshot() State {
	w.mu.Lock()
	defer w.mu.Unlock()

	state := State{
		Step:         w.step,
		Month:        w.month,
		Slots:        availability.NewSlotView(w.slots.All),
		SlotsLoading: w.slotsLoading,
		Customer:     w.customer,
		Submitting:   w.submitting,
		LastError:    w.lastErr,
	}
	if w.service != nil {
		s := *w.service
		state.Service = &s
	}
	if w.date != nil {
		d := *w.date
		state.Date = &d
	}
	if w.slot != nil {
		s := *w.slot
		state.Slot = &s
	}
	if w.confirmation != nil {
		c := *w.confirmation
		state.Confirmation = &c
	}
	return state
}

// SelectService выбирает услугу и переводит мастер к выбору даты
func (w *Wizard) SelectService(serviceID string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.step != StepSelectingService {
		return fmt.Errorf("%w: select service at step %s", ErrInvalidTransition, w.step)
	}

	service, ok := w.business.FindService(serviceID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownService, serviceID)
	}

	// Слоты зависят от услуги: при смене услуги выбор даты сбрасывается
	if w.service == nil || w.service.ID != service.ID {
		w.date = nil
		w.slot = nil
		w.slots = availability.SlotView{}
	}

	w.service = &service
	w.step = StepSelectingDate
	w.lastErr = nil
	return nil
}

// RefreshAvailability перечитывает расписание из источника.
// Без источника ничего не делает.
func (w *Wizard) RefreshAvailability(ctx context.Context) error {
	if w.source == nil {
		return nil
	}

	cfg, err := w.source.GetConfig(ctx, w.business.ID)
	if err != nil {
		w.logger.Warn("wizard %s: failed to load availability for business %s: %v", w.containerID, w.business.ID, err)
		return fmt.Errorf("%w: %v", ErrAvailabilityUnavailable, err)
	}

	w.mu.Lock()
	w.config = cfg
	w.mu.Unlock()
	return nil
}

// IsDateBookable проверяет дату по конфигурации бизнеса относительно текущего дня
func (w *Wizard) IsDateBookable(date time.Time) bool {
	return availability.IsDateBookable(w.inLocation(date), w.availabilityConfig(), w.timeProvider.Now())
}

// Calendar возвращает сетку отображаемого месяца
func (w *Wizard) Calendar() availability.Calendar {
	w.mu.Lock()
	month := w.month
	cfg := w.config
	w.mu.Unlock()

	return availability.MonthCalendar(month.Year(), month.Month(), cfg, w.timeProvider.Now())
}

// NextMonth переключает календарь на следующий месяц
func (w *Wizard) NextMonth() availability.Calendar {
	w.mu.Lock()
	w.month = w.month.AddDate(0, 1, 0)
	w.mu.Unlock()
	return w.Calendar()
}

// PrevMonth переключает календарь на предыдущий месяц
func (w *Wizard) PrevMonth() availability.Calendar {
	w.mu.Lock()
	w.month = w.month.AddDate(0, -1, 0)
	w.mu.Unlock()
	return w.Calendar()
}

// SelectDate выбирает дату и загружает слоты. Дату можно сменить и на шаге
// выбора времени. Перед проверкой даты расписание перечитывается из источника.
// Если за время загрузки был сделан более новый выбор, результат отбрасывается
// и возвращается ErrSuperseded.
func (w *Wizard) SelectDate(ctx context.Context, date time.Time) error {
	// 1. Актуализируем расписание
	if err := w.RefreshAvailability(ctx); err != nil {
		return err
	}

	// 2. Проверяем переход и доступность даты
	w.mu.Lock()
	if w.step != StepSelectingDate && w.step != StepSelectingTime {
		w.mu.Unlock()
		return fmt.Errorf("%w: select date at step %s", ErrInvalidTransition, w.step)
	}

	date = availability.StartOfDay(w.inLocation(date))
	decision := availability.Evaluate(date, w.config, w.timeProvider.Now())
	if !decision.Bookable() {
		w.mu.Unlock()
		return fmt.Errorf("%w: %s (%s)", ErrDateNotBookable, decision.Date, decision.Reason)
	}

	// 3. Переходим к выбору времени и помечаем слоты как загружаемые
	w.date = &date
	w.slot = nil
	w.slots = availability.SlotView{}
	w.slotsLoading = true
	w.step = StepSelectingTime
	w.lastErr = nil

	ticket, fetchCtx := w.slotSeq.Begin(ctx)
	businessID := w.business.ID
	serviceID := w.service.ID
	w.mu.Unlock()

	// 4. Загружаем слоты без блокировки
	slots, err := w.backend.GetSlots(fetchCtx, businessID, serviceID, date)

	// 5. Применяем результат, только если запрос все еще актуален
	w.mu.Lock()
	defer w.mu.Unlock()

	if !ticket.Current() {
		w.logger.Info("wizard %s: discarded stale slots for %s", w.containerID, decision.Date)
		return ErrSuperseded
	}
	ticket.Done()

	w.slotsLoading = false
	if err != nil {
		w.slots = availability.NewSlotView(nil)
		w.lastErr = err
		w.logger.Warn("wizard %s: failed to load slots for %s: %v", w.containerID, decision.Date, err)
		return fmt.Errorf("%w: %v", ErrSlotsUnavailable, err)
	}

	w.slots = availability.NewSlotView(slots)
	return nil
}

// SelectSlot выбирает слот по времени начала
func (w *Wizard) SelectSlot(startTime string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.step != StepSelectingTime {
		return fmt.Errorf("%w: select slot at step %s", ErrInvalidTransition, w.step)
	}
	if w.slotsLoading {
		return ErrSlotsLoading
	}

	slot, ok := w.slots.Find(startTime)
	if !ok || !slot.Available {
		return fmt.Errorf("%w: %s", ErrSlotNotAvailable, startTime)
	}

	w.slot = &slot
	w.step = StepEnteringDetails
	return nil
}

// Submit отправляет бронирование.
// При отказе бэкенда состояние сохраняется, и отправку можно повторить.
func (w *Wizard) Submit(ctx context.Context, customer domain.CustomerInfo) (*domain.BookingConfirmation, error) {
	// 1. Проверяем переход и контактные данные
	w.mu.Lock()
	if w.step != StepEnteringDetails {
		w.mu.Unlock()
		return nil, fmt.Errorf("%w: submit at step %s", ErrInvalidTransition, w.step)
	}
	if w.submitting {
		w.mu.Unlock()
		return nil, ErrSubmitInProgress
	}

	customer = customer.Normalized()
	w.customer = customer
	if err := customer.Validate(); err != nil {
		w.mu.Unlock()
		return nil, fmt.Errorf("%w: %v", ErrInvalidCustomer, err)
	}

	req := &domain.BookingRequest{
		BusinessID: w.business.ID,
		ServiceID:  w.service.ID,
		Date:       *w.date,
		StartTime:  w.slot.StartTime,
		Customer:   customer,
	}
	w.submitting = true
	w.lastErr = nil
	w.mu.Unlock()

	// 2. Отправляем бронирование
	confirmation, err := w.backend.CreateBooking(ctx, req)

	// 3. Фиксируем результат
	w.mu.Lock()
	defer w.mu.Unlock()

	w.submitting = false
	if err != nil {
		w.lastErr = err
		w.logger.Warn("wizard %s: booking rejected: %v", w.containerID, err)
		return nil, fmt.Errorf("%w: %v", ErrBookingRejected, err)
	}

	w.confirmation = confirmation
	w.step = StepConfirmed
	w.logger.Info("wizard %s: booking %s confirmed", w.containerID, confirmation.ID)

	c := *confirmation
	return &c, nil
}

// Back возвращает мастер на предыдущий шаг
func (w *Wizard) Back() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	switch w.step {
	case StepSelectingDate:
		w.step = StepSelectingService
	case StepSelectingTime:
		// Незавершенная загрузка слотов больше не нужна
		w.slotSeq.Invalidate()
		w.slotsLoading = false
		w.step = StepSelectingDate
	case StepEnteringDetails:
		if w.submitting {
			return ErrSubmitInProgress
		}
		w.step = StepSelectingTime
	default:
		return fmt.Errorf("%w: back at step %s", ErrInvalidTransition, w.step)
	}

	w.lastErr = nil
	return nil
}

// Reset начинает новое бронирование после подтверждения
func (w *Wizard) Reset() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.step != StepConfirmed {
		return fmt.Errorf("%w: reset at step %s", ErrInvalidTransition, w.step)
	}

	w.slotSeq.Invalidate()
	w.step = StepSelectingService
	w.service = nil
	w.date = nil
	w.slots = availability.SlotView{}
	w.slotsLoading = false
	w.slot = nil
	w.customer = domain.CustomerInfo{}
	w.confirmation = nil
	w.lastErr = nil
	w.month = w.currentMonth()
	return nil
}

// discard отменяет незавершенную загрузку слотов мастера, который больше не используется
func (w *Wizard) discard() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.slotSeq.Invalidate()
	w.slotsLoading = false
}

func (w *Wizard) availabilityConfig() *domain.BusinessAvailabilityConfig {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.config
}

func (w *Wizard) currentMonth() time.Time {
	now := w.timeProvider.Now()
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
}

// inLocation переносит календарную дату в часовой пояс текущего дня
func (w *Wizard) inLocation(date time.Time) time.Time {
	loc := w.timeProvider.Now().Location()
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)
}
