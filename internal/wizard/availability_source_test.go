package wizard

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	availabilityCache "github.com/m04kA/SMC-AvailabilityService/internal/infra/cache/availability"
	availabilityService "github.com/m04kA/SMC-AvailabilityService/internal/service/availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/availability/models"
	getAvailableSlotsUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
)

var _ AvailabilitySource = (*availabilityService.Service)(nil)

const sourceBusinessID = "7f1c2d3e-4b5a-4c6d-8e9f-0a1b2c3d4e5f"

type fakeSource struct {
	mu    sync.Mutex
	cfg   *domain.BusinessAvailabilityConfig
	err   error
	calls int
}

func (f *fakeSource) GetConfig(_ context.Context, _ string) (*domain.BusinessAvailabilityConfig, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	cfg := *f.cfg
	return &cfg, nil
}

func (f *fakeSource) block(date string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cfg := *f.cfg
	cfg.BlockedDates = append(append([]string(nil), f.cfg.BlockedDates...), date)
	f.cfg = &cfg
}

// weekdaysOnly открыт с понедельника по пятницу, без заблокированных дат
func weekdaysOnly() *domain.BusinessAvailabilityConfig {
	cfg := &domain.BusinessAvailabilityConfig{}
	for i := 0; i < domain.DaysPerWeek; i++ {
		cfg.WeeklyAvailability = append(cfg.WeeklyAvailability, domain.DayAvailability{
			DayIndex: i, StartTime: "09:00", EndTime: "18:00", Enabled: i < 5,
		})
	}
	return cfg
}

func calendarDay(t *testing.T, cal availability.Calendar, iso string) availability.CalendarDay {
	t.Helper()
	for _, d := range cal.Days {
		if d.ISODate == iso {
			return d
		}
	}
	t.Fatalf("day %s is not in calendar %d-%02d", iso, cal.Year, cal.Month)
	return availability.CalendarDay{}
}

func TestWizard_AvailabilityFromSource(t *testing.T) {
	backend := newFakeBackend()
	source := &fakeSource{cfg: weekdaysOnly()}
	w, err := NewRegistry(backend, source, fixedTime{now: testNow}, logger.Nop()).Open(context.Background(), "widget-1", "biz-1")
	require.NoError(t, err)
	require.NoError(t, w.SelectService("svc-1"))

	// В описании бизнеса суббота открыта, в источнике закрыта
	assert.False(t, w.IsDateBookable(day(6)))
	assert.False(t, calendarDay(t, w.Calendar(), "2025-12-06").Bookable)
	assert.ErrorIs(t, w.SelectDate(context.Background(), day(6)), ErrDateNotBookable)

	// Блокировка из описания бизнеса не действует, если источник ее не содержит
	assert.True(t, w.IsDateBookable(day(25)))
}

func TestWizard_SelectDateSeesNewBlock(t *testing.T) {
	backend := newFakeBackend()
	backend.slots["2025-12-10"] = morningSlots()
	source := &fakeSource{cfg: weekdaysOnly()}
	w, err := NewRegistry(backend, source, fixedTime{now: testNow}, logger.Nop()).Open(context.Background(), "widget-1", "biz-1")
	require.NoError(t, err)
	require.NoError(t, w.SelectService("svc-1"))
	assert.True(t, w.IsDateBookable(day(10)))

	source.block("2025-12-10")

	err = w.SelectDate(context.Background(), day(10))
	assert.ErrorIs(t, err, ErrDateNotBookable)
	assert.Equal(t, StepSelectingDate, w.Snapshot().Step)
	assert.False(t, w.IsDateBookable(day(10)))
	assert.Equal(t, availability.ReasonBlocked, calendarDay(t, w.Calendar(), "2025-12-10").Reason)
}

func TestWizard_RefreshAvailability(t *testing.T) {
	source := &fakeSource{cfg: weekdaysOnly()}
	w, err := NewRegistry(newFakeBackend(), source, fixedTime{now: testNow}, logger.Nop()).Open(context.Background(), "widget-1", "biz-1")
	require.NoError(t, err)

	source.block("2025-12-11")
	assert.True(t, calendarDay(t, w.Calendar(), "2025-12-11").Bookable)

	require.NoError(t, w.RefreshAvailability(context.Background()))
	assert.False(t, calendarDay(t, w.Calendar(), "2025-12-11").Bookable)

	// без источника обновлять нечего
	plain := newTestWizard(t, newFakeBackend())
	assert.NoError(t, plain.RefreshAvailability(context.Background()))
}

func TestWizard_AvailabilitySourceErrors(t *testing.T) {
	backend := newFakeBackend()
	source := &fakeSource{cfg: weekdaysOnly(), err: errors.New("db down")}
	reg := NewRegistry(backend, source, fixedTime{now: testNow}, logger.Nop())

	_, err := reg.Open(context.Background(), "widget-1", "biz-1")
	assert.ErrorIs(t, err, ErrAvailabilityUnavailable)
	assert.Zero(t, reg.Len())

	source.mu.Lock()
	source.err = nil
	source.mu.Unlock()
	w, err := reg.Open(context.Background(), "widget-1", "biz-1")
	require.NoError(t, err)
	require.NoError(t, w.SelectService("svc-1"))

	source.mu.Lock()
	source.err = errors.New("db down")
	source.mu.Unlock()
	assert.ErrorIs(t, w.SelectDate(context.Background(), day(4)), ErrAvailabilityUnavailable)
	assert.Equal(t, StepSelectingDate, w.Snapshot().Step)
	assert.Empty(t, backend.started)
}

type memRepo struct {
	mu  sync.Mutex
	cfg domain.BusinessAvailabilityConfig
}

func (r *memRepo) GetConfig(_ context.Context, _ string) (*domain.BusinessAvailabilityConfig, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cfg := r.cfg
	cfg.BlockedDates = append([]string(nil), r.cfg.BlockedDates...)
	return &cfg, nil
}

func (r *memRepo) ReplaceWeeklyAvailability(_ context.Context, _ string, days []domain.DayAvailability) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cfg.WeeklyAvailability = days
	return nil
}

func (r *memRepo) AddBlockedDate(_ context.Context, _ string, date string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cfg.BlockedDates = append(r.cfg.BlockedDates, date)
	return nil
}

func (r *memRepo) RemoveBlockedDate(_ context.Context, _ string, date string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.cfg.BlockedDates[:0]
	for _, d := range r.cfg.BlockedDates {
		if d != date {
			kept = append(kept, d)
		}
	}
	r.cfg.BlockedDates = kept
	return nil
}

type passTx struct{}

func (passTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func TestWizard_AgreesWithServerOnBlockedDate(t *testing.T) {
	ctx := context.Background()
	clock := fixedTime{now: testNow}

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	svc := availabilityService.NewService(
		&memRepo{cfg: *weekdaysOnly()},
		availabilityCache.NewCache(client, time.Minute),
		passTx{},
		clock,
		nil,
		logger.Nop(),
	)

	backend := newFakeBackend()
	backend.slots["2025-12-10"] = morningSlots()
	w, err := NewRegistry(backend, svc, clock, logger.Nop()).Open(ctx, "widget-1", sourceBusinessID)
	require.NoError(t, err)
	require.NoError(t, w.SelectService("svc-1"))

	uc := getAvailableSlotsUC.NewUseCase(svc, backend, clock, logger.Nop())
	slotsReq := &getAvailableSlotsUC.Request{BusinessID: sourceBusinessID, ServiceID: "svc-1", Date: day(10)}

	// До блокировки дата доступна и в мастере, и на сервере
	require.NoError(t, w.SelectDate(ctx, day(10)))
	_, err = uc.Execute(ctx, slotsReq)
	require.NoError(t, err)
	require.NoError(t, w.Back())

	// Администратор блокирует дату через сервис
	require.NoError(t, svc.BlockDate(ctx, &models.BlockDateRequest{BusinessID: sourceBusinessID, Date: "2025-12-10"}))

	assert.ErrorIs(t, w.SelectDate(ctx, day(10)), ErrDateNotBookable)
	_, err = uc.Execute(ctx, slotsReq)
	assert.ErrorIs(t, err, getAvailableSlotsUC.ErrDateNotBookable)
	check, err := svc.CheckDate(ctx, sourceBusinessID, "2025-12-10")
	require.NoError(t, err)
	assert.False(t, check.Bookable)
	assert.Equal(t, check.Bookable, w.IsDateBookable(day(10)))

	// Снятие блокировки видно обоим
	require.NoError(t, svc.UnblockDate(ctx, sourceBusinessID, "2025-12-10"))

	require.NoError(t, w.SelectDate(ctx, day(10)))
	_, err = uc.Execute(ctx, slotsReq)
	assert.NoError(t, err)
}
