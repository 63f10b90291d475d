package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

var testLoc = time.FixedZone("UTC+3", 3*60*60)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, testLoc)
}

func allDaysOpen() *domain.BusinessAvailabilityConfig {
	cfg := &domain.BusinessAvailabilityConfig{}
	for i := 0; i < domain.DaysPerWeek; i++ {
		cfg.WeeklyAvailability = append(cfg.WeeklyAvailability, domain.DayAvailability{
			DayIndex:  i,
			StartTime: "09:00",
			EndTime:   "17:00",
			Enabled:   true,
		})
	}
	return cfg
}

func mondayOnly() *domain.BusinessAvailabilityConfig {
	cfg := allDaysOpen()
	for i := range cfg.WeeklyAvailability {
		cfg.WeeklyAvailability[i].Enabled = cfg.WeeklyAvailability[i].DayIndex == 0
	}
	return cfg
}

func TestDayIndex(t *testing.T) {
	tests := []struct {
		weekday time.Weekday
		want    int
	}{
		{time.Sunday, 6},
		{time.Monday, 0},
		{time.Tuesday, 1},
		{time.Wednesday, 2},
		{time.Thursday, 3},
		{time.Friday, 4},
		{time.Saturday, 5},
	}

	for _, tt := range tests {
		t.Run(tt.weekday.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, DayIndex(tt.weekday))
			assert.Equal(t, tt.weekday, Weekday(tt.want))
		})
	}
}

func TestIsDateBookable_Past(t *testing.T) {
	today := time.Date(2025, 12, 3, 15, 30, 0, 0, testLoc)
	cfg := allDaysOpen()

	assert.False(t, IsDateBookable(date(2025, 12, 2), cfg, today))
	assert.False(t, IsDateBookable(date(2024, 12, 3), cfg, today))
	assert.Equal(t, ReasonPast, Evaluate(date(2025, 11, 30), cfg, today).Reason)
}

func TestIsDateBookable_TodayIsBookable(t *testing.T) {
	// Время суток today не влияет: сравнение идет с полуночью
	today := time.Date(2025, 12, 3, 23, 59, 0, 0, testLoc)

	assert.True(t, IsDateBookable(date(2025, 12, 3), allDaysOpen(), today))
	assert.True(t, IsDateBookable(time.Date(2025, 12, 3, 8, 0, 0, 0, testLoc), allDaysOpen(), today))
}

func TestIsDateBookable_Horizon(t *testing.T) {
	today := time.Date(2025, 12, 3, 10, 0, 0, 0, testLoc)
	cfg := allDaysOpen()

	sixtieth := date(2026, 2, 1)
	assert.True(t, IsDateBookable(sixtieth, cfg, today), "day 60 is inclusive")

	sixtyFirst := date(2026, 2, 2)
	assert.False(t, IsDateBookable(sixtyFirst, cfg, today))
	assert.Equal(t, ReasonBeyondHorizon, Evaluate(sixtyFirst, cfg, today).Reason)

	assert.False(t, IsDateBookable(date(2026, 6, 1), cfg, today))
}

func TestIsDateBookable_BlockedDates(t *testing.T) {
	today := date(2025, 12, 1)
	cfg := allDaysOpen()
	cfg.BlockedDates = []string{"2025-12-25"}

	decision := Evaluate(date(2025, 12, 25), cfg, today)
	assert.False(t, decision.Bookable())
	assert.Equal(t, ReasonBlocked, decision.Reason)
	assert.Equal(t, "2025-12-25", decision.Date)

	assert.True(t, IsDateBookable(date(2025, 12, 26), cfg, today))
}

func TestIsDateBookable_BlockedUsesOwnCalendarFields(t *testing.T) {
	// 2025-12-25 01:00 в UTC+3 - это 2025-12-24 в UTC; сравнивается собственная дата
	today := date(2025, 12, 1)
	cfg := allDaysOpen()
	cfg.BlockedDates = []string{"2025-12-25"}

	assert.False(t, IsDateBookable(time.Date(2025, 12, 25, 1, 0, 0, 0, testLoc), cfg, today))
}

func TestIsDateBookable_WeeklyScenario(t *testing.T) {
	// Wednesday
	today := time.Date(2025, 12, 3, 11, 0, 0, 0, testLoc)
	cfg := mondayOnly()

	assert.True(t, IsDateBookable(date(2025, 12, 8), cfg, today), "next Monday")
	assert.False(t, IsDateBookable(date(2025, 12, 3), cfg, today), "today, a Wednesday")
	assert.False(t, IsDateBookable(date(2025, 12, 7), cfg, today), "following Sunday")
	assert.Equal(t, ReasonDayClosed, Evaluate(date(2025, 12, 7), cfg, today).Reason)
}

func TestIsDateBookable_MissingDayEntryIsClosed(t *testing.T) {
	today := date(2025, 12, 3)
	cfg := &domain.BusinessAvailabilityConfig{
		WeeklyAvailability: []domain.DayAvailability{
			{DayIndex: 0, StartTime: "09:00", EndTime: "17:00", Enabled: true},
		},
	}

	// Sunday has no entry at all
	assert.False(t, IsDateBookable(date(2025, 12, 7), cfg, today))
	assert.True(t, IsDateBookable(date(2025, 12, 8), cfg, today))
}

func TestIsDateBookable_FirstDuplicateEntryWins(t *testing.T) {
	today := date(2025, 12, 3)
	cfg := &domain.BusinessAvailabilityConfig{
		WeeklyAvailability: []domain.DayAvailability{
			{DayIndex: 0, Enabled: false},
			{DayIndex: 0, Enabled: true},
		},
	}

	assert.False(t, IsDateBookable(date(2025, 12, 8), cfg, today))
}

func TestIsDateBookable_NilConfigFailsClosed(t *testing.T) {
	today := date(2025, 12, 3)

	for d := 0; d <= domain.BookingHorizonDays; d++ {
		assert.False(t, IsDateBookable(today.AddDate(0, 0, d), nil, today))
	}
	assert.False(t, IsDateBookable(today, &domain.BusinessAvailabilityConfig{}, today))
}

func TestIsDateBookable_Idempotent(t *testing.T) {
	today := date(2025, 12, 3)
	cfg := allDaysOpen()
	cfg.BlockedDates = []string{"2025-12-10"}
	before := *cfg

	first := IsDateBookable(date(2025, 12, 10), cfg, today)
	second := IsDateBookable(date(2025, 12, 10), cfg, today)

	assert.Equal(t, first, second)
	assert.Equal(t, before, *cfg)
}

func TestHorizonEnd_AcrossDST(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Skip("tzdata not available")
	}

	// 60 дней через переход на летнее время остаются календарными днями
	today := time.Date(2025, 3, 1, 12, 0, 0, 0, loc)
	end := HorizonEnd(today)

	assert.Equal(t, "2025-04-30", FormatISODate(end))
	assert.Equal(t, 0, end.Hour())
	assert.True(t, IsDateBookable(time.Date(2025, 4, 30, 0, 0, 0, 0, loc), allDaysOpen(), today))
	assert.False(t, IsDateBookable(time.Date(2025, 5, 1, 0, 0, 0, 0, loc), allDaysOpen(), today))
}
