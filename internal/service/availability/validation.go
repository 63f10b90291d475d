package availability

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/availability/models"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// validateBusinessID проверяет, что идентификатор бизнеса - UUID
func validateBusinessID(businessID string) error {
	if businessID == "" {
		return fmt.Errorf("%w: business id is required", ErrInvalidInput)
	}
	if _, err := uuid.Parse(businessID); err != nil {
		return fmt.Errorf("%w: business id must be a UUID", ErrInvalidInput)
	}
	return nil
}

// parseDate парсит YYYY-MM-DD как полночь в часовом поясе loc
func parseDate(value string, loc *time.Location) (time.Time, error) {
	date, err := time.ParseInLocation(domain.DateFormat, value, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date must be in YYYY-MM-DD format", ErrInvalidInput)
	}
	return date, nil
}

// parseMonth парсит YYYY-MM как первое число месяца
func parseMonth(value string, loc *time.Location) (time.Time, error) {
	month, err := time.ParseInLocation(domain.MonthFormat, value, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: month must be in YYYY-MM format", ErrInvalidInput)
	}
	return month, nil
}

// buildWeeklyAvailability проверяет расписание и конвертирует его в доменные модели.
// Не больше одной записи на день, времена HH:MM, для рабочего дня начало раньше конца.
func buildWeeklyAvailability(entries []models.DayAvailabilityRequest) ([]domain.DayAvailability, error) {
	if len(entries) > domain.DaysPerWeek {
		return nil, fmt.Errorf("%w: at most %d days allowed", ErrInvalidInput, domain.DaysPerWeek)
	}

	seen := make(map[int]bool, len(entries))
	days := make([]domain.DayAvailability, 0, len(entries))

	for _, e := range entries {
		if !domain.IsValidDayIndex(e.Day) {
			return nil, fmt.Errorf("%w: day must be between %d and %d, got %d",
				ErrInvalidInput, domain.MinDayIndex, domain.MaxDayIndex, e.Day)
		}
		if seen[e.Day] {
			return nil, fmt.Errorf("%w: duplicate entry for day %d", ErrInvalidInput, e.Day)
		}
		seen[e.Day] = true

		start, err := parseTimeOrDefault(e.StartTime, domain.DefaultDayStart)
		if err != nil {
			return nil, fmt.Errorf("%w: day %d start time: %v", ErrInvalidInput, e.Day, err)
		}
		end, err := parseTimeOrDefault(e.EndTime, domain.DefaultDayEnd)
		if err != nil {
			return nil, fmt.Errorf("%w: day %d end time: %v", ErrInvalidInput, e.Day, err)
		}

		if e.Enabled && !start.IsBefore(end) {
			return nil, fmt.Errorf("%w: day %d start time must be before end time", ErrInvalidInput, e.Day)
		}

		days = append(days, domain.DayAvailability{
			DayIndex:  e.Day,
			StartTime: start,
			EndTime:   end,
			Enabled:   e.Enabled,
		})
	}

	return days, nil
}

func parseTimeOrDefault(value, def string) (types.TimeString, error) {
	if value == "" {
		value = def
	}
	return types.NewTimeStringFromString(value)
}
