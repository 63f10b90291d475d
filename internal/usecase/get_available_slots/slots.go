package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// restrictSlots помечает недоступными слоты, которые нельзя выбрать по расписанию:
// - слоты вне рабочего окна дня
// - на сегодня - слоты, время начала которых уже прошло
// Порядок слотов сохраняется, входной срез не изменяется.
func restrictSlots(slots []domain.Slot, day domain.DayAvailability, requestDate time.Time, now time.Time) []domain.Slot {
	result := make([]domain.Slot, len(slots))
	copy(result, slots)

	// Шаг 1: Минимальное допустимое время начала для сегодняшней даты
	var minAllowed types.TimeString
	if isSameDay(requestDate, now) {
		minAllowed = types.NewTimeString(now)
	}

	for i := range result {
		slot := &result[i]
		if !slot.Available {
			continue
		}

		// Шаг 2: Слот должен целиком лежать в рабочем окне.
		// Пустые границы окна не ограничивают слот.
		if !day.StartTime.IsZero() && slot.StartTime.IsBefore(day.StartTime) {
			slot.Available = false
			continue
		}
		// Слот, заканчивающийся в 00:00, заканчивается в конце суток
		if !day.EndTime.IsZero() && slot.EndMinutes() > day.EndTime.Minutes() {
			slot.Available = false
			continue
		}

		// Шаг 3: Уже начавшиеся слоты выбрать нельзя
		if !minAllowed.IsZero() && slot.StartTime.IsBefore(minAllowed) {
			slot.Available = false
		}
	}

	return result
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
