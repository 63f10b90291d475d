package availability

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// CalendarDay is one date cell of a month grid
type CalendarDay struct {
	Date     time.Time
	ISODate  string
	Bookable bool
	Reason   Reason
	IsToday  bool
}

// Calendar is a Sunday-first month grid: LeadingBlanks empty cells, then one cell per day
type Calendar struct {
	Year          int
	Month         time.Month
	LeadingBlanks int
	Days          []CalendarDay
}

// Cells returns the number of rendered cells (never more than 42)
func (c Calendar) Cells() int {
	return c.LeadingBlanks + len(c.Days)
}

// MonthCalendar evaluates every day of the month. Dates are built in today's location.
func MonthCalendar(year int, month time.Month, cfg *domain.BusinessAvailabilityConfig, today time.Time) Calendar {
	loc := today.Location()
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	daysInMonth := first.AddDate(0, 1, -1).Day()
	todayISO := FormatISODate(today)

	cal := Calendar{
		Year:          first.Year(),
		Month:         first.Month(),
		LeadingBlanks: int(first.Weekday()),
		Days:          make([]CalendarDay, 0, daysInMonth),
	}

	for d := 1; d <= daysInMonth; d++ {
		date := time.Date(first.Year(), first.Month(), d, 0, 0, 0, 0, loc)
		decision := Evaluate(date, cfg, today)
		cal.Days = append(cal.Days, CalendarDay{
			Date:     date,
			ISODate:  decision.Date,
			Bookable: decision.Bookable(),
			Reason:   decision.Reason,
			IsToday:  decision.Date == todayISO,
		})
	}

	return cal
}
