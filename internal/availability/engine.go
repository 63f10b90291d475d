// Package availability decides which calendar dates a business can be booked on
// and splits server-supplied slot lists into rendered and selectable sets.
//
// Every function is pure: the reference day is always passed in, nothing reads
// the wall clock, and inputs are never mutated. The same predicate backs the
// calendar rendering path and server-side validation.
package availability

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Reason names the first check a date failed
type Reason string

const (
	ReasonNone          Reason = ""
	ReasonPast          Reason = "past"
	ReasonBeyondHorizon Reason = "beyond_horizon"
	ReasonBlocked       Reason = "blocked"
	ReasonDayClosed     Reason = "day_closed"
)

// Decision is the outcome of evaluating one date
type Decision struct {
	Date   string // YYYY-MM-DD
	Reason Reason
}

// Bookable returns true if every check passed
func (d Decision) Bookable() bool {
	return d.Reason == ReasonNone
}

// IsDateBookable reports whether date can be booked given cfg, relative to today.
// A nil cfg books nothing.
func IsDateBookable(date time.Time, cfg *domain.BusinessAvailabilityConfig, today time.Time) bool {
	return Evaluate(date, cfg, today).Bookable()
}

// Evaluate runs the checks in order and stops at the first failure:
// past, horizon, blocked date, weekly availability.
func Evaluate(date time.Time, cfg *domain.BusinessAvailabilityConfig, today time.Time) Decision {
	iso := FormatISODate(date)
	loc := today.Location()

	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)
	todayStart := StartOfDay(today)

	if day.Before(todayStart) {
		return Decision{Date: iso, Reason: ReasonPast}
	}

	if day.After(HorizonEnd(today)) {
		return Decision{Date: iso, Reason: ReasonBeyondHorizon}
	}

	if cfg.IsBlocked(iso) {
		return Decision{Date: iso, Reason: ReasonBlocked}
	}

	// Missing entry means closed, never "open all day"
	entry, ok := cfg.Day(DayIndex(date.Weekday()))
	if !ok || !entry.Enabled {
		return Decision{Date: iso, Reason: ReasonDayClosed}
	}

	return Decision{Date: iso}
}

// DayIndex converts a time.Weekday (Sunday = 0) to the Monday = 0 index
// used by weekly availability.
func DayIndex(w time.Weekday) int {
	if w == time.Sunday {
		return 6
	}
	return int(w) - 1
}

// Weekday is the inverse of DayIndex
func Weekday(dayIndex int) time.Weekday {
	if dayIndex == 6 {
		return time.Sunday
	}
	return time.Weekday(dayIndex + 1)
}

// FormatISODate formats the date's own calendar fields as YYYY-MM-DD
func FormatISODate(date time.Time) string {
	return date.Format(domain.DateFormat)
}

// StartOfDay returns local midnight of t in t's location
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// HorizonEnd returns the last bookable day: local midnight of today + BookingHorizonDays
func HorizonEnd(today time.Time) time.Time {
	return StartOfDay(today).AddDate(0, 0, domain.BookingHorizonDays)
}
