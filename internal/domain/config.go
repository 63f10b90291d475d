package domain

import "github.com/m04kA/SMC-AvailabilityService/pkg/types"

// DayAvailability is the recurring open window for one weekday.
// DayIndex uses Monday = 0 ... Sunday = 6.
type DayAvailability struct {
	DayIndex  int              `json:"day"`
	StartTime types.TimeString `json:"start_time"`
	EndTime   types.TimeString `json:"end_time"`
	Enabled   bool             `json:"enabled"`
}

// IsValidDayIndex returns true if the index names a weekday
func IsValidDayIndex(idx int) bool {
	return idx >= MinDayIndex && idx <= MaxDayIndex
}

// BusinessAvailabilityConfig is the part of a business configuration the
// availability engine reads. A nil config means nothing is configured.
type BusinessAvailabilityConfig struct {
	WeeklyAvailability []DayAvailability `json:"availability"`
	BlockedDates       []string          `json:"blocked_dates"`
}

// Day returns the first entry for the given day index
func (c *BusinessAvailabilityConfig) Day(idx int) (DayAvailability, bool) {
	if c == nil {
		return DayAvailability{}, false
	}
	for _, d := range c.WeeklyAvailability {
		if d.DayIndex == idx {
			return d, true
		}
	}
	return DayAvailability{}, false
}

// IsBlocked returns true if the ISO date (YYYY-MM-DD) is in BlockedDates
func (c *BusinessAvailabilityConfig) IsBlocked(isoDate string) bool {
	if c == nil {
		return false
	}
	for _, d := range c.BlockedDates {
		if d == isoDate {
			return true
		}
	}
	return false
}

// IsEmpty returns true if neither weekly hours nor blocked dates are configured
func (c *BusinessAvailabilityConfig) IsEmpty() bool {
	return c == nil || (len(c.WeeklyAvailability) == 0 && len(c.BlockedDates) == 0)
}
