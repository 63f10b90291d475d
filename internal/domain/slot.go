package domain

import "github.com/m04kA/SMC-AvailabilityService/pkg/types"

// Slot is a server-supplied time slot for one service on one date
type Slot struct {
	StartTime types.TimeString `json:"start_time"`
	EndTime   types.TimeString `json:"end_time"`
	Available bool             `json:"available"`
}

// DurationMinutes returns the slot length, 0 if the times are not set.
// A slot ending at or before its start runs past midnight.
func (s *Slot) DurationMinutes() int {
	if s.StartTime.IsZero() || s.EndTime.IsZero() {
		return 0
	}
	return s.StartTime.MinutesUntil(s.EndTime)
}

// EndMinutes returns the slot end in minutes from the start of its day.
// A slot ending at midnight ends at 24*60, not at 0.
func (s *Slot) EndMinutes() int {
	return s.StartTime.Minutes() + s.DurationMinutes()
}
