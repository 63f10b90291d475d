package domain

// Booking window
const (
	// BookingHorizonDays how many days ahead of today a date may be booked (inclusive)
	BookingHorizonDays = 60
)

// Calendar constants
const (
	DaysPerWeek      = 7
	MinDayIndex      = 0 // Monday
	MaxDayIndex      = 6 // Sunday
	MaxCalendarCells = 42
)

// Time format constants
const (
	TimeFormat  = "15:04"      // HH:MM
	DateFormat  = "2006-01-02" // YYYY-MM-DD
	MonthFormat = "2006-01"    // YYYY-MM
)

// Default working hours offered for a day that has never been configured
const (
	DefaultDayStart = "09:00"
	DefaultDayEnd   = "17:00"
)
