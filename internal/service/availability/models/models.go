package models

import (
	"github.com/m04kA/SMC-AvailabilityService/internal/availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// Request модели

// DayAvailabilityRequest расписание одного дня (0 = понедельник, 6 = воскресенье)
type DayAvailabilityRequest struct {
	Day       int    `json:"day"`
	StartTime string `json:"startTime"` // HH:MM, пусто = 09:00
	EndTime   string `json:"endTime"`   // HH:MM, пусто = 17:00
	Enabled   bool   `json:"enabled"`
}

// UpdateAvailabilityRequest запрос на замену недельного расписания
type UpdateAvailabilityRequest struct {
	BusinessID   string                   `json:"-"`
	Availability []DayAvailabilityRequest `json:"availability"`
}

// BlockDateRequest запрос на блокировку даты
type BlockDateRequest struct {
	BusinessID string `json:"-"`
	Date       string `json:"date"` // YYYY-MM-DD
}

// Response модели

// DayAvailabilityResponse расписание одного дня
type DayAvailabilityResponse struct {
	Day       int              `json:"day"`
	Weekday   string           `json:"weekday"` // Monday ... Sunday
	StartTime types.TimeString `json:"startTime"`
	EndTime   types.TimeString `json:"endTime"`
	Enabled   bool             `json:"enabled"`
}

// AvailabilityResponse конфигурация доступности бизнеса
type AvailabilityResponse struct {
	BusinessID   string                    `json:"businessId"`
	Availability []DayAvailabilityResponse `json:"availability"`
	BlockedDates []string                  `json:"blockedDates"`
}

// DateEligibilityResponse результат проверки даты
type DateEligibilityResponse struct {
	BusinessID string `json:"businessId"`
	Date       string `json:"date"`
	Bookable   bool   `json:"bookable"`
	Reason     string `json:"reason,omitempty"` // past, beyond_horizon, blocked, day_closed
}

// CalendarDayResponse ячейка календаря
type CalendarDayResponse struct {
	Date     string `json:"date"`
	Bookable bool   `json:"bookable"`
	Reason   string `json:"reason,omitempty"`
	IsToday  bool   `json:"isToday"`
}

// CalendarResponse календарь месяца, неделя начинается с воскресенья
type CalendarResponse struct {
	BusinessID    string                `json:"businessId"`
	Month         string                `json:"month"` // YYYY-MM
	LeadingBlanks int                   `json:"leadingBlanks"`
	Days          []CalendarDayResponse `json:"days"`
}

// Конвертеры

// FromDomainConfig конвертирует конфигурацию в ответ
func FromDomainConfig(businessID string, cfg *domain.BusinessAvailabilityConfig) *AvailabilityResponse {
	resp := &AvailabilityResponse{
		BusinessID:   businessID,
		Availability: make([]DayAvailabilityResponse, 0, len(cfg.WeeklyAvailability)),
		BlockedDates: make([]string, 0, len(cfg.BlockedDates)),
	}

	for _, d := range cfg.WeeklyAvailability {
		resp.Availability = append(resp.Availability, DayAvailabilityResponse{
			Day:       d.DayIndex,
			Weekday:   availability.Weekday(d.DayIndex).String(),
			StartTime: d.StartTime,
			EndTime:   d.EndTime,
			Enabled:   d.Enabled,
		})
	}
	resp.BlockedDates = append(resp.BlockedDates, cfg.BlockedDates...)

	return resp
}

// FromDecision конвертирует решение движка в ответ
func FromDecision(businessID string, decision availability.Decision) *DateEligibilityResponse {
	return &DateEligibilityResponse{
		BusinessID: businessID,
		Date:       decision.Date,
		Bookable:   decision.Bookable(),
		Reason:     string(decision.Reason),
	}
}

// FromCalendar конвертирует сетку месяца в ответ
func FromCalendar(businessID string, cal availability.Calendar) *CalendarResponse {
	resp := &CalendarResponse{
		BusinessID:    businessID,
		Month:         fmtMonth(cal),
		LeadingBlanks: cal.LeadingBlanks,
		Days:          make([]CalendarDayResponse, 0, len(cal.Days)),
	}

	for _, d := range cal.Days {
		resp.Days = append(resp.Days, CalendarDayResponse{
			Date:     d.ISODate,
			Bookable: d.Bookable,
			Reason:   string(d.Reason),
			IsToday:  d.IsToday,
		})
	}

	return resp
}

func fmtMonth(cal availability.Calendar) string {
	if len(cal.Days) == 0 {
		return ""
	}
	return cal.Days[0].Date.Format(domain.MonthFormat)
}
