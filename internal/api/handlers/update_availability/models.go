package update_availability

import (
	"github.com/m04kA/SMC-AvailabilityService/internal/service/availability/models"
)

// UpdateAvailabilityRequest HTTP request model
type UpdateAvailabilityRequest struct {
	Availability []DayAvailability `json:"availability"`
}

// DayAvailability расписание дня, 0 = понедельник
type DayAvailability struct {
	Day       int    `json:"day"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Enabled   bool   `json:"enabled"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateAvailabilityRequest) ToServiceRequest(businessID string) *models.UpdateAvailabilityRequest {
	days := make([]models.DayAvailabilityRequest, len(r.Availability))
	for i, d := range r.Availability {
		days[i] = models.DayAvailabilityRequest{
			Day:       d.Day,
			StartTime: d.StartTime,
			EndTime:   d.EndTime,
			Enabled:   d.Enabled,
		}
	}

	return &models.UpdateAvailabilityRequest{
		BusinessID:   businessID,
		Availability: days,
	}
}
