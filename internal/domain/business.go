package domain

// Service is a bookable offering of a business
type Service struct {
	ID              string
	Name            string
	Description     string
	DurationMinutes int
	Price           *float64
}

// Business is the configuration a booking widget loads before rendering
type Business struct {
	ID           string
	Name         string
	Description  string
	Services     []Service
	Availability BusinessAvailabilityConfig
}

// FindService returns the service with the given id
func (b *Business) FindService(id string) (Service, bool) {
	for _, s := range b.Services {
		if s.ID == id {
			return s, true
		}
	}
	return Service{}, false
}
