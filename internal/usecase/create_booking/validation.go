package create_booking

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// validateRequest валидирует входные данные запроса.
// Контактные данные нормализуются на месте.
func validateRequest(req *Request) error {
	if _, err := uuid.Parse(req.BusinessID); err != nil {
		return fmt.Errorf("%w: businessID must be a UUID", ErrInvalidInput)
	}

	if strings.TrimSpace(req.ServiceID) == "" {
		return fmt.Errorf("%w: serviceID is required", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Проверяем, что время начала указано
	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	req.Customer = req.Customer.Normalized()
	if err := req.Customer.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidCustomer, err)
	}

	return nil
}
