package domain

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// CustomerInfo contact details entered in the booking form
type CustomerInfo struct {
	Name  string
	Email string
	Phone string
}

// Ошибки проверки контактных данных
var (
	ErrCustomerNameRequired  = errors.New("customer name is required")
	ErrCustomerEmailRequired = errors.New("customer email is required")
	ErrCustomerEmailInvalid  = errors.New("customer email is invalid")
	ErrCustomerPhoneRequired = errors.New("customer phone is required")
)

// Normalized returns a copy with surrounding whitespace removed
func (c CustomerInfo) Normalized() CustomerInfo {
	return CustomerInfo{
		Name:  strings.TrimSpace(c.Name),
		Email: strings.TrimSpace(c.Email),
		Phone: strings.TrimSpace(c.Phone),
	}
}

// Validate checks that every field is filled and the email parses
func (c CustomerInfo) Validate() error {
	if c.Name == "" {
		return ErrCustomerNameRequired
	}
	if c.Email == "" {
		return ErrCustomerEmailRequired
	}
	if _, err := mail.ParseAddress(c.Email); err != nil {
		return fmt.Errorf("%w: %q", ErrCustomerEmailInvalid, c.Email)
	}
	if c.Phone == "" {
		return ErrCustomerPhoneRequired
	}
	return nil
}

// BookingRequest is submitted when the customer confirms a booking
type BookingRequest struct {
	BusinessID string
	ServiceID  string
	Date       time.Time
	StartTime  types.TimeString
	Customer   CustomerInfo
}

// BookingConfirmation is returned by the backend for an accepted booking
type BookingConfirmation struct {
	ID            string
	ServiceName   string
	Date          string
	StartTime     types.TimeString
	EndTime       types.TimeString
	CustomerEmail string
}
