package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCustomerInfo_Validate(t *testing.T) {
	tests := []struct {
		name     string
		customer CustomerInfo
		wantErr  error
	}{
		{name: "valid", customer: CustomerInfo{Name: "Anna", Email: "anna@example.com", Phone: "+79000000000"}},
		{name: "missing name", customer: CustomerInfo{Email: "anna@example.com", Phone: "1"}, wantErr: ErrCustomerNameRequired},
		{name: "missing email", customer: CustomerInfo{Name: "Anna", Phone: "1"}, wantErr: ErrCustomerEmailRequired},
		{name: "bad email", customer: CustomerInfo{Name: "Anna", Email: "anna.example.com", Phone: "1"}, wantErr: ErrCustomerEmailInvalid},
		{name: "missing phone", customer: CustomerInfo{Name: "Anna", Email: "anna@example.com"}, wantErr: ErrCustomerPhoneRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.customer.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCustomerInfo_Normalized(t *testing.T) {
	c := CustomerInfo{Name: "  Anna ", Email: " anna@example.com\n", Phone: "\t+7900 "}

	assert.Equal(t, CustomerInfo{Name: "Anna", Email: "anna@example.com", Phone: "+7900"}, c.Normalized())
	assert.ErrorIs(t, CustomerInfo{Name: "   ", Email: "a@b.c", Phone: "1"}.Normalized().Validate(), ErrCustomerNameRequired)
}
