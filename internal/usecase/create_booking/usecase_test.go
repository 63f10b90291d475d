package create_booking

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/integrations/businessapi"
	getAvailableSlots "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
)

const testBusinessID = "7f1c2d3e-4b5a-4c6d-8e9f-0a1b2c3d4e5f"

// Wednesday 2025-12-03 11:15
var testNow = time.Date(2025, 12, 3, 11, 15, 0, 0, time.UTC)

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type fakeConfigSource struct{}

func (fakeConfigSource) GetConfig(_ context.Context, _ string) (*domain.BusinessAvailabilityConfig, error) {
	cfg := &domain.BusinessAvailabilityConfig{BlockedDates: []string{"2025-12-25"}}
	for i := 0; i < domain.DaysPerWeek; i++ {
		cfg.WeeklyAvailability = append(cfg.WeeklyAvailability, domain.DayAvailability{
			DayIndex: i, StartTime: "09:00", EndTime: "17:00", Enabled: i < 5,
		})
	}
	return cfg, nil
}

type fakeBackend struct {
	slots      []domain.Slot
	slotsErr   error
	bookingErr error
	booked     *domain.BookingRequest
}

func (f *fakeBackend) GetSlots(_ context.Context, _, _ string, _ time.Time) ([]domain.Slot, error) {
	return f.slots, f.slotsErr
}

func (f *fakeBackend) CreateBooking(_ context.Context, req *domain.BookingRequest) (*domain.BookingConfirmation, error) {
	if f.bookingErr != nil {
		return nil, f.bookingErr
	}
	f.booked = req
	return &domain.BookingConfirmation{
		ID:            "bk-1",
		ServiceName:   "Haircut",
		Date:          req.Date.Format(domain.DateFormat),
		StartTime:     req.StartTime,
		EndTime:       "10:30",
		CustomerEmail: req.Customer.Email,
	}, nil
}

func newBackend() *fakeBackend {
	return &fakeBackend{slots: []domain.Slot{
		{StartTime: "08:30", EndTime: "09:00", Available: true},
		{StartTime: "10:00", EndTime: "10:30", Available: true},
		{StartTime: "10:30", EndTime: "11:00", Available: false},
	}}
}

func newUseCase(backend *fakeBackend) *UseCase {
	log := logger.Nop()
	slots := getAvailableSlots.NewUseCase(fakeConfigSource{}, backend, fixedTime{now: testNow}, log)
	return NewUseCase(slots, backend, log)
}

func validRequest() *Request {
	return &Request{
		BusinessID: testBusinessID,
		ServiceID:  "svc-1",
		Date:       time.Date(2025, 12, 8, 0, 0, 0, 0, time.UTC),
		StartTime:  "10:00",
		Customer:   domain.CustomerInfo{Name: " Anna ", Email: "anna@example.com", Phone: "+7 900 000-00-00"},
	}
}

func TestExecute_Success(t *testing.T) {
	backend := newBackend()

	resp, err := newUseCase(backend).Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "bk-1", resp.ID)
	assert.Equal(t, "2025-12-08", resp.Date)
	assert.Equal(t, "anna@example.com", resp.CustomerEmail)

	require.NotNil(t, backend.booked)
	assert.Equal(t, "Anna", backend.booked.Customer.Name)
	assert.Equal(t, "10:00", backend.booked.StartTime.String())
}

func TestExecute_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(req *Request, backend *fakeBackend)
		wantErr error
	}{
		{
			name:    "invalid business id",
			mutate:  func(req *Request, _ *fakeBackend) { req.BusinessID = "42" },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "missing start time",
			mutate:  func(req *Request, _ *fakeBackend) { req.StartTime = "" },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "bad email",
			mutate:  func(req *Request, _ *fakeBackend) { req.Customer.Email = "anna" },
			wantErr: ErrInvalidCustomer,
		},
		{
			name:    "blank phone",
			mutate:  func(req *Request, _ *fakeBackend) { req.Customer.Phone = "   " },
			wantErr: ErrInvalidCustomer,
		},
		{
			name:    "sunday is closed",
			mutate:  func(req *Request, _ *fakeBackend) { req.Date = time.Date(2025, 12, 7, 0, 0, 0, 0, time.UTC) },
			wantErr: ErrDateNotBookable,
		},
		{
			name:    "blocked date",
			mutate:  func(req *Request, _ *fakeBackend) { req.Date = time.Date(2025, 12, 25, 0, 0, 0, 0, time.UTC) },
			wantErr: ErrDateNotBookable,
		},
		{
			name:    "slot taken",
			mutate:  func(req *Request, _ *fakeBackend) { req.StartTime = "10:30" },
			wantErr: ErrSlotNotAvailable,
		},
		{
			name:    "slot outside working hours",
			mutate:  func(req *Request, _ *fakeBackend) { req.StartTime = "08:30" },
			wantErr: ErrSlotNotAvailable,
		},
		{
			name:    "unknown slot",
			mutate:  func(req *Request, _ *fakeBackend) { req.StartTime = "12:00" },
			wantErr: ErrSlotNotAvailable,
		},
		{
			name: "slot already started today",
			mutate: func(req *Request, _ *fakeBackend) {
				req.Date = time.Date(2025, 12, 3, 0, 0, 0, 0, time.UTC)
			},
			wantErr: ErrSlotNotAvailable,
		},
		{
			name: "business not found",
			mutate: func(_ *Request, backend *fakeBackend) {
				backend.slotsErr = fmt.Errorf("%w: x", businessapi.ErrBusinessNotFound)
			},
			wantErr: ErrBusinessNotFound,
		},
		{
			name: "rejected by backend",
			mutate: func(_ *Request, backend *fakeBackend) {
				backend.bookingErr = fmt.Errorf("%w: slot already booked", businessapi.ErrBookingRejected)
			},
			wantErr: ErrBookingRejected,
		},
		{
			name: "backend down",
			mutate: func(_ *Request, backend *fakeBackend) {
				backend.bookingErr = fmt.Errorf("%w: connection refused", businessapi.ErrInternal)
			},
			wantErr: ErrInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := newBackend()
			req := validRequest()
			tt.mutate(req, backend)

			resp, err := newUseCase(backend).Execute(context.Background(), req)

			assert.Nil(t, resp)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
