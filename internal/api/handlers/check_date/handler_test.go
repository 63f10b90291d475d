package check_date

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/service/availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/availability/models"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
)

const businessID = "7f1c2d3e-4b5a-4c6d-8e9f-0a1b2c3d4e5f"

type fakeService struct {
	resp *models.DateEligibilityResponse
	err  error
}

func (f *fakeService) CheckDate(_ context.Context, _ string, _ string) (*models.DateEligibilityResponse, error) {
	return f.resp, f.err
}

func serve(svc *fakeService, date string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/businesses/{businessId}/dates/{date}/eligibility", NewHandler(svc, logger.Nop()).Handle)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/businesses/"+businessID+"/dates/"+date+"/eligibility", nil))
	return rec
}

func TestHandle(t *testing.T) {
	svc := &fakeService{resp: &models.DateEligibilityResponse{
		BusinessID: businessID, Date: "2025-12-25", Bookable: false, Reason: "blocked",
	}}

	rec := serve(svc, "2025-12-25")
	require.Equal(t, http.StatusOK, rec.Code)

	var body models.DateEligibilityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Bookable)
	assert.Equal(t, "blocked", body.Reason)
}

func TestHandle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, serve(&fakeService{err: availability.ErrInvalidInput}, "25-12-2025").Code)
	assert.Equal(t, http.StatusInternalServerError, serve(&fakeService{err: errors.New("boom")}, "2025-12-25").Code)
}
