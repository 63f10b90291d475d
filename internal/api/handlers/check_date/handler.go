package check_date

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/availability"
)

const (
	msgInvalidRequest = "некорректный ID бизнеса или дата, ожидается YYYY-MM-DD"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/businesses/{businessId}/dates/{date}/eligibility
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	businessID := vars["businessId"]
	date := vars["date"]

	result, err := h.service.CheckDate(r.Context(), businessID, date)
	if err != nil {
		if errors.Is(err, availability.ErrInvalidInput) {
			h.logger.Warn("GET /businesses/{id}/dates/{date}/eligibility - Invalid request: business_id=%s, date=%s: %v", businessID, date, err)
			handlers.RespondBadRequest(w, msgInvalidRequest)
			return
		}

		h.logger.Error("GET /businesses/{id}/dates/{date}/eligibility - Failed to check date: business_id=%s, error=%v", businessID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
