package get_calendar

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/availability"
)

const (
	msgInvalidRequest = "некорректный ID бизнеса или месяц, ожидается YYYY-MM"
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

// Handle GET /api/v1/businesses/{businessId}/calendar
// Query params: month (optional, YYYY-MM, по умолчанию текущий месяц)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	businessID := mux.Vars(r)["businessId"]
	month := r.URL.Query().Get("month")

	result, err := h.service.GetCalendar(r.Context(), businessID, month)
	if err != nil {
		if errors.Is(err, availability.ErrInvalidInput) {
			h.logger.Warn("GET /businesses/{id}/calendar - Invalid request: business_id=%s, month=%s: %v", businessID, month, err)
			handlers.RespondBadRequest(w, msgInvalidRequest)
			return
		}

		h.logger.Error("GET /businesses/{id}/calendar - Failed to build calendar: business_id=%s, error=%v", businessID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /businesses/{id}/calendar - Calendar built: business_id=%s, month=%s", businessID, result.Month)
	handlers.RespondJSON(w, http.StatusOK, result)
}
