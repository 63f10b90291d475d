package update_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/api/middleware"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/availability"
)

const (
	msgMissingBusinessID  = "не указан бизнес"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidData        = "некорректное расписание"
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

// Handle PUT /api/v1/admin/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	businessID, ok := middleware.BusinessIDFromContext(r.Context())
	if !ok {
		handlers.RespondBadRequest(w, msgMissingBusinessID)
		return
	}

	// Декодируем body
	var req UpdateAvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/availability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateWeeklyAvailability(r.Context(), req.ToServiceRequest(businessID))
	if err != nil {
		if errors.Is(err, availability.ErrInvalidInput) {
			h.logger.Warn("PUT /admin/availability - Invalid data: business_id=%s: %v", businessID, err)
			handlers.RespondBadRequest(w, msgInvalidData+": "+err.Error())
			return
		}

		h.logger.Error("PUT /admin/availability - Failed to update: business_id=%s, error=%v", businessID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PUT /admin/availability - Availability updated: business_id=%s, days=%d", businessID, len(result.Availability))
	handlers.RespondJSON(w, http.StatusOK, result)
}
