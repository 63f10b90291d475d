package unblock_date

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/api/middleware"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/availability"
)

const (
	msgMissingBusinessID = "не указан бизнес"
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgNotBlocked        = "дата не заблокирована"
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

// Handle DELETE /api/v1/admin/blocked-dates/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	businessID, ok := middleware.BusinessIDFromContext(r.Context())
	if !ok {
		handlers.RespondBadRequest(w, msgMissingBusinessID)
		return
	}
	date := mux.Vars(r)["date"]

	if err := h.service.UnblockDate(r.Context(), businessID, date); err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, availability.ErrDateNotBlocked):
			h.logger.Warn("DELETE /admin/blocked-dates/{date} - Not blocked: business_id=%s, date=%s", businessID, date)
			handlers.RespondNotFound(w, msgNotBlocked)

		default:
			h.logger.Error("DELETE /admin/blocked-dates/{date} - Failed to unblock: business_id=%s, error=%v", businessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/blocked-dates/{date} - Unblocked: business_id=%s, date=%s", businessID, date)
	handlers.RespondNoContent(w)
}
