package block_date

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/api/middleware"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/availability/models"
)

const (
	msgMissingBusinessID  = "не указан бизнес"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgAlreadyBlocked     = "дата уже заблокирована"
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

// Handle POST /api/v1/admin/blocked-dates
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	businessID, ok := middleware.BusinessIDFromContext(r.Context())
	if !ok {
		handlers.RespondBadRequest(w, msgMissingBusinessID)
		return
	}

	var req BlockDateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/blocked-dates - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err := h.service.BlockDate(r.Context(), &models.BlockDateRequest{BusinessID: businessID, Date: req.Date})
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidInput):
			h.logger.Warn("POST /admin/blocked-dates - Invalid date: business_id=%s, date=%s", businessID, req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, availability.ErrDateAlreadyBlocked):
			h.logger.Warn("POST /admin/blocked-dates - Already blocked: business_id=%s, date=%s", businessID, req.Date)
			handlers.RespondConflict(w, msgAlreadyBlocked)

		default:
			h.logger.Error("POST /admin/blocked-dates - Failed to block date: business_id=%s, error=%v", businessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, BlockDateResponse{BusinessID: businessID, Date: req.Date})
}
