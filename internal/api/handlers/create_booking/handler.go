package create_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	createBooking "github.com/m04kA/SMC-AvailabilityService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты бронирования, ожидается YYYY-MM-DD"
	msgInvalidTime        = "некорректный формат времени начала, ожидается HH:MM"
	msgInvalidInput       = "некорректные параметры бронирования"
	msgInvalidCustomer    = "укажите имя, корректный email и телефон"
	msgBusinessNotFound   = "бизнес не найден"
	msgDateNotBookable    = "дата недоступна для бронирования"
	msgSlotNotAvailable   = "выбранный временной слот недоступен"
	msgBookingRejected    = "бронирование отклонено"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/businesses/{businessId}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	businessID := mux.Vars(r)["businessId"]

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /businesses/{id}/bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(businessID)
	if err != nil {
		h.logger.Warn("POST /businesses/{id}/bookings - Failed to parse request: %v", err)
		if errors.Is(err, ErrInvalidTime) {
			handlers.RespondBadRequest(w, msgInvalidTime)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /businesses/{id}/bookings - Invalid input: business_id=%s: %v", businessID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createBooking.ErrInvalidCustomer):
			h.logger.Warn("POST /businesses/{id}/bookings - Invalid customer: business_id=%s: %v", businessID, err)
			handlers.RespondBadRequest(w, msgInvalidCustomer)

		case errors.Is(err, createBooking.ErrBusinessNotFound):
			h.logger.Warn("POST /businesses/{id}/bookings - Business not found: business_id=%s", businessID)
			handlers.RespondNotFound(w, msgBusinessNotFound)

		case errors.Is(err, createBooking.ErrDateNotBookable):
			h.logger.Info("POST /businesses/{id}/bookings - Date not bookable: business_id=%s: %v", businessID, err)
			handlers.RespondUnprocessable(w, msgDateNotBookable)

		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /businesses/{id}/bookings - Slot not available: business_id=%s, time=%s", businessID, req.StartTime)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrBookingRejected):
			h.logger.Warn("POST /businesses/{id}/bookings - Rejected: business_id=%s: %v", businessID, err)
			handlers.RespondConflict(w, msgBookingRejected)

		default:
			h.logger.Error("POST /businesses/{id}/bookings - Failed to create booking: business_id=%s, error=%v",
				businessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /businesses/{id}/bookings - Booking created successfully: booking_id=%s, business_id=%s",
		result.ID, businessID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
