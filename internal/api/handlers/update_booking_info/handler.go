package update_booking_info

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/massage-bot/schedule-service/internal/api/handlers"
	bookingsService "github.com/massage-bot/schedule-service/internal/service/bookings"
	"github.com/massage-bot/schedule-service/internal/service/bookings/models"
)

const (
	msgInvalidBookingID   = "некорректный идентификатор бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgBookingNotFound    = "бронирование не найдено"
	msgNothingToUpdate    = "не передано ни одного поля для обновления"
	msgInvalidInput       = "некорректные данные клиента"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/admin/bookings/{bookingId}/manual-info
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil || bookingID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req UpdateBookingInfoRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/bookings/%d/manual-info - Invalid request body: %v", bookingID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateContactInfo(r.Context(), bookingID, &models.UpdateContactInfoRequest{
		ClientName:  req.ClientName,
		ClientPhone: req.ClientPhone,
	})
	if err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrBookingNotFound):
			h.logger.Warn("PATCH /admin/bookings/%d/manual-info - Booking not found", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookingsService.ErrNothingToUpdate):
			h.logger.Warn("PATCH /admin/bookings/%d/manual-info - Nothing to update", bookingID)
			handlers.RespondBadRequest(w, msgNothingToUpdate)

		case errors.Is(err, bookingsService.ErrInvalidInput):
			h.logger.Warn("PATCH /admin/bookings/%d/manual-info - Invalid input: %v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /admin/bookings/%d/manual-info - Failed to update: %v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/bookings/%d/manual-info - Contact info updated", bookingID)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
