package update_booking_status

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/massage-bot/schedule-service/internal/api/handlers"
	"github.com/massage-bot/schedule-service/internal/domain"
	bookingsService "github.com/massage-bot/schedule-service/internal/service/bookings"
	cancelBooking "github.com/massage-bot/schedule-service/internal/usecase/cancel_booking"
)

const (
	msgInvalidBookingID   = "некорректный идентификатор бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidStatus      = "статус должен быть completed или cancelled"
	msgBookingNotFound    = "бронирование не найдено"
	msgCannotComplete     = "бронирование нельзя отметить выполненным"
	msgCannotCancel       = "бронирование нельзя отменить"
)

type Handler struct {
	service       BookingsService
	cancelUseCase CancelBookingUseCase
	logger        Logger
}

func NewHandler(service BookingsService, cancelUseCase CancelBookingUseCase, logger Logger) *Handler {
	return &Handler{
		service:       service,
		cancelUseCase: cancelUseCase,
		logger:        logger,
	}
}

// Handle PATCH /api/admin/bookings/{bookingId}/status
// Отмена идет через координатор: освобождение слота и возврат монет
// происходят в одной транзакции с отменой
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil || bookingID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req UpdateBookingStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/bookings/%d/status - Invalid request body: %v", bookingID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	switch domain.BookingStatus(req.Status) {
	case domain.BookingCompleted:
		h.complete(w, r, bookingID)
	case domain.BookingCancelled:
		h.cancel(w, r, bookingID)
	default:
		h.logger.Warn("PATCH /admin/bookings/%d/status - Invalid status: %s", bookingID, req.Status)
		handlers.RespondBadRequest(w, msgInvalidStatus)
	}
}

func (h *Handler) complete(w http.ResponseWriter, r *http.Request, bookingID int64) {
	result, err := h.service.Complete(r.Context(), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrBookingNotFound):
			h.logger.Warn("PATCH /admin/bookings/%d/status - Booking not found", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookingsService.ErrCannotComplete):
			h.logger.Warn("PATCH /admin/bookings/%d/status - Cannot complete", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgCannotComplete)

		default:
			h.logger.Error("PATCH /admin/bookings/%d/status - Failed to complete: %v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/bookings/%d/status - Booking completed", bookingID)
	handlers.RespondJSON(w, http.StatusOK, FromCompleteResponse(result))
}

func (h *Handler) cancel(w http.ResponseWriter, r *http.Request, bookingID int64) {
	result, err := h.cancelUseCase.Execute(r.Context(), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, cancelBooking.ErrBookingNotFound):
			h.logger.Warn("PATCH /admin/bookings/%d/status - Booking not found", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, cancelBooking.ErrCannotCancel):
			h.logger.Warn("PATCH /admin/bookings/%d/status - Cannot cancel", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgCannotCancel)

		default:
			h.logger.Error("PATCH /admin/bookings/%d/status - Failed to cancel: %v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/bookings/%d/status - Booking cancelled, refunded %d coins",
		bookingID, result.RefundedCoins)
	handlers.RespondJSON(w, http.StatusOK, FromCancelResponse(result))
}
