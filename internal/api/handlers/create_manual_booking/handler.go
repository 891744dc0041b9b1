package create_manual_booking

import (
	"errors"
	"net/http"

	"github.com/massage-bot/schedule-service/internal/api/handlers"
	manualBooking "github.com/massage-bot/schedule-service/internal/usecase/manual_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgSlotNotFound       = "слот не найден"
	msgSlotNotAvailable   = "слот уже занят или недоступен"
	msgInvalidInput       = "некорректные данные клиента"
)

type Handler struct {
	useCase ManualBookingUseCase
	logger  Logger
}

func NewHandler(useCase ManualBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/admin/bookings/manual
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ManualBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/bookings/manual - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &manualBooking.Request{
		SlotID:      req.SlotID,
		ClientName:  req.ClientName,
		ClientPhone: req.ClientPhone,
	})
	if err != nil {
		switch {
		case errors.Is(err, manualBooking.ErrSlotNotFound):
			h.logger.Warn("POST /admin/bookings/manual - Slot not found: slot_id=%d", req.SlotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, manualBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /admin/bookings/manual - Slot not available: slot_id=%d", req.SlotID)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, manualBooking.ErrInvalidInput):
			h.logger.Warn("POST /admin/bookings/manual - Invalid input: slot_id=%d", req.SlotID)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /admin/bookings/manual - Failed to create booking: slot_id=%d, error=%v",
				req.SlotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/bookings/manual - Booking created: booking_id=%d, slot_id=%d",
		result.BookingID, result.SlotID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
