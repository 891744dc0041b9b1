package book_slot

import (
	"errors"
	"net/http"

	"github.com/massage-bot/schedule-service/internal/api/handlers"
	"github.com/massage-bot/schedule-service/internal/api/middleware"
	bookSlot "github.com/massage-bot/schedule-service/internal/usecase/book_slot"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgUnauthorized       = "требуется аутентификация"
	msgSlotNotFound       = "слот не найден"
	msgSlotNotAvailable   = "слот уже занят или недоступен"
	msgInsufficientFunds  = "недостаточно монет для записи"
)

type Handler struct {
	useCase BookSlotUseCase
	logger  Logger
}

func NewHandler(useCase BookSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/book
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	var req BookSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /book - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &bookSlot.Request{
		TgUserID: userID,
		SlotID:   req.SlotID,
	})
	if err != nil {
		switch {
		case errors.Is(err, bookSlot.ErrSlotNotFound):
			h.logger.Warn("POST /book - Slot not found: slot_id=%d, user_id=%d", req.SlotID, userID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, bookSlot.ErrSlotNotAvailable):
			h.logger.Warn("POST /book - Slot not available: slot_id=%d, user_id=%d", req.SlotID, userID)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, bookSlot.ErrInsufficientFunds):
			h.logger.Warn("POST /book - Insufficient funds: slot_id=%d, user_id=%d", req.SlotID, userID)
			handlers.RespondError(w, http.StatusPaymentRequired, msgInsufficientFunds)

		case errors.Is(err, bookSlot.ErrInvalidInput):
			h.logger.Warn("POST /book - Invalid input: slot_id=%d, user_id=%d", req.SlotID, userID)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /book - Failed to book slot: slot_id=%d, user_id=%d, error=%v",
				req.SlotID, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /book - Booking created: booking_id=%d, slot_id=%d, user_id=%d",
		result.BookingID, result.SlotID, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
