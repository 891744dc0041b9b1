package top_up_balance

import (
	"errors"
	"net/http"

	"github.com/massage-bot/schedule-service/internal/api/handlers"
	balanceService "github.com/massage-bot/schedule-service/internal/service/balance"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidAmount      = "сумма пополнения должна быть положительной"
)

// TopUpRequest HTTP request model
type TopUpRequest struct {
	TgUserID int64 `json:"tg_user_id"`
	Amount   int   `json:"amount"`
}

// TopUpResponse HTTP response model
type TopUpResponse struct {
	Success      bool `json:"success"`
	CoinsBalance int  `json:"coins_balance"`
}

type Handler struct {
	service BalanceService
	logger  Logger
}

func NewHandler(service BalanceService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/admin/balance
// Администратор начисляет монеты клиенту после оплаты
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req TopUpRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/balance - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.TgUserID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	balance, err := h.service.TopUp(r.Context(), req.TgUserID, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, balanceService.ErrInvalidAmount):
			h.logger.Warn("POST /admin/balance - Invalid amount: user_id=%d, amount=%d", req.TgUserID, req.Amount)
			handlers.RespondBadRequest(w, msgInvalidAmount)
		default:
			h.logger.Error("POST /admin/balance - Failed to top up: user_id=%d, error=%v", req.TgUserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/balance - Topped up: user_id=%d, amount=%d, new_balance=%d",
		req.TgUserID, req.Amount, balance)
	handlers.RespondJSON(w, http.StatusOK, TopUpResponse{
		Success:      true,
		CoinsBalance: balance,
	})
}
