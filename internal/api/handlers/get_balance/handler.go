package get_balance

import (
	"net/http"

	"github.com/massage-bot/schedule-service/internal/api/handlers"
	"github.com/massage-bot/schedule-service/internal/api/middleware"
)

const msgUnauthorized = "требуется аутентификация"

// BalanceResponse HTTP response model
type BalanceResponse struct {
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

// Handle POST /api/balance
// Возвращает баланс монет аутентифицированного пользователя,
// отсутствующий аккаунт читается как нулевой баланс
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	balance, err := h.service.GetBalance(r.Context(), userID)
	if err != nil {
		h.logger.Error("POST /balance - Failed to get balance: user_id=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, BalanceResponse{
		Success:      true,
		CoinsBalance: balance,
	})
}
