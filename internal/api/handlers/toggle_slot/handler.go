package toggle_slot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/massage-bot/schedule-service/internal/api/handlers"
	"github.com/massage-bot/schedule-service/internal/domain"
	toggleSlot "github.com/massage-bot/schedule-service/internal/usecase/toggle_slot"
)

const (
	msgInvalidSlotID      = "некорректный идентификатор слота"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidStatus      = "целевой статус должен быть available или blocked"
	msgSlotNotFound       = "слот не найден"
	msgInvalidTransition  = "недопустимая смена статуса слота"
)

type Handler struct {
	useCase ToggleSlotUseCase
	logger  Logger
}

func NewHandler(useCase ToggleSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/admin/slots/{slotId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slotID, err := strconv.ParseInt(mux.Vars(r)["slotId"], 10, 64)
	if err != nil || slotID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	var req ToggleSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/slots/%d - Invalid request body: %v", slotID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &toggleSlot.Request{
		SlotID:       slotID,
		TargetStatus: domain.SlotStatus(req.Status),
	})
	if err != nil {
		switch {
		case errors.Is(err, toggleSlot.ErrInvalidStatus):
			h.logger.Warn("PATCH /admin/slots/%d - Invalid target status: %s", slotID, req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, toggleSlot.ErrSlotNotFound):
			h.logger.Warn("PATCH /admin/slots/%d - Slot not found", slotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, toggleSlot.ErrInvalidTransition):
			h.logger.Warn("PATCH /admin/slots/%d - Invalid transition to %s", slotID, req.Status)
			handlers.RespondError(w, http.StatusConflict, msgInvalidTransition)

		default:
			h.logger.Error("PATCH /admin/slots/%d - Failed to toggle slot: %v", slotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/slots/%d - Status changed to %s", slotID, result.Status)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
