package delete_slot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/massage-bot/schedule-service/internal/api/handlers"
	slotsService "github.com/massage-bot/schedule-service/internal/service/slots"
)

const (
	msgInvalidSlotID = "некорректный идентификатор слота"
	msgSlotNotFound  = "слот не найден"
	msgSlotBooked    = "слот занят, сначала отмените бронирование"
)

// DeleteSlotResponse HTTP response model
type DeleteSlotResponse struct {
	Success bool `json:"success"`
}

type Handler struct {
	service SlotsService
	logger  Logger
}

func NewHandler(service SlotsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/admin/slots/{slotId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slotID, err := strconv.ParseInt(mux.Vars(r)["slotId"], 10, 64)
	if err != nil || slotID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	if err := h.service.Delete(r.Context(), slotID); err != nil {
		switch {
		case errors.Is(err, slotsService.ErrSlotNotFound):
			h.logger.Warn("DELETE /admin/slots/%d - Slot not found", slotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, slotsService.ErrSlotBooked):
			h.logger.Warn("DELETE /admin/slots/%d - Slot is booked", slotID)
			handlers.RespondError(w, http.StatusConflict, msgSlotBooked)

		default:
			h.logger.Error("DELETE /admin/slots/%d - Failed to delete slot: %v", slotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/slots/%d - Slot deleted", slotID)
	handlers.RespondJSON(w, http.StatusOK, DeleteSlotResponse{Success: true})
}
