package create_slot

import (
	"errors"
	"net/http"

	"github.com/massage-bot/schedule-service/internal/api/handlers"
	slotsService "github.com/massage-bot/schedule-service/internal/service/slots"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateTime    = "некорректные дата или время, ожидается YYYY-MM-DD и HH:MM"
	msgInvalidTimeRange   = "время начала должно быть раньше времени конца"
	msgInvalidStatus      = "недопустимый статус слота"
	msgSlotAlreadyExists  = "слот с такими датой и временем уже существует"
)

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

// Handle POST /api/admin/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("POST /admin/slots - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.service.Create(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, slotsService.ErrInvalidTimeRange):
			h.logger.Warn("POST /admin/slots - Invalid time range: %s-%s", req.StartTime, req.EndTime)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, slotsService.ErrInvalidStatus):
			h.logger.Warn("POST /admin/slots - Invalid status: %s", req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, slotsService.ErrSlotAlreadyExists):
			h.logger.Warn("POST /admin/slots - Slot already exists: %s %s-%s", req.Date, req.StartTime, req.EndTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotAlreadyExists)

		default:
			h.logger.Error("POST /admin/slots - Failed to create slot: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/slots - Slot created: id=%d, %s %s-%s",
		result.ID, req.Date, req.StartTime, req.EndTime)
	handlers.RespondJSON(w, http.StatusCreated, FromServiceResponse(result))
}
