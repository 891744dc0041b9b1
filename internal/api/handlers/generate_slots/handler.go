package generate_slots

import (
	"errors"
	"net/http"

	"github.com/massage-bot/schedule-service/internal/api/handlers"
	generateSlots "github.com/massage-bot/schedule-service/internal/usecase/generate_slots"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateRange   = "некорректный диапазон дат"
	msgInvalidWeekday     = "дни недели должны быть в диапазоне 0..6"
	msgInvalidTimeRange   = "некорректный интервал времени"
	msgInvalidInput       = "нужен хотя бы один день недели и один интервал времени"
)

type Handler struct {
	useCase GenerateSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GenerateSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/admin/slots/bulk
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req GenerateSlotsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/slots/bulk - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /admin/slots/bulk - Failed to parse request: %v", err)
		if errors.Is(err, generateSlots.ErrInvalidDateRange) {
			handlers.RespondBadRequest(w, msgInvalidDateRange)
			return
		}
		handlers.RespondBadRequest(w, msgInvalidTimeRange)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, generateSlots.ErrInvalidDateRange):
			h.logger.Warn("POST /admin/slots/bulk - Invalid date range: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, generateSlots.ErrInvalidWeekday):
			h.logger.Warn("POST /admin/slots/bulk - Invalid weekday: %v", err)
			handlers.RespondBadRequest(w, msgInvalidWeekday)

		case errors.Is(err, generateSlots.ErrInvalidTimeRange):
			h.logger.Warn("POST /admin/slots/bulk - Invalid time range: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, generateSlots.ErrInvalidInput):
			h.logger.Warn("POST /admin/slots/bulk - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /admin/slots/bulk - Failed to generate slots: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/slots/bulk - Generated: created=%d skipped=%d errors=%d",
		result.Created, result.Skipped, result.Errors)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
