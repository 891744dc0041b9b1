package sync_calendar

import (
	"errors"
	"net/http"

	"github.com/massage-bot/schedule-service/internal/api/handlers"
	syncCalendar "github.com/massage-bot/schedule-service/internal/usecase/sync_calendar"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidDateRange    = "некорректный период синхронизации"
	msgCalendarUnavailable = "календарь недоступен, попробуйте позже"
)

type Handler struct {
	useCase SyncCalendarUseCase
	logger  Logger
}

func NewHandler(useCase SyncCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/admin/sync
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SyncRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/sync - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /admin/sync - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateRange)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, syncCalendar.ErrInvalidDateRange):
			h.logger.Warn("POST /admin/sync - Invalid date range: %s..%s", req.StartDate, req.EndDate)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, syncCalendar.ErrCalendarUnavailable):
			h.logger.Error("POST /admin/sync - Calendar unavailable: %v", err)
			handlers.RespondError(w, http.StatusBadGateway, msgCalendarUnavailable)

		default:
			h.logger.Error("POST /admin/sync - Failed to sync: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/sync - Synced: created=%d updated=%d skipped=%d",
		result.Created, result.Updated, result.Skipped)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
