package get_admin_slots

import (
	"errors"
	"net/http"
	"time"

	"github.com/massage-bot/schedule-service/internal/api/handlers"
	"github.com/massage-bot/schedule-service/internal/domain"
	slotsService "github.com/massage-bot/schedule-service/internal/service/slots"
	"github.com/massage-bot/schedule-service/internal/service/slots/models"
)

const (
	msgInvalidDateRange = "некорректный период, ожидается start_date и end_date в формате YYYY-MM-DD"
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

// Handle GET /api/admin/slots
// Админская выдача: слоты всех статусов за период
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	startDate, err := time.Parse(domain.DateFormat, r.URL.Query().Get("start_date"))
	if err != nil {
		h.logger.Warn("GET /admin/slots - Invalid start_date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateRange)
		return
	}

	endDate, err := time.Parse(domain.DateFormat, r.URL.Query().Get("end_date"))
	if err != nil {
		h.logger.Warn("GET /admin/slots - Invalid end_date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateRange)
		return
	}

	result, err := h.service.List(r.Context(), &models.ListSlotsRequest{
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		switch {
		case errors.Is(err, slotsService.ErrInvalidDateRange):
			h.logger.Warn("GET /admin/slots - Invalid date range: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDateRange)
		default:
			h.logger.Error("GET /admin/slots - Failed to list slots: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
