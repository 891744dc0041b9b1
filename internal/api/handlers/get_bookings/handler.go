package get_bookings

import (
	"errors"
	"net/http"
	"time"

	"github.com/massage-bot/schedule-service/internal/api/handlers"
	"github.com/massage-bot/schedule-service/internal/domain"
	bookingsService "github.com/massage-bot/schedule-service/internal/service/bookings"
	"github.com/massage-bot/schedule-service/internal/service/bookings/models"
)

const (
	msgInvalidDate   = "некорректная дата, ожидается YYYY-MM-DD"
	msgInvalidStatus = "неизвестный статус бронирования"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/admin/bookings
// Все параметры фильтра опциональны
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &models.ListBookingsRequest{}

	if statusStr := query.Get("status"); statusStr != "" {
		req.Status = &statusStr
	}

	if startStr := query.Get("start_date"); startStr != "" {
		startDate, err := time.Parse(domain.DateFormat, startStr)
		if err != nil {
			h.logger.Warn("GET /admin/bookings - Invalid start_date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.StartDate = &startDate
	}

	if endStr := query.Get("end_date"); endStr != "" {
		endDate, err := time.Parse(domain.DateFormat, endStr)
		if err != nil {
			h.logger.Warn("GET /admin/bookings - Invalid end_date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.EndDate = &endDate
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrInvalidInput):
			h.logger.Warn("GET /admin/bookings - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)
		default:
			h.logger.Error("GET /admin/bookings - Failed to list bookings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
