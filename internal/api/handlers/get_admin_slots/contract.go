package get_admin_slots

import (
	"context"

	"github.com/massage-bot/schedule-service/internal/service/slots/models"
)

type SlotsService interface {
	List(ctx context.Context, req *models.ListSlotsRequest) (*models.SlotListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
