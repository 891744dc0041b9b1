package sync_calendar

import (
	"context"
	"time"

	"github.com/massage-bot/schedule-service/internal/domain"
	"github.com/massage-bot/schedule-service/internal/integrations/gcal"
	"github.com/massage-bot/schedule-service/pkg/types"
)

// CalendarClient интерфейс клиента внешнего календаря
type CalendarClient interface {
	GetEvents(ctx context.Context, startDate, endDate time.Time) ([]gcal.Event, error)
}

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	Create(ctx context.Context, slot *domain.Slot) (*domain.Slot, error)
	GetByGoogleEventID(ctx context.Context, eventID string) (*domain.Slot, error)
	UpdateTimes(ctx context.Context, id int64, startTime, endTime types.TimeString) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
