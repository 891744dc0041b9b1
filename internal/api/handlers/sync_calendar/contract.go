package sync_calendar

import (
	"context"

	syncCalendar "github.com/massage-bot/schedule-service/internal/usecase/sync_calendar"
)

type SyncCalendarUseCase interface {
	Execute(ctx context.Context, req *syncCalendar.Request) (*syncCalendar.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
