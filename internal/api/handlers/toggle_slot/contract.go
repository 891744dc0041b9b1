package toggle_slot

import (
	"context"

	toggleSlot "github.com/massage-bot/schedule-service/internal/usecase/toggle_slot"
)

type ToggleSlotUseCase interface {
	Execute(ctx context.Context, req *toggleSlot.Request) (*toggleSlot.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
