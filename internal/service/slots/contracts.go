package slots

import (
	"context"
	"time"

	"github.com/massage-bot/schedule-service/internal/domain"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	Create(ctx context.Context, slot *domain.Slot) (*domain.Slot, error)
	GetByID(ctx context.Context, id int64) (*domain.Slot, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.Slot, error)
	ListByDateRange(ctx context.Context, startDate, endDate time.Time, status *domain.SlotStatus) ([]*domain.Slot, error)
	Delete(ctx context.Context, id int64) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
