package book_slot

import (
	"context"

	"github.com/massage-bot/schedule-service/internal/domain"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.Slot, error)
	SetStatus(ctx context.Context, id int64, status domain.SlotStatus, bookingID *int64) error
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// AccountRepository интерфейс репозитория балансов
type AccountRepository interface {
	Debit(ctx context.Context, tgUserID int64, amount int) (int, error)
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
