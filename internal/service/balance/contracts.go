package balance

import "context"

// AccountRepository интерфейс репозитория балансов
type AccountRepository interface {
	GetBalance(ctx context.Context, tgUserID int64) (int, error)
	Credit(ctx context.Context, tgUserID int64, amount int) (int, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
