package get_balance

import "context"

type BalanceService interface {
	GetBalance(ctx context.Context, tgUserID int64) (int, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
