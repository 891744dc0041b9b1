package top_up_balance

import "context"

type BalanceService interface {
	TopUp(ctx context.Context, tgUserID int64, amount int) (int, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
