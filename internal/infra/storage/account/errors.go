package account

import "errors"

var (
	// ErrAccountNotFound возвращается, когда аккаунт не найден
	ErrAccountNotFound = errors.New("account.repository: account not found")

	// ErrInsufficientFunds возвращается, когда на балансе недостаточно монет
	ErrInsufficientFunds = errors.New("account.repository: insufficient funds")

	// ErrInvalidAmount возвращается при неположительной сумме операции
	ErrInvalidAmount = errors.New("account.repository: amount must be positive")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("account.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("account.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("account.repository: failed to scan row")
)
