package balance

import "errors"

var (
	// ErrInvalidAmount возвращается при неположительной сумме пополнения
	ErrInvalidAmount = errors.New("balance.service: amount must be positive")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("balance.service: internal error")
)
