package book_slot

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("book_slot: slot not found")

	// ErrSlotNotAvailable возвращается, когда слот уже занят или заблокирован
	ErrSlotNotAvailable = errors.New("book_slot: slot is not available")

	// ErrInsufficientFunds возвращается, когда на балансе недостаточно монет
	// Транзакция откатывается целиком - списание не происходит
	ErrInsufficientFunds = errors.New("book_slot: insufficient funds")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("book_slot: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("book_slot: internal error")
)
