package manual_booking

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("manual_booking: slot not found")

	// ErrSlotNotAvailable возвращается, когда слот уже занят или заблокирован
	ErrSlotNotAvailable = errors.New("manual_booking: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("manual_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("manual_booking: internal error")
)
