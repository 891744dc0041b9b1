package cancel_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("cancel_booking: booking not found")

	// ErrCannotCancel возвращается, когда бронирование уже отменено или выполнено
	ErrCannotCancel = errors.New("cancel_booking: booking cannot be cancelled")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("cancel_booking: internal error")
)
