package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("bookings.service: booking not found")

	// ErrNothingToUpdate возвращается, когда не передано ни одного поля
	ErrNothingToUpdate = errors.New("bookings.service: nothing to update")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("bookings.service: invalid input data")

	// ErrCannotComplete возвращается, когда бронирование нельзя отметить выполненным
	ErrCannotComplete = errors.New("bookings.service: booking cannot be completed")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings.service: internal error")
)
