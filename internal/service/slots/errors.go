package slots

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("slots.service: slot not found")

	// ErrSlotAlreadyExists возвращается при создании дубликата слота
	ErrSlotAlreadyExists = errors.New("slots.service: slot already exists")

	// ErrSlotBooked возвращается при попытке удалить занятый слот
	// Сначала администратор должен освободить слот (отменить бронирование)
	ErrSlotBooked = errors.New("slots.service: slot is booked")

	// ErrInvalidTimeRange возвращается, когда время начала не раньше времени конца
	ErrInvalidTimeRange = errors.New("slots.service: invalid time range")

	// ErrInvalidDateRange возвращается при некорректном периоде выборки
	ErrInvalidDateRange = errors.New("slots.service: invalid date range")

	// ErrInvalidStatus возвращается при неизвестном статусе слота
	ErrInvalidStatus = errors.New("slots.service: invalid slot status")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("slots.service: internal error")
)
