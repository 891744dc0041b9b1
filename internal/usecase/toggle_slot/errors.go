package toggle_slot

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("toggle_slot: slot not found")

	// ErrInvalidTransition возвращается при недопустимой смене статуса
	// (например, попытке заблокировать занятый слот)
	ErrInvalidTransition = errors.New("toggle_slot: invalid status transition")

	// ErrInvalidStatus возвращается при неизвестном целевом статусе
	ErrInvalidStatus = errors.New("toggle_slot: invalid target status")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("toggle_slot: internal error")
)
