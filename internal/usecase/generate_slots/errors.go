package generate_slots

import "errors"

var (
	// ErrInvalidDateRange возвращается при некорректном диапазоне дат
	ErrInvalidDateRange = errors.New("generate_slots: invalid date range")

	// ErrInvalidWeekday возвращается при дне недели вне диапазона 0..6
	ErrInvalidWeekday = errors.New("generate_slots: invalid weekday")

	// ErrInvalidTimeRange возвращается при некорректном интервале времени
	ErrInvalidTimeRange = errors.New("generate_slots: invalid time range")

	// ErrInvalidInput возвращается при пустом списке дней или интервалов
	ErrInvalidInput = errors.New("generate_slots: invalid input")
)
