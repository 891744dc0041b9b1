package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Default configuration values
const (
	// DefaultSlotPriceCoins стоимость одного слота в монетах
	DefaultSlotPriceCoins = 1
)

// Business validation constants
const (
	MinWeekday = 0 // Sunday (time.Weekday)
	MaxWeekday = 6 // Saturday

	// MaxBulkRangeDays максимальный размер диапазона массовой генерации слотов
	MaxBulkRangeDays = 366

	MaxClientNameLength  = 200
	MaxClientPhoneLength = 32
)
