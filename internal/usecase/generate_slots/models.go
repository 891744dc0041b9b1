package generate_slots

import (
	"time"

	"github.com/massage-bot/schedule-service/pkg/types"
)

// TimeRange интервал времени внутри дня
type TimeRange struct {
	StartTime types.TimeString
	EndTime   types.TimeString
}

// Request параметры массовой генерации слотов
// Weekdays нумеруются как time.Weekday: 0 - воскресенье, 6 - суббота
type Request struct {
	StartDate  time.Time
	EndDate    time.Time
	Weekdays   []int
	TimeRanges []TimeRange
}

// Response итог генерации
// Created - сколько слотов создано, Skipped - сколько пропущено из-за
// уже существующих слотов с той же идентичностью, Errors - сколько
// попыток завершилось ошибкой
type Response struct {
	Created int
	Skipped int
	Errors  int
}
