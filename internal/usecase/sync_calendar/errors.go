package sync_calendar

import "errors"

var (
	// ErrInvalidDateRange возвращается при некорректном периоде синхронизации
	ErrInvalidDateRange = errors.New("sync_calendar: invalid date range")

	// ErrCalendarUnavailable возвращается, когда календарь не отдал события
	ErrCalendarUnavailable = errors.New("sync_calendar: calendar unavailable")
)
