package sync_calendar

import "time"

// Request период синхронизации с внешним календарем
type Request struct {
	StartDate time.Time
	EndDate   time.Time
}

// Response статистика синхронизации
type Response struct {
	Created int
	Updated int
	Skipped int
}
