package sync_calendar

import (
	"time"

	"github.com/massage-bot/schedule-service/internal/domain"
	syncCalendar "github.com/massage-bot/schedule-service/internal/usecase/sync_calendar"
)

// SyncRequest HTTP request model
type SyncRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// SyncStats статистика импорта событий
type SyncStats struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
	Skipped int `json:"skipped"`
}

// SyncResponse HTTP response model
type SyncResponse struct {
	Success bool      `json:"success"`
	Stats   SyncStats `json:"stats"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *SyncRequest) ToUseCaseRequest() (*syncCalendar.Request, error) {
	startDate, err := time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return nil, err
	}

	endDate, err := time.Parse(domain.DateFormat, r.EndDate)
	if err != nil {
		return nil, err
	}

	return &syncCalendar.Request{
		StartDate: startDate,
		EndDate:   endDate,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *syncCalendar.Response) *SyncResponse {
	return &SyncResponse{
		Success: true,
		Stats: SyncStats{
			Created: resp.Created,
			Updated: resp.Updated,
			Skipped: resp.Skipped,
		},
	}
}
