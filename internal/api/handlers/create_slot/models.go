package create_slot

import (
	"time"

	"github.com/massage-bot/schedule-service/internal/domain"
	"github.com/massage-bot/schedule-service/internal/service/slots/models"
	"github.com/massage-bot/schedule-service/pkg/types"
)

// CreateSlotRequest HTTP request model
type CreateSlotRequest struct {
	Date      string `json:"date"`       // "2024-12-20"
	StartTime string `json:"start_time"` // "10:00"
	EndTime   string `json:"end_time"`   // "11:00"
	Status    string `json:"status,omitempty"`
}

// SlotResponse HTTP response model
type SlotResponse struct {
	Success   bool   `json:"success"`
	ID        int64  `json:"id"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Status    string `json:"status"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateSlotRequest) ToServiceRequest() (*models.CreateSlotRequest, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	status := domain.SlotAvailable
	if r.Status != "" {
		status = domain.SlotStatus(r.Status)
	}

	return &models.CreateSlotRequest{
		Date:      date,
		StartTime: startTime,
		EndTime:   endTime,
		Status:    status,
	}, nil
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.SlotResponse) *SlotResponse {
	return &SlotResponse{
		Success:   true,
		ID:        resp.ID,
		Date:      resp.Date.Format(domain.DateFormat),
		StartTime: resp.StartTime.String(),
		EndTime:   resp.EndTime.String(),
		Status:    resp.Status,
	}
}
