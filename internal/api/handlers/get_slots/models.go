package get_slots

import (
	"github.com/massage-bot/schedule-service/internal/domain"
	"github.com/massage-bot/schedule-service/internal/service/slots/models"
)

// SlotItem слот клиентской выдачи
type SlotItem struct {
	ID        int64  `json:"id"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// SlotsResponse HTTP response model
type SlotsResponse struct {
	Success bool       `json:"success"`
	Slots   []SlotItem `json:"slots"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.SlotListResponse) *SlotsResponse {
	slots := make([]SlotItem, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = SlotItem{
			ID:        slot.ID,
			Date:      slot.Date.Format(domain.DateFormat),
			StartTime: slot.StartTime.String(),
			EndTime:   slot.EndTime.String(),
		}
	}
	return &SlotsResponse{Success: true, Slots: slots}
}
