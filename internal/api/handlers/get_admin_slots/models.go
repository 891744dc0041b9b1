package get_admin_slots

import (
	"github.com/massage-bot/schedule-service/internal/domain"
	"github.com/massage-bot/schedule-service/internal/service/slots/models"
)

// SlotItem слот в админской выдаче: виден статус и ссылка на бронирование
type SlotItem struct {
	ID            int64   `json:"id"`
	Date          string  `json:"date"`
	StartTime     string  `json:"start_time"`
	EndTime       string  `json:"end_time"`
	Status        string  `json:"status"`
	BookingID     *int64  `json:"booking_id,omitempty"`
	GoogleEventID *string `json:"google_event_id,omitempty"`
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
			ID:            slot.ID,
			Date:          slot.Date.Format(domain.DateFormat),
			StartTime:     slot.StartTime.String(),
			EndTime:       slot.EndTime.String(),
			Status:        slot.Status,
			BookingID:     slot.BookingID,
			GoogleEventID: slot.GoogleEventID,
		}
	}
	return &SlotsResponse{Success: true, Slots: slots}
}
