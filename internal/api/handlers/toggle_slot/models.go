package toggle_slot

import (
	"github.com/massage-bot/schedule-service/internal/domain"
	toggleSlot "github.com/massage-bot/schedule-service/internal/usecase/toggle_slot"
)

// ToggleSlotRequest HTTP request model
type ToggleSlotRequest struct {
	Status string `json:"status"` // "available" | "blocked"
}

// ToggleSlotResponse HTTP response model
type ToggleSlotResponse struct {
	Success   bool   `json:"success"`
	ID        int64  `json:"id"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Status    string `json:"status"`

	CancelledBookingID *int64 `json:"cancelled_booking_id,omitempty"`
	RefundedCoins      int    `json:"refunded_coins,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *toggleSlot.Response) *ToggleSlotResponse {
	return &ToggleSlotResponse{
		Success:            true,
		ID:                 resp.SlotID,
		Date:               resp.Date.Format(domain.DateFormat),
		StartTime:          resp.StartTime.String(),
		EndTime:            resp.EndTime.String(),
		Status:             resp.Status,
		CancelledBookingID: resp.CancelledBookingID,
		RefundedCoins:      resp.RefundedCoins,
	}
}
