package book_slot

import (
	"github.com/massage-bot/schedule-service/internal/domain"
	bookSlot "github.com/massage-bot/schedule-service/internal/usecase/book_slot"
)

// BookSlotRequest HTTP request model
type BookSlotRequest struct {
	SlotID int64 `json:"slot_id"`
}

// BookingInfo детали созданного бронирования
type BookingInfo struct {
	BookingID  int64  `json:"booking_id"`
	SlotID     int64  `json:"slot_id"`
	Date       string `json:"date"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	CoinsSpent int    `json:"coins_spent"`
	NewBalance int    `json:"new_balance"`
}

// BookSlotResponse HTTP response model
type BookSlotResponse struct {
	Success bool        `json:"success"`
	Booking BookingInfo `json:"booking"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *bookSlot.Response) *BookSlotResponse {
	return &BookSlotResponse{
		Success: true,
		Booking: BookingInfo{
			BookingID:  resp.BookingID,
			SlotID:     resp.SlotID,
			Date:       resp.Date.Format(domain.DateFormat),
			StartTime:  resp.StartTime.String(),
			EndTime:    resp.EndTime.String(),
			CoinsSpent: resp.CoinsSpent,
			NewBalance: resp.NewBalance,
		},
	}
}
