package get_bookings

import (
	"time"

	"github.com/massage-bot/schedule-service/internal/domain"
	"github.com/massage-bot/schedule-service/internal/service/bookings/models"
)

// BookingItem бронирование в админской выдаче
type BookingItem struct {
	ID          int64   `json:"id"`
	SlotID      int64   `json:"slot_id"`
	TgUserID    *int64  `json:"tg_user_id,omitempty"`
	ClientName  *string `json:"client_name,omitempty"`
	ClientPhone *string `json:"client_phone,omitempty"`
	Status      string  `json:"status"`
	Source      string  `json:"source"`
	CoinsSpent  int     `json:"coins_spent"`
	Date        string  `json:"date"`
	StartTime   string  `json:"start_time"`
	EndTime     string  `json:"end_time"`
	CreatedAt   string  `json:"created_at"`
	CancelledAt *string `json:"cancelled_at,omitempty"`
}

// BookingsResponse HTTP response model
type BookingsResponse struct {
	Success  bool          `json:"success"`
	Bookings []BookingItem `json:"bookings"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.BookingListResponse) *BookingsResponse {
	bookings := make([]BookingItem, len(resp.Bookings))
	for i, booking := range resp.Bookings {
		item := BookingItem{
			ID:          booking.ID,
			SlotID:      booking.SlotID,
			TgUserID:    booking.TgUserID,
			ClientName:  booking.ClientName,
			ClientPhone: booking.ClientPhone,
			Status:      booking.Status,
			Source:      booking.Source,
			CoinsSpent:  booking.CoinsSpent,
			Date:        booking.Date.Format(domain.DateFormat),
			StartTime:   booking.StartTime.String(),
			EndTime:     booking.EndTime.String(),
			CreatedAt:   booking.CreatedAt.Format(time.RFC3339),
		}

		if booking.CancelledAt != nil {
			cancelledAt := booking.CancelledAt.Format(time.RFC3339)
			item.CancelledAt = &cancelledAt
		}

		bookings[i] = item
	}
	return &BookingsResponse{Success: true, Bookings: bookings}
}
