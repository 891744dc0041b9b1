package create_manual_booking

import (
	"github.com/massage-bot/schedule-service/internal/domain"
	manualBooking "github.com/massage-bot/schedule-service/internal/usecase/manual_booking"
)

// ManualBookingRequest HTTP request model
// Контактные данные опциональны и могут быть заполнены позже
type ManualBookingRequest struct {
	SlotID      int64   `json:"slot_id"`
	ClientName  *string `json:"client_name,omitempty"`
	ClientPhone *string `json:"client_phone,omitempty"`
}

// BookingInfo детали созданного бронирования
type BookingInfo struct {
	BookingID   int64   `json:"booking_id"`
	SlotID      int64   `json:"slot_id"`
	Date        string  `json:"date"`
	StartTime   string  `json:"start_time"`
	EndTime     string  `json:"end_time"`
	ClientName  *string `json:"client_name,omitempty"`
	ClientPhone *string `json:"client_phone,omitempty"`
}

// ManualBookingResponse HTTP response model
type ManualBookingResponse struct {
	Success bool        `json:"success"`
	Booking BookingInfo `json:"booking"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *manualBooking.Response) *ManualBookingResponse {
	return &ManualBookingResponse{
		Success: true,
		Booking: BookingInfo{
			BookingID:   resp.BookingID,
			SlotID:      resp.SlotID,
			Date:        resp.Date.Format(domain.DateFormat),
			StartTime:   resp.StartTime.String(),
			EndTime:     resp.EndTime.String(),
			ClientName:  resp.ClientName,
			ClientPhone: resp.ClientPhone,
		},
	}
}
