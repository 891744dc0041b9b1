package update_booking_info

import (
	"github.com/massage-bot/schedule-service/internal/domain"
	"github.com/massage-bot/schedule-service/internal/service/bookings/models"
)

// UpdateBookingInfoRequest HTTP request model
// Отсутствующее поле остается без изменений
type UpdateBookingInfoRequest struct {
	ClientName  *string `json:"client_name,omitempty"`
	ClientPhone *string `json:"client_phone,omitempty"`
}

// BookingInfo бронирование после обновления
type BookingInfo struct {
	BookingID   int64   `json:"booking_id"`
	SlotID      int64   `json:"slot_id"`
	Date        string  `json:"date"`
	StartTime   string  `json:"start_time"`
	EndTime     string  `json:"end_time"`
	Status      string  `json:"status"`
	ClientName  *string `json:"client_name,omitempty"`
	ClientPhone *string `json:"client_phone,omitempty"`
}

// UpdateBookingInfoResponse HTTP response model
type UpdateBookingInfoResponse struct {
	Success bool        `json:"success"`
	Booking BookingInfo `json:"booking"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.BookingResponse) *UpdateBookingInfoResponse {
	return &UpdateBookingInfoResponse{
		Success: true,
		Booking: BookingInfo{
			BookingID:   resp.ID,
			SlotID:      resp.SlotID,
			Date:        resp.Date.Format(domain.DateFormat),
			StartTime:   resp.StartTime.String(),
			EndTime:     resp.EndTime.String(),
			Status:      resp.Status,
			ClientName:  resp.ClientName,
			ClientPhone: resp.ClientPhone,
		},
	}
}
