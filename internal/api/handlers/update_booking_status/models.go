package update_booking_status

import (
	"github.com/massage-bot/schedule-service/internal/service/bookings/models"
	cancelBooking "github.com/massage-bot/schedule-service/internal/usecase/cancel_booking"
)

// UpdateBookingStatusRequest HTTP request model
type UpdateBookingStatusRequest struct {
	Status string `json:"status"` // "completed" | "cancelled"
}

// UpdateBookingStatusResponse HTTP response model
type UpdateBookingStatusResponse struct {
	Success   bool   `json:"success"`
	BookingID int64  `json:"booking_id"`
	Status    string `json:"status"`

	// RefundedCoins заполняется при отмене клиентского бронирования
	RefundedCoins int `json:"refunded_coins,omitempty"`
}

// FromCompleteResponse формирует ответ после выполнения бронирования
func FromCompleteResponse(resp *models.BookingResponse) *UpdateBookingStatusResponse {
	return &UpdateBookingStatusResponse{
		Success:   true,
		BookingID: resp.ID,
		Status:    resp.Status,
	}
}

// FromCancelResponse формирует ответ после отмены бронирования
func FromCancelResponse(resp *cancelBooking.Response) *UpdateBookingStatusResponse {
	return &UpdateBookingStatusResponse{
		Success:       true,
		BookingID:     resp.BookingID,
		Status:        "cancelled",
		RefundedCoins: resp.RefundedCoins,
	}
}
