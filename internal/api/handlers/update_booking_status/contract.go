package update_booking_status

import (
	"context"

	"github.com/massage-bot/schedule-service/internal/service/bookings/models"
	cancelBooking "github.com/massage-bot/schedule-service/internal/usecase/cancel_booking"
)

type BookingsService interface {
	Complete(ctx context.Context, id int64) (*models.BookingResponse, error)
}

type CancelBookingUseCase interface {
	Execute(ctx context.Context, bookingID int64) (*cancelBooking.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
