package update_booking_info

import (
	"context"

	"github.com/massage-bot/schedule-service/internal/service/bookings/models"
)

type BookingsService interface {
	UpdateContactInfo(ctx context.Context, id int64, req *models.UpdateContactInfoRequest) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
