package models

import (
	"fmt"
	"time"

	"github.com/massage-bot/schedule-service/internal/domain"
	"github.com/massage-bot/schedule-service/pkg/types"
)

// ListBookingsRequest запрос на выборку бронирований
type ListBookingsRequest struct {
	Status    *string    // "confirmed" | "completed" | "cancelled", nil - все
	StartDate *time.Time // Начало периода (опционально)
	EndDate   *time.Time // Конец периода включительно (опционально)
}

// UpdateContactInfoRequest частичное обновление контактных данных
// nil поле остается без изменений
type UpdateContactInfoRequest struct {
	ClientName  *string
	ClientPhone *string
}

// BookingResponse модель бронирования для вызывающей стороны
type BookingResponse struct {
	ID          int64
	SlotID      int64
	TgUserID    *int64
	ClientName  *string
	ClientPhone *string
	Status      string
	Source      string
	CoinsSpent  int
	Date        time.Time
	StartTime   types.TimeString
	EndTime     types.TimeString
	CreatedAt   time.Time
	CancelledAt *time.Time
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []*BookingResponse
}

// ToDomainFilter конвертирует запрос в domain фильтр
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return domain.BookingsFilter{}, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// ToDomainBookingStatus валидирует и конвертирует строковый статус
func ToDomainBookingStatus(s string) (domain.BookingStatus, error) {
	if !domain.ValidBookingStatus(s) {
		return "", fmt.Errorf("unknown booking status %q", s)
	}
	return domain.BookingStatus(s), nil
}

// FromDomainBooking конвертирует domain.Booking в BookingResponse
func FromDomainBooking(booking *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:          booking.ID,
		SlotID:      booking.SlotID,
		TgUserID:    booking.TgUserID,
		ClientName:  booking.ClientName,
		ClientPhone: booking.ClientPhone,
		Status:      string(booking.Status),
		Source:      string(booking.Source),
		CoinsSpent:  booking.CoinsSpent,
		Date:        booking.SlotDate,
		StartTime:   booking.SlotStartTime,
		EndTime:     booking.SlotEndTime,
		CreatedAt:   booking.CreatedAt,
		CancelledAt: booking.CancelledAt,
	}
}

// FromDomainBookingList конвертирует слайс domain.Booking в BookingListResponse
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	result := make([]*BookingResponse, len(bookings))
	for i, booking := range bookings {
		result[i] = FromDomainBooking(booking)
	}
	return &BookingListResponse{Bookings: result}
}
