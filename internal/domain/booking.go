package domain

import (
	"time"

	"github.com/massage-bot/schedule-service/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	BookingConfirmed BookingStatus = "confirmed"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

// BookingSource describes how the booking was created
type BookingSource string

const (
	// SourceCustomer бронирование создано клиентом через мини-приложение (с оплатой монетами)
	SourceCustomer BookingSource = "customer"
	// SourceManual бронирование создано администратором вручную (walk-in, без оплаты)
	SourceManual BookingSource = "manual"
)

// Booking represents an occupation of exactly one slot
type Booking struct {
	ID     int64
	SlotID int64

	// TgUserID Telegram ID клиента; nil для ручных бронирований
	TgUserID *int64

	// ClientName и ClientPhone могут быть пустыми для ручных бронирований -
	// администратор заполняет их позже
	ClientName  *string
	ClientPhone *string

	Status BookingStatus
	Source BookingSource

	// CoinsSpent количество списанных монет (0 для ручных бронирований)
	CoinsSpent int

	// Денормализованные данные слота для выдачи списков без join на клиенте
	SlotDate      time.Time
	SlotStartTime types.TimeString
	SlotEndTime   types.TimeString

	CreatedAt   time.Time
	UpdatedAt   time.Time
	CancelledAt *time.Time
}

// IsActive returns true if the booking still occupies its slot
func (b *Booking) IsActive() bool {
	return b.Status != BookingCancelled
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == BookingCancelled
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == BookingConfirmed
}

// CanBeCompleted returns true if the booking can be marked completed
func (b *Booking) CanBeCompleted() bool {
	return b.Status == BookingConfirmed
}

// IsManual returns true for admin-created bookings
func (b *Booking) IsManual() bool {
	return b.Source == SourceManual
}

// ValidBookingStatus returns true if the string is a known booking status
func ValidBookingStatus(s string) bool {
	switch BookingStatus(s) {
	case BookingConfirmed, BookingCompleted, BookingCancelled:
		return true
	default:
		return false
	}
}

// BookingsFilter фильтр для выборки бронирований
type BookingsFilter struct {
	Status    *BookingStatus // nil - все статусы
	StartDate *time.Time     // Начало периода (опционально)
	EndDate   *time.Time     // Конец периода включительно (опционально)
}
