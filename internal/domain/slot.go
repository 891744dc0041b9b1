package domain

import (
	"time"

	"github.com/massage-bot/schedule-service/pkg/types"
)

// SlotStatus represents the status of a time slot
type SlotStatus string

const (
	SlotAvailable SlotStatus = "available"
	SlotBooked    SlotStatus = "booked"
	SlotBlocked   SlotStatus = "blocked"
)

// Slot represents a bookable time interval on a given date
// Идентичность слота: (Date, StartTime, EndTime) уникальна
type Slot struct {
	ID        int64
	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
	Status    SlotStatus

	// BookingID установлен тогда и только тогда, когда Status == SlotBooked
	BookingID *int64

	// GoogleEventID непрозрачная ссылка на событие внешнего календаря
	// Заполняется только синхронизацией, движок её не интерпретирует
	GoogleEventID *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAvailable returns true if the slot can be booked
func (s *Slot) IsAvailable() bool {
	return s.Status == SlotAvailable
}

// IsBooked returns true if the slot is occupied by a booking
func (s *Slot) IsBooked() bool {
	return s.Status == SlotBooked
}

// IsBlocked returns true if the slot is blocked by the admin
func (s *Slot) IsBlocked() bool {
	return s.Status == SlotBlocked
}

// CanBeDeleted returns true if the slot can be deleted without releasing a booking first
func (s *Slot) CanBeDeleted() bool {
	return s.Status != SlotBooked
}

// CanTransitionTo returns true if the status change is legal:
// available -> booked, available <-> blocked, booked/blocked -> available
func (s *Slot) CanTransitionTo(target SlotStatus) bool {
	switch s.Status {
	case SlotAvailable:
		return target == SlotBooked || target == SlotBlocked
	case SlotBooked:
		return target == SlotAvailable
	case SlotBlocked:
		return target == SlotAvailable
	default:
		return false
	}
}

// ValidSlotStatus returns true if the string is a known slot status
func ValidSlotStatus(s string) bool {
	switch SlotStatus(s) {
	case SlotAvailable, SlotBooked, SlotBlocked:
		return true
	default:
		return false
	}
}
