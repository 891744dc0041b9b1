package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlot_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name   string
		from   SlotStatus
		to     SlotStatus
		wantOK bool
	}{
		{name: "available to booked", from: SlotAvailable, to: SlotBooked, wantOK: true},
		{name: "available to blocked", from: SlotAvailable, to: SlotBlocked, wantOK: true},
		{name: "blocked to available", from: SlotBlocked, to: SlotAvailable, wantOK: true},
		{name: "booked to available", from: SlotBooked, to: SlotAvailable, wantOK: true},
		{name: "booked to blocked", from: SlotBooked, to: SlotBlocked, wantOK: false},
		{name: "blocked to booked", from: SlotBlocked, to: SlotBooked, wantOK: false},
		{name: "available to available", from: SlotAvailable, to: SlotAvailable, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slot := &Slot{Status: tt.from}
			assert.Equal(t, tt.wantOK, slot.CanTransitionTo(tt.to))
		})
	}
}

func TestSlot_CanBeDeleted(t *testing.T) {
	assert.True(t, (&Slot{Status: SlotAvailable}).CanBeDeleted())
	assert.True(t, (&Slot{Status: SlotBlocked}).CanBeDeleted())
	assert.False(t, (&Slot{Status: SlotBooked}).CanBeDeleted())
}

func TestValidSlotStatus(t *testing.T) {
	assert.True(t, ValidSlotStatus("available"))
	assert.True(t, ValidSlotStatus("booked"))
	assert.True(t, ValidSlotStatus("blocked"))
	assert.False(t, ValidSlotStatus("free"))
	assert.False(t, ValidSlotStatus(""))
}

func TestBooking_Lifecycle(t *testing.T) {
	confirmed := &Booking{Status: BookingConfirmed}
	assert.True(t, confirmed.IsActive())
	assert.True(t, confirmed.CanBeCancelled())
	assert.True(t, confirmed.CanBeCompleted())

	completed := &Booking{Status: BookingCompleted}
	assert.False(t, completed.CanBeCompleted())
	assert.False(t, completed.CanBeCancelled())

	cancelled := &Booking{Status: BookingCancelled}
	assert.True(t, cancelled.IsCancelled())
	assert.False(t, cancelled.IsActive())
	assert.False(t, cancelled.CanBeCancelled())
}
