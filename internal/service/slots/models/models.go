package models

import (
	"time"

	"github.com/massage-bot/schedule-service/internal/domain"
	"github.com/massage-bot/schedule-service/pkg/types"
)

// CreateSlotRequest запрос на создание одиночного слота
type CreateSlotRequest struct {
	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
	Status    domain.SlotStatus // по умолчанию available
}

// ListSlotsRequest запрос на выборку слотов за период
type ListSlotsRequest struct {
	StartDate time.Time
	EndDate   time.Time
	// OnlyAvailable true для клиентской выдачи - возвращаются только свободные слоты
	OnlyAvailable bool
}

// SlotResponse модель слота для вызывающей стороны
type SlotResponse struct {
	ID            int64
	Date          time.Time
	StartTime     types.TimeString
	EndTime       types.TimeString
	Status        string
	BookingID     *int64
	GoogleEventID *string
}

// SlotListResponse список слотов
type SlotListResponse struct {
	Slots []*SlotResponse
}

// FromDomainSlot конвертирует domain.Slot в SlotResponse
func FromDomainSlot(slot *domain.Slot) *SlotResponse {
	return &SlotResponse{
		ID:            slot.ID,
		Date:          slot.Date,
		StartTime:     slot.StartTime,
		EndTime:       slot.EndTime,
		Status:        string(slot.Status),
		BookingID:     slot.BookingID,
		GoogleEventID: slot.GoogleEventID,
	}
}

// FromDomainSlotList конвертирует слайс domain.Slot в SlotListResponse
func FromDomainSlotList(slots []*domain.Slot) *SlotListResponse {
	result := make([]*SlotResponse, len(slots))
	for i, slot := range slots {
		result[i] = FromDomainSlot(slot)
	}
	return &SlotListResponse{Slots: result}
}
