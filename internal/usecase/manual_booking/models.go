package manual_booking

import (
	"time"

	"github.com/massage-bot/schedule-service/pkg/types"
)

// Request модель запроса на ручное бронирование (walk-in)
// Контактные поля могут быть пустыми - администратор дозаполняет их позже
type Request struct {
	SlotID      int64
	ClientName  *string
	ClientPhone *string
}

// Response модель ответа с созданным ручным бронированием
type Response struct {
	BookingID   int64
	SlotID      int64
	Date        time.Time
	StartTime   types.TimeString
	EndTime     types.TimeString
	ClientName  *string
	ClientPhone *string
	CreatedAt   time.Time
}
