package book_slot

import (
	"time"

	"github.com/massage-bot/schedule-service/pkg/types"
)

// Request модель запроса на бронирование слота клиентом
type Request struct {
	TgUserID int64 // Telegram ID клиента
	SlotID   int64 // ID выбранного слота
}

// Response модель ответа с созданным бронированием
type Response struct {
	BookingID  int64
	SlotID     int64
	Date       time.Time
	StartTime  types.TimeString
	EndTime    types.TimeString
	CoinsSpent int
	NewBalance int
	CreatedAt  time.Time
}
