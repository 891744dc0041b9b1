package toggle_slot

import (
	"time"

	"github.com/massage-bot/schedule-service/internal/domain"
	"github.com/massage-bot/schedule-service/pkg/types"
)

// Request модель запроса на смену статуса слота
type Request struct {
	SlotID       int64
	TargetStatus domain.SlotStatus // available | blocked
}

// Response модель ответа со слотом после перехода
type Response struct {
	SlotID    int64
	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
	Status    string

	// CancelledBookingID заполнен, если переход освободил занятый слот
	CancelledBookingID *int64
	// RefundedCoins количество монет, возвращенных клиенту при освобождении
	RefundedCoins int
}
