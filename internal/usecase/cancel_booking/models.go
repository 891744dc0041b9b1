package cancel_booking

// Response результат отмены бронирования
type Response struct {
	BookingID     int64
	SlotID        int64
	RefundedCoins int
}
