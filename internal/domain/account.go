package domain

import "time"

// Account represents a customer's prepaid coin balance
// Баланс изменяется только координатором бронирований:
// списание в паре с созданием бронирования, возврат - с отменой
type Account struct {
	TgUserID     int64
	CoinsBalance int
	UpdatedAt    time.Time
}

// HasCoins returns true if the balance covers the given amount
func (a *Account) HasCoins(amount int) bool {
	return a.CoinsBalance >= amount
}
