package book_slot

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/massage-bot/schedule-service/internal/domain"
	accountStorage "github.com/massage-bot/schedule-service/internal/infra/storage/account"
	slotStorage "github.com/massage-bot/schedule-service/internal/infra/storage/slot"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// serialTxManager последовательно выполняет транзакции, имитируя
// сериализуемую изоляцию и блокировку строки слота
type serialTxManager struct {
	mu sync.Mutex
}

func (m *serialTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
}

type fakeSlotRepo struct {
	mu    sync.Mutex
	slots map[int64]*domain.Slot
}

func newFakeSlotRepo(slots ...*domain.Slot) *fakeSlotRepo {
	repo := &fakeSlotRepo{slots: make(map[int64]*domain.Slot)}
	for _, slot := range slots {
		copied := *slot
		repo.slots[slot.ID] = &copied
	}
	return repo
}

func (r *fakeSlotRepo) GetByIDForUpdate(_ context.Context, id int64) (*domain.Slot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	slot, ok := r.slots[id]
	if !ok {
		return nil, slotStorage.ErrSlotNotFound
	}
	copied := *slot
	return &copied, nil
}

func (r *fakeSlotRepo) SetStatus(_ context.Context, id int64, status domain.SlotStatus, bookingID *int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	slot, ok := r.slots[id]
	if !ok {
		return slotStorage.ErrSlotNotFound
	}
	slot.Status = status
	slot.BookingID = bookingID
	return nil
}

type fakeBookingRepo struct {
	mu       sync.Mutex
	nextID   int64
	bookings map[int64]*domain.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[int64]*domain.Booking)}
}

func (r *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	copied := *booking
	copied.ID = r.nextID
	copied.CreatedAt = time.Now()
	r.bookings[copied.ID] = &copied
	return &copied, nil
}

type fakeAccountRepo struct {
	mu       sync.Mutex
	balances map[int64]int
}

func newFakeAccountRepo(balances map[int64]int) *fakeAccountRepo {
	return &fakeAccountRepo{balances: balances}
}

func (r *fakeAccountRepo) Debit(_ context.Context, tgUserID int64, amount int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.balances[tgUserID] < amount {
		return 0, accountStorage.ErrInsufficientFunds
	}
	r.balances[tgUserID] -= amount
	return r.balances[tgUserID], nil
}

func availableSlot(id int64) *domain.Slot {
	return &domain.Slot{
		ID:        id,
		Date:      time.Date(2024, 12, 20, 0, 0, 0, 0, time.UTC),
		StartTime: "10:00",
		EndTime:   "11:00",
		Status:    domain.SlotAvailable,
	}
}

func TestBookSlot_Success(t *testing.T) {
	slots := newFakeSlotRepo(availableSlot(1))
	bookings := newFakeBookingRepo()
	accounts := newFakeAccountRepo(map[int64]int{100: 3})

	uc := NewUseCase(slots, bookings, accounts, &serialTxManager{}, 1, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{TgUserID: 100, SlotID: 1})
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.BookingID)
	assert.Equal(t, int64(1), resp.SlotID)
	assert.Equal(t, 1, resp.CoinsSpent)
	assert.Equal(t, 2, resp.NewBalance)
	assert.Equal(t, "10:00", resp.StartTime.String())

	// Слот занят и связан с бронированием
	slot := slots.slots[1]
	assert.Equal(t, domain.SlotBooked, slot.Status)
	require.NotNil(t, slot.BookingID)
	assert.Equal(t, resp.BookingID, *slot.BookingID)

	booking := bookings.bookings[resp.BookingID]
	require.NotNil(t, booking)
	assert.Equal(t, domain.BookingConfirmed, booking.Status)
	assert.Equal(t, domain.SourceCustomer, booking.Source)
	assert.Equal(t, 1, booking.CoinsSpent)
}

func TestBookSlot_SlotNotFound(t *testing.T) {
	uc := NewUseCase(newFakeSlotRepo(), newFakeBookingRepo(),
		newFakeAccountRepo(map[int64]int{100: 3}), &serialTxManager{}, 1, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{TgUserID: 100, SlotID: 42})
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestBookSlot_SlotNotAvailable(t *testing.T) {
	blocked := availableSlot(1)
	blocked.Status = domain.SlotBlocked

	uc := NewUseCase(newFakeSlotRepo(blocked), newFakeBookingRepo(),
		newFakeAccountRepo(map[int64]int{100: 3}), &serialTxManager{}, 1, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{TgUserID: 100, SlotID: 1})
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestBookSlot_InsufficientFunds(t *testing.T) {
	slots := newFakeSlotRepo(availableSlot(1))
	bookings := newFakeBookingRepo()
	accounts := newFakeAccountRepo(map[int64]int{100: 0})

	uc := NewUseCase(slots, bookings, accounts, &serialTxManager{}, 1, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{TgUserID: 100, SlotID: 1})
	require.ErrorIs(t, err, ErrInsufficientFunds)

	// Никаких следов: слот свободен, баланс не тронут, бронирований нет
	assert.Equal(t, domain.SlotAvailable, slots.slots[1].Status)
	assert.Equal(t, 0, accounts.balances[100])
	assert.Empty(t, bookings.bookings)
}

func TestBookSlot_InvalidInput(t *testing.T) {
	uc := NewUseCase(newFakeSlotRepo(), newFakeBookingRepo(),
		newFakeAccountRepo(nil), &serialTxManager{}, 1, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{TgUserID: 0, SlotID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{TgUserID: 100, SlotID: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestBookSlot_RaceForOneSlot(t *testing.T) {
	slots := newFakeSlotRepo(availableSlot(1))
	bookings := newFakeBookingRepo()
	accounts := newFakeAccountRepo(map[int64]int{100: 5, 200: 5})

	uc := NewUseCase(slots, bookings, accounts, &serialTxManager{}, 1, nopLogger{})

	results := make(chan error, 2)
	var wg sync.WaitGroup
	for _, userID := range []int64{100, 200} {
		wg.Add(1)
		go func(userID int64) {
			defer wg.Done()
			_, err := uc.Execute(context.Background(), &Request{TgUserID: userID, SlotID: 1})
			results <- err
		}(userID)
	}
	wg.Wait()
	close(results)

	var successes, conflicts int
	for err := range results {
		switch {
		case err == nil:
			successes++
		case assert.ErrorIs(t, err, ErrSlotNotAvailable):
			conflicts++
		}
	}

	// Ровно один получает слот
	assert.Equal(t, 1, successes)
	assert.Equal(t, 1, conflicts)
	assert.Len(t, bookings.bookings, 1)
	assert.Equal(t, domain.SlotBooked, slots.slots[1].Status)

	// Списана ровно одна монета суммарно
	total := accounts.balances[100] + accounts.balances[200]
	assert.Equal(t, 9, total)
}
