package slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/massage-bot/schedule-service/internal/domain"
	slotStorage "github.com/massage-bot/schedule-service/internal/infra/storage/slot"
	"github.com/massage-bot/schedule-service/internal/service/slots/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeSlotRepo struct {
	nextID  int64
	byID    map[int64]*domain.Slot
	byIdent map[string]int64
}

func newFakeSlotRepo() *fakeSlotRepo {
	return &fakeSlotRepo{
		byID:    make(map[int64]*domain.Slot),
		byIdent: make(map[string]int64),
	}
}

func ident(slot *domain.Slot) string {
	return slot.Date.Format(domain.DateFormat) + "|" + slot.StartTime.String() + "|" + slot.EndTime.String()
}

func (r *fakeSlotRepo) Create(_ context.Context, slot *domain.Slot) (*domain.Slot, error) {
	if _, ok := r.byIdent[ident(slot)]; ok {
		return nil, slotStorage.ErrSlotAlreadyExists
	}
	r.nextID++
	copied := *slot
	copied.ID = r.nextID
	r.byID[copied.ID] = &copied
	r.byIdent[ident(slot)] = copied.ID
	return &copied, nil
}

func (r *fakeSlotRepo) GetByID(_ context.Context, id int64) (*domain.Slot, error) {
	slot, ok := r.byID[id]
	if !ok {
		return nil, slotStorage.ErrSlotNotFound
	}
	copied := *slot
	return &copied, nil
}

func (r *fakeSlotRepo) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Slot, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeSlotRepo) ListByDateRange(_ context.Context, startDate, endDate time.Time, status *domain.SlotStatus) ([]*domain.Slot, error) {
	var result []*domain.Slot
	for _, slot := range r.byID {
		if slot.Date.Before(startDate) || slot.Date.After(endDate) {
			continue
		}
		if status != nil && slot.Status != *status {
			continue
		}
		copied := *slot
		result = append(result, &copied)
	}
	return result, nil
}

func (r *fakeSlotRepo) Delete(_ context.Context, id int64) error {
	slot, ok := r.byID[id]
	if !ok {
		return slotStorage.ErrSlotNotFound
	}
	delete(r.byIdent, ident(slot))
	delete(r.byID, id)
	return nil
}

func newService() (*fakeSlotRepo, *Service) {
	repo := newFakeSlotRepo()
	return repo, NewService(repo, passthroughTxManager{}, nopLogger{})
}

func createReq() *models.CreateSlotRequest {
	return &models.CreateSlotRequest{
		Date:      time.Date(2024, 12, 20, 0, 0, 0, 0, time.UTC),
		StartTime: "10:00",
		EndTime:   "11:00",
	}
}

func TestCreateSlot(t *testing.T) {
	_, svc := newService()

	resp, err := svc.Create(context.Background(), createReq())
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "available", resp.Status)

	// Дубликат по идентичности отклоняется
	_, err = svc.Create(context.Background(), createReq())
	assert.ErrorIs(t, err, ErrSlotAlreadyExists)
}

func TestCreateSlot_Validation(t *testing.T) {
	_, svc := newService()

	req := createReq()
	req.StartTime = "11:00"
	req.EndTime = "10:00"
	_, err := svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTimeRange)

	req = createReq()
	req.StartTime = "10:00"
	req.EndTime = "10:00"
	_, err = svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTimeRange)

	// Создать сразу занятый слот нельзя
	req = createReq()
	req.Status = domain.SlotBooked
	_, err = svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestListSlots_OnlyAvailable(t *testing.T) {
	repo, svc := newService()

	_, err := svc.Create(context.Background(), createReq())
	require.NoError(t, err)

	blocked := createReq()
	blocked.StartTime = "14:00"
	blocked.EndTime = "15:00"
	blocked.Status = domain.SlotBlocked
	_, err = svc.Create(context.Background(), blocked)
	require.NoError(t, err)

	all, err := svc.List(context.Background(), &models.ListSlotsRequest{
		StartDate: time.Date(2024, 12, 20, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 12, 20, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Len(t, all.Slots, 2)

	available, err := svc.List(context.Background(), &models.ListSlotsRequest{
		StartDate:     time.Date(2024, 12, 20, 0, 0, 0, 0, time.UTC),
		EndDate:       time.Date(2024, 12, 20, 0, 0, 0, 0, time.UTC),
		OnlyAvailable: true,
	})
	require.NoError(t, err)
	require.Len(t, available.Slots, 1)
	assert.Equal(t, "available", available.Slots[0].Status)

	_ = repo
}

func TestListSlots_InvalidRange(t *testing.T) {
	_, svc := newService()

	_, err := svc.List(context.Background(), &models.ListSlotsRequest{
		StartDate: time.Date(2024, 12, 20, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 12, 19, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestDeleteSlot(t *testing.T) {
	repo, svc := newService()

	resp, err := svc.Create(context.Background(), createReq())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), resp.ID))
	assert.Empty(t, repo.byID)

	assert.ErrorIs(t, svc.Delete(context.Background(), resp.ID), ErrSlotNotFound)
}

func TestDeleteSlot_BookedRejected(t *testing.T) {
	repo, svc := newService()

	resp, err := svc.Create(context.Background(), createReq())
	require.NoError(t, err)

	repo.byID[resp.ID].Status = domain.SlotBooked

	assert.ErrorIs(t, svc.Delete(context.Background(), resp.ID), ErrSlotBooked)
	assert.Len(t, repo.byID, 1)
}
