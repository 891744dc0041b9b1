package sync_calendar

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/massage-bot/schedule-service/internal/domain"
	slotStorage "github.com/massage-bot/schedule-service/internal/infra/storage/slot"
	"github.com/massage-bot/schedule-service/internal/integrations/gcal"
	"github.com/massage-bot/schedule-service/pkg/ptr"
	"github.com/massage-bot/schedule-service/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeCalendar struct {
	events []gcal.Event
	err    error
}

func (c *fakeCalendar) GetEvents(context.Context, time.Time, time.Time) ([]gcal.Event, error) {
	return c.events, c.err
}

type fakeSlotRepo struct {
	nextID  int64
	byEvent map[string]*domain.Slot
}

func newFakeSlotRepo(slots ...*domain.Slot) *fakeSlotRepo {
	repo := &fakeSlotRepo{byEvent: make(map[string]*domain.Slot)}
	for _, slot := range slots {
		repo.nextID++
		copied := *slot
		copied.ID = repo.nextID
		repo.byEvent[*slot.GoogleEventID] = &copied
	}
	return repo
}

func (r *fakeSlotRepo) Create(_ context.Context, slot *domain.Slot) (*domain.Slot, error) {
	r.nextID++
	copied := *slot
	copied.ID = r.nextID
	if slot.GoogleEventID != nil {
		r.byEvent[*slot.GoogleEventID] = &copied
	}
	return &copied, nil
}

func (r *fakeSlotRepo) GetByGoogleEventID(_ context.Context, eventID string) (*domain.Slot, error) {
	slot, ok := r.byEvent[eventID]
	if !ok {
		return nil, slotStorage.ErrSlotNotFound
	}
	copied := *slot
	return &copied, nil
}

func (r *fakeSlotRepo) UpdateTimes(_ context.Context, id int64, startTime, endTime types.TimeString) error {
	for _, slot := range r.byEvent {
		if slot.ID == id {
			slot.StartTime = startTime
			slot.EndTime = endTime
			return nil
		}
	}
	return slotStorage.ErrSlotNotFound
}

func syncRequest() *Request {
	return &Request{
		StartDate: time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
	}
}

func TestSyncCalendar_ImportsEvents(t *testing.T) {
	calendar := &fakeCalendar{events: []gcal.Event{
		{ID: "ev-1", Date: "2024-12-20", StartTime: "10:00", EndTime: "11:00"},
		{ID: "ev-2", Date: "2024-12-21", StartTime: "14:00", EndTime: "15:30"},
	}}
	repo := newFakeSlotRepo()

	uc := NewUseCase(calendar, repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), syncRequest())
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Created)
	assert.Zero(t, resp.Updated)
	assert.Zero(t, resp.Skipped)

	slot := repo.byEvent["ev-1"]
	require.NotNil(t, slot)
	assert.Equal(t, domain.SlotBlocked, slot.Status)
	assert.Equal(t, types.TimeString("10:00"), slot.StartTime)
}

func TestSyncCalendar_UpdatesMovedEvent(t *testing.T) {
	repo := newFakeSlotRepo(&domain.Slot{
		Date:          time.Date(2024, 12, 20, 0, 0, 0, 0, time.UTC),
		StartTime:     "10:00",
		EndTime:       "11:00",
		Status:        domain.SlotBlocked,
		GoogleEventID: ptr.Ptr("ev-1"),
	})
	calendar := &fakeCalendar{events: []gcal.Event{
		{ID: "ev-1", Date: "2024-12-20", StartTime: "12:00", EndTime: "13:00"},
	}}

	uc := NewUseCase(calendar, repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), syncRequest())
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Updated)
	assert.Equal(t, types.TimeString("12:00"), repo.byEvent["ev-1"].StartTime)
	assert.Equal(t, types.TimeString("13:00"), repo.byEvent["ev-1"].EndTime)
}

func TestSyncCalendar_SkipsBookedAndUnchanged(t *testing.T) {
	repo := newFakeSlotRepo(
		&domain.Slot{
			Date:          time.Date(2024, 12, 20, 0, 0, 0, 0, time.UTC),
			StartTime:     "10:00",
			EndTime:       "11:00",
			Status:        domain.SlotBooked,
			GoogleEventID: ptr.Ptr("ev-booked"),
		},
		&domain.Slot{
			Date:          time.Date(2024, 12, 21, 0, 0, 0, 0, time.UTC),
			StartTime:     "09:00",
			EndTime:       "10:00",
			Status:        domain.SlotBlocked,
			GoogleEventID: ptr.Ptr("ev-same"),
		},
	)
	calendar := &fakeCalendar{events: []gcal.Event{
		// Занятый слот не трогаем, даже если событие переехало
		{ID: "ev-booked", Date: "2024-12-20", StartTime: "15:00", EndTime: "16:00"},
		{ID: "ev-same", Date: "2024-12-21", StartTime: "09:00", EndTime: "10:00"},
	}}

	uc := NewUseCase(calendar, repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), syncRequest())
	require.NoError(t, err)

	assert.Zero(t, resp.Created)
	assert.Zero(t, resp.Updated)
	assert.Equal(t, 2, resp.Skipped)
	assert.Equal(t, types.TimeString("10:00"), repo.byEvent["ev-booked"].StartTime)
}

func TestSyncCalendar_SkipsMalformedEvents(t *testing.T) {
	calendar := &fakeCalendar{events: []gcal.Event{
		{ID: "", Date: "2024-12-20", StartTime: "10:00", EndTime: "11:00"},
		{ID: "ev-bad-date", Date: "20.12.2024", StartTime: "10:00", EndTime: "11:00"},
		{ID: "ev-bad-range", Date: "2024-12-20", StartTime: "11:00", EndTime: "10:00"},
		{ID: "ev-ok", Date: "2024-12-20", StartTime: "10:00", EndTime: "11:00"},
	}}
	repo := newFakeSlotRepo()

	uc := NewUseCase(calendar, repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), syncRequest())
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Created)
	assert.Equal(t, 3, resp.Skipped)
}

func TestSyncCalendar_CalendarUnavailable(t *testing.T) {
	calendar := &fakeCalendar{err: gcal.ErrUnavailable}

	uc := NewUseCase(calendar, newFakeSlotRepo(), nopLogger{})

	_, err := uc.Execute(context.Background(), syncRequest())
	assert.ErrorIs(t, err, ErrCalendarUnavailable)
}

func TestSyncCalendar_InvalidDateRange(t *testing.T) {
	uc := NewUseCase(&fakeCalendar{}, newFakeSlotRepo(), nopLogger{})

	req := syncRequest()
	req.EndDate = req.StartDate.AddDate(0, 0, -1)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}
