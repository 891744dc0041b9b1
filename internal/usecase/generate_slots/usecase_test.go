package generate_slots

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/massage-bot/schedule-service/internal/domain"
	slotStorage "github.com/massage-bot/schedule-service/internal/infra/storage/slot"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// fakeSlotRepo хранит слоты по идентичности (дата, начало, конец),
// повторная вставка возвращает ErrSlotAlreadyExists как unique constraint
type fakeSlotRepo struct {
	nextID  int64
	byIdent map[string]*domain.Slot
	failOn  map[string]error
}

func newFakeSlotRepo() *fakeSlotRepo {
	return &fakeSlotRepo{
		byIdent: make(map[string]*domain.Slot),
		failOn:  make(map[string]error),
	}
}

func identity(date time.Time, start, end string) string {
	return fmt.Sprintf("%s|%s|%s", date.Format(domain.DateFormat), start, end)
}

func (r *fakeSlotRepo) Create(_ context.Context, slot *domain.Slot) (*domain.Slot, error) {
	key := identity(slot.Date, slot.StartTime.String(), slot.EndTime.String())
	if err, ok := r.failOn[key]; ok {
		return nil, err
	}
	if _, ok := r.byIdent[key]; ok {
		return nil, slotStorage.ErrSlotAlreadyExists
	}
	r.nextID++
	copied := *slot
	copied.ID = r.nextID
	r.byIdent[key] = &copied
	return &copied, nil
}

func weekRequest() *Request {
	return &Request{
		StartDate: time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC), // воскресенье
		EndDate:   time.Date(2024, 12, 7, 0, 0, 0, 0, time.UTC),
		Weekdays:  []int{1, 3, 5}, // пн, ср, пт
		TimeRanges: []TimeRange{
			{StartTime: "10:00", EndTime: "11:00"},
			{StartTime: "14:00", EndTime: "15:00"},
		},
	}
}

func TestGenerateSlots_CreatesMatchingDays(t *testing.T) {
	repo := newFakeSlotRepo()
	uc := NewUseCase(repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), weekRequest())
	require.NoError(t, err)

	// 3 подходящих дня (2, 4 и 6 декабря) по 2 интервала
	assert.Equal(t, 6, resp.Created)
	assert.Zero(t, resp.Skipped)
	assert.Zero(t, resp.Errors)
	assert.Len(t, repo.byIdent, 6)

	// Воскресенье 1 декабря не попадает под weekdays {1,3,5}
	_, sundayCreated := repo.byIdent[identity(time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC), "10:00", "11:00")]
	assert.False(t, sundayCreated)

	slot, ok := repo.byIdent[identity(time.Date(2024, 12, 2, 0, 0, 0, 0, time.UTC), "10:00", "11:00")]
	require.True(t, ok)
	assert.Equal(t, domain.SlotAvailable, slot.Status)
}

func TestGenerateSlots_RerunIsIdempotent(t *testing.T) {
	repo := newFakeSlotRepo()
	uc := NewUseCase(repo, nopLogger{})

	first, err := uc.Execute(context.Background(), weekRequest())
	require.NoError(t, err)
	require.Equal(t, 6, first.Created)

	second, err := uc.Execute(context.Background(), weekRequest())
	require.NoError(t, err)

	// Все дубликаты считаются пропусками, не ошибками
	assert.Zero(t, second.Created)
	assert.Equal(t, 6, second.Skipped)
	assert.Zero(t, second.Errors)
	assert.Len(t, repo.byIdent, 6)
}

func TestGenerateSlots_FailuresDoNotAbort(t *testing.T) {
	repo := newFakeSlotRepo()
	repo.failOn[identity(time.Date(2024, 12, 2, 0, 0, 0, 0, time.UTC), "10:00", "11:00")] =
		fmt.Errorf("connection reset")

	uc := NewUseCase(repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), weekRequest())
	require.NoError(t, err)

	assert.Equal(t, 5, resp.Created)
	assert.Equal(t, 1, resp.Errors)
	assert.Zero(t, resp.Skipped)
}

func TestGenerateSlots_Validation(t *testing.T) {
	uc := NewUseCase(newFakeSlotRepo(), nopLogger{})

	tests := []struct {
		name    string
		mutate  func(req *Request)
		wantErr error
	}{
		{
			name:    "end before start",
			mutate:  func(req *Request) { req.EndDate = req.StartDate.AddDate(0, 0, -1) },
			wantErr: ErrInvalidDateRange,
		},
		{
			name:    "range too long",
			mutate:  func(req *Request) { req.EndDate = req.StartDate.AddDate(2, 0, 0) },
			wantErr: ErrInvalidDateRange,
		},
		{
			name:    "weekday out of range",
			mutate:  func(req *Request) { req.Weekdays = []int{7} },
			wantErr: ErrInvalidWeekday,
		},
		{
			name:    "no weekdays",
			mutate:  func(req *Request) { req.Weekdays = nil },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "no time ranges",
			mutate:  func(req *Request) { req.TimeRanges = nil },
			wantErr: ErrInvalidInput,
		},
		{
			name: "inverted time range",
			mutate: func(req *Request) {
				req.TimeRanges = []TimeRange{{StartTime: "11:00", EndTime: "10:00"}}
			},
			wantErr: ErrInvalidTimeRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := weekRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
