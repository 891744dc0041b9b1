package bookings

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/massage-bot/schedule-service/internal/domain"
	bookingStorage "github.com/massage-bot/schedule-service/internal/infra/storage/booking"
	"github.com/massage-bot/schedule-service/internal/service/bookings/models"
	"github.com/massage-bot/schedule-service/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeBookingRepo struct {
	bookings map[int64]*domain.Booking
}

func (r *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	booking, ok := r.bookings[id]
	if !ok {
		return nil, bookingStorage.ErrBookingNotFound
	}
	copied := *booking
	return &copied, nil
}

func (r *fakeBookingRepo) ListWithFilter(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	var result []*domain.Booking
	for _, booking := range r.bookings {
		if filter.Status != nil && booking.Status != *filter.Status {
			continue
		}
		copied := *booking
		result = append(result, &copied)
	}
	return result, nil
}

// UpdateContactInfo повторяет поведение SQL репозитория: nil поле
// не трогается, значения обрезаются от пробелов
func (r *fakeBookingRepo) UpdateContactInfo(_ context.Context, id int64, clientName, clientPhone *string) (*domain.Booking, error) {
	booking, ok := r.bookings[id]
	if !ok {
		return nil, bookingStorage.ErrBookingNotFound
	}
	if clientName != nil {
		booking.ClientName = ptr.Ptr(strings.TrimSpace(*clientName))
	}
	if clientPhone != nil {
		booking.ClientPhone = ptr.Ptr(strings.TrimSpace(*clientPhone))
	}
	copied := *booking
	return &copied, nil
}

func (r *fakeBookingRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	booking, ok := r.bookings[id]
	if !ok {
		return bookingStorage.ErrBookingNotFound
	}
	booking.Status = status
	return nil
}

func newService() (*fakeBookingRepo, *Service) {
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{
		1: {
			ID:            1,
			SlotID:        10,
			Status:        domain.BookingConfirmed,
			Source:        domain.SourceManual,
			ClientPhone:   ptr.Ptr("+79990001122"),
			SlotDate:      time.Date(2024, 12, 20, 0, 0, 0, 0, time.UTC),
			SlotStartTime: "10:00",
			SlotEndTime:   "11:00",
		},
	}}
	return repo, NewService(repo, nopLogger{})
}

func TestUpdateContactInfo_PartialUpdate(t *testing.T) {
	repo, svc := newService()

	resp, err := svc.UpdateContactInfo(context.Background(), 1, &models.UpdateContactInfoRequest{
		ClientName: ptr.Ptr("  Иванова  "),
	})
	require.NoError(t, err)

	// Имя обрезано, телефон не тронут
	require.NotNil(t, resp.ClientName)
	assert.Equal(t, "Иванова", *resp.ClientName)
	require.NotNil(t, resp.ClientPhone)
	assert.Equal(t, "+79990001122", *resp.ClientPhone)

	stored := repo.bookings[1]
	assert.Equal(t, "Иванова", *stored.ClientName)
	assert.Equal(t, "+79990001122", *stored.ClientPhone)
}

func TestUpdateContactInfo_NothingToUpdate(t *testing.T) {
	_, svc := newService()

	_, err := svc.UpdateContactInfo(context.Background(), 1, &models.UpdateContactInfoRequest{})
	assert.ErrorIs(t, err, ErrNothingToUpdate)
}

func TestUpdateContactInfo_TooLong(t *testing.T) {
	_, svc := newService()

	longName := strings.Repeat("а", domain.MaxClientNameLength+1)
	_, err := svc.UpdateContactInfo(context.Background(), 1, &models.UpdateContactInfoRequest{
		ClientName: &longName,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateContactInfo_NotFound(t *testing.T) {
	_, svc := newService()

	_, err := svc.UpdateContactInfo(context.Background(), 42, &models.UpdateContactInfoRequest{
		ClientName: ptr.Ptr("Иванова"),
	})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestComplete(t *testing.T) {
	repo, svc := newService()

	resp, err := svc.Complete(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, string(domain.BookingCompleted), resp.Status)
	assert.Equal(t, domain.BookingCompleted, repo.bookings[1].Status)

	// Повторное выполнение уже нельзя
	_, err = svc.Complete(context.Background(), 1)
	assert.ErrorIs(t, err, ErrCannotComplete)
}

func TestList_UnknownStatus(t *testing.T) {
	_, svc := newService()

	_, err := svc.List(context.Background(), &models.ListBookingsRequest{
		Status: ptr.Ptr("pending"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
