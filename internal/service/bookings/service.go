package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/massage-bot/schedule-service/internal/domain"
	bookingRepo "github.com/massage-bot/schedule-service/internal/infra/storage/booking"
	"github.com/massage-bot/schedule-service/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
// Создание и отмена бронирований выполняются координатором (usecase слой),
// здесь - чтение и правки, не затрагивающие слот и баланс
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetBooking: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetBooking: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %w", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// List получает бронирования с фильтрацией по статусу и периоду
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("ListBookings: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("ListBookings: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("ListBookings: fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// UpdateContactInfo частично обновляет контактные данные бронирования
// Используется для дозаполнения ручных (walk-in) бронирований: поле,
// переданное как nil, остается без изменений; значения обрезаются от пробелов
func (s *Service) UpdateContactInfo(ctx context.Context, id int64, req *models.UpdateContactInfoRequest) (*models.BookingResponse, error) {
	s.logger.Info("UpdateContactInfo: updating booking id=%d", id)

	if req.ClientName == nil && req.ClientPhone == nil {
		s.logger.Warn("UpdateContactInfo: no fields to update for booking id=%d", id)
		return nil, ErrNothingToUpdate
	}

	if err := validateContactInfo(req); err != nil {
		s.logger.Warn("UpdateContactInfo: validation failed for booking id=%d: %v", id, err)
		return nil, err
	}

	booking, err := s.bookingRepo.UpdateContactInfo(ctx, id, req.ClientName, req.ClientPhone)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateContactInfo: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("UpdateContactInfo: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateContactInfo - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("UpdateContactInfo: successfully updated booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// Complete отмечает бронирование выполненным
// Отмена бронирования сюда не входит: она освобождает слот и возвращает
// монеты, поэтому выполняется координатором
func (s *Service) Complete(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("CompleteBooking: completing booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("CompleteBooking: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("CompleteBooking: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Complete - repository error: %w", ErrInternal, err)
	}

	if !booking.CanBeCompleted() {
		s.logger.Warn("CompleteBooking: booking id=%d cannot be completed, status=%s", id, booking.Status)
		return nil, ErrCannotComplete
	}

	if err := s.bookingRepo.UpdateStatus(ctx, id, domain.BookingCompleted); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("CompleteBooking: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Complete - repository error: %w", ErrInternal, err)
	}

	booking.Status = domain.BookingCompleted
	s.logger.Info("CompleteBooking: successfully completed booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

func validateContactInfo(req *models.UpdateContactInfoRequest) error {
	if req.ClientName != nil && utf8.RuneCountInString(strings.TrimSpace(*req.ClientName)) > domain.MaxClientNameLength {
		return fmt.Errorf("%w: client name is too long", ErrInvalidInput)
	}
	if req.ClientPhone != nil && len(strings.TrimSpace(*req.ClientPhone)) > domain.MaxClientPhoneLength {
		return fmt.Errorf("%w: client phone is too long", ErrInvalidInput)
	}
	return nil
}
