package manual_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/massage-bot/schedule-service/internal/domain"
	slotRepo "github.com/massage-bot/schedule-service/internal/infra/storage/slot"
)

// UseCase use case ручного бронирования администратором
// Та же транзакционная схема, что и у клиентского бронирования, но без
// списания монет: coins_spent = 0, source = manual
type UseCase struct {
	slotRepo    SlotRepository
	bookingRepo BookingRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotRepo SlotRepository,
	bookingRepo BookingRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:    slotRepo,
		bookingRepo: bookingRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute создает ручное бронирование на свободный слот
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ManualBooking: slot=%d", req.SlotID)

	if req.SlotID <= 0 {
		uc.logger.Warn("ManualBooking: invalid slot id=%d", req.SlotID)
		return nil, ErrInvalidInput
	}

	var result *Response

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		slot, err := uc.slotRepo.GetByIDForUpdate(txCtx, req.SlotID)
		if err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotFound) {
				return ErrSlotNotFound
			}
			return fmt.Errorf("%w: failed to get slot: %w", ErrInternal, err)
		}

		if !slot.IsAvailable() {
			return ErrSlotNotAvailable
		}

		booking := &domain.Booking{
			SlotID:        slot.ID,
			ClientName:    trimmed(req.ClientName),
			ClientPhone:   trimmed(req.ClientPhone),
			Status:        domain.BookingConfirmed,
			Source:        domain.SourceManual,
			CoinsSpent:    0,
			SlotDate:      slot.Date,
			SlotStartTime: slot.StartTime,
			SlotEndTime:   slot.EndTime,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}

		if err := uc.slotRepo.SetStatus(txCtx, slot.ID, domain.SlotBooked, &created.ID); err != nil {
			return fmt.Errorf("%w: failed to mark slot booked: %w", ErrInternal, err)
		}

		result = &Response{
			BookingID:   created.ID,
			SlotID:      slot.ID,
			Date:        slot.Date,
			StartTime:   slot.StartTime,
			EndTime:     slot.EndTime,
			ClientName:  created.ClientName,
			ClientPhone: created.ClientPhone,
			CreatedAt:   created.CreatedAt,
		}
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, ErrSlotNotFound):
			uc.logger.Warn("ManualBooking: slot=%d not found", req.SlotID)
		case errors.Is(err, ErrSlotNotAvailable):
			uc.logger.Warn("ManualBooking: slot=%d not available", req.SlotID)
		default:
			uc.logger.Error("ManualBooking: failed for slot=%d: %v", req.SlotID, err)
		}
		return nil, err
	}

	uc.logger.Info("ManualBooking: successfully created booking id=%d for slot=%d", result.BookingID, req.SlotID)
	return result, nil
}

// trimmed обрезает пробелы; пустая после обрезки строка превращается в nil
func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}
