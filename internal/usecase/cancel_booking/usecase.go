package cancel_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/massage-bot/schedule-service/internal/domain"
	bookingRepo "github.com/massage-bot/schedule-service/internal/infra/storage/booking"
	slotRepo "github.com/massage-bot/schedule-service/internal/infra/storage/slot"
)

// UseCase use case админской отмены бронирования по его ID
// Зеркало освобождения слота через toggle: отмена бронирования, возврат
// монет и перевод слота в available фиксируются одной транзакцией
type UseCase struct {
	bookingRepo BookingRepository
	slotRepo    SlotRepository
	accountRepo AccountRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	slotRepo SlotRepository,
	accountRepo AccountRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		slotRepo:    slotRepo,
		accountRepo: accountRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute отменяет бронирование и освобождает его слот
func (uc *UseCase) Execute(ctx context.Context, bookingID int64) (*Response, error) {
	uc.logger.Info("CancelBooking: cancelling booking id=%d", bookingID)

	var result *Response

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := uc.bookingRepo.GetByID(txCtx, bookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: failed to get booking: %w", ErrInternal, err)
		}

		if !booking.CanBeCancelled() {
			return ErrCannotCancel
		}

		// Блокируем строку слота, чтобы отмена не гонялась с другими операциями
		slot, err := uc.slotRepo.GetByIDForUpdate(txCtx, booking.SlotID)
		if err != nil && !errors.Is(err, slotRepo.ErrSlotNotFound) {
			return fmt.Errorf("%w: failed to get slot: %w", ErrInternal, err)
		}

		if err := uc.bookingRepo.Cancel(txCtx, booking.ID); err != nil {
			return fmt.Errorf("%w: failed to cancel booking: %w", ErrInternal, err)
		}

		result = &Response{
			BookingID: booking.ID,
			SlotID:    booking.SlotID,
		}

		if booking.CoinsSpent > 0 && booking.TgUserID != nil {
			if _, err := uc.accountRepo.Credit(txCtx, *booking.TgUserID, booking.CoinsSpent); err != nil {
				return fmt.Errorf("%w: failed to refund coins: %w", ErrInternal, err)
			}
			result.RefundedCoins = booking.CoinsSpent
		}

		// Слот мог быть удален только если бронирование уже неактивно,
		// поэтому здесь он обычно существует и занят
		if slot != nil && slot.IsBooked() {
			if err := uc.slotRepo.SetStatus(txCtx, slot.ID, domain.SlotAvailable, nil); err != nil {
				return fmt.Errorf("%w: failed to release slot: %w", ErrInternal, err)
			}
		}

		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, ErrBookingNotFound):
			uc.logger.Warn("CancelBooking: booking id=%d not found", bookingID)
		case errors.Is(err, ErrCannotCancel):
			uc.logger.Warn("CancelBooking: booking id=%d cannot be cancelled", bookingID)
		default:
			uc.logger.Error("CancelBooking: failed for booking id=%d: %v", bookingID, err)
		}
		return nil, err
	}

	uc.logger.Info("CancelBooking: cancelled booking id=%d, refunded %d coins", bookingID, result.RefundedCoins)
	return result, nil
}
