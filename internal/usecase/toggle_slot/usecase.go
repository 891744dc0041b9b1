package toggle_slot

import (
	"context"
	"errors"
	"fmt"

	"github.com/massage-bot/schedule-service/internal/domain"
	bookingRepo "github.com/massage-bot/schedule-service/internal/infra/storage/booking"
	slotRepo "github.com/massage-bot/schedule-service/internal/infra/storage/slot"
)

// UseCase use case админского переключения статуса слота
// Один вход обслуживает три разных перехода, поэтому диспетчеризация
// выполняется явно по текущему статусу слота:
//   - available -> blocked: блокировка
//   - blocked -> available: разблокировка
//   - booked -> available: освобождение - отмена бронирования с возвратом монет
//
// Любая другая комбинация отклоняется с ErrInvalidTransition
type UseCase struct {
	slotRepo    SlotRepository
	bookingRepo BookingRepository
	accountRepo AccountRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotRepo SlotRepository,
	bookingRepo BookingRepository,
	accountRepo AccountRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:    slotRepo,
		bookingRepo: bookingRepo,
		accountRepo: accountRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute выполняет переход статуса слота
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ToggleSlot: slot=%d, target=%s", req.SlotID, req.TargetStatus)

	// Занятие слота доступно только через координатор бронирований
	if req.TargetStatus != domain.SlotAvailable && req.TargetStatus != domain.SlotBlocked {
		uc.logger.Warn("ToggleSlot: invalid target status=%s", req.TargetStatus)
		return nil, ErrInvalidStatus
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

		result = &Response{
			SlotID:    slot.ID,
			Date:      slot.Date,
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
			Status:    string(req.TargetStatus),
		}

		switch {
		case slot.Status == domain.SlotAvailable && req.TargetStatus == domain.SlotBlocked:
			return uc.block(txCtx, slot)

		case slot.Status == domain.SlotBlocked && req.TargetStatus == domain.SlotAvailable:
			return uc.unblock(txCtx, slot)

		case slot.Status == domain.SlotBooked && req.TargetStatus == domain.SlotAvailable:
			return uc.release(txCtx, slot, result)

		default:
			return ErrInvalidTransition
		}
	})

	if err != nil {
		switch {
		case errors.Is(err, ErrSlotNotFound):
			uc.logger.Warn("ToggleSlot: slot=%d not found", req.SlotID)
		case errors.Is(err, ErrInvalidTransition):
			uc.logger.Warn("ToggleSlot: invalid transition for slot=%d to %s", req.SlotID, req.TargetStatus)
		default:
			uc.logger.Error("ToggleSlot: failed for slot=%d: %v", req.SlotID, err)
		}
		return nil, err
	}

	uc.logger.Info("ToggleSlot: slot=%d is now %s", req.SlotID, result.Status)
	return result, nil
}

// block блокирует свободный слот
func (uc *UseCase) block(ctx context.Context, slot *domain.Slot) error {
	if err := uc.slotRepo.SetStatus(ctx, slot.ID, domain.SlotBlocked, nil); err != nil {
		return fmt.Errorf("%w: failed to block slot: %w", ErrInternal, err)
	}
	return nil
}

// unblock возвращает заблокированный слот в свободные
func (uc *UseCase) unblock(ctx context.Context, slot *domain.Slot) error {
	if err := uc.slotRepo.SetStatus(ctx, slot.ID, domain.SlotAvailable, nil); err != nil {
		return fmt.Errorf("%w: failed to unblock slot: %w", ErrInternal, err)
	}
	return nil
}

// release освобождает занятый слот: отменяет бронирование, возвращает
// списанные монеты и переводит слот в available - всё в одной транзакции
func (uc *UseCase) release(ctx context.Context, slot *domain.Slot, result *Response) error {
	booking, err := uc.bookingRepo.GetActiveBySlotID(ctx, slot.ID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			// Занятый слот без активного бронирования - нарушенный инвариант
			return fmt.Errorf("%w: booked slot id=%d has no active booking", ErrInternal, slot.ID)
		}
		return fmt.Errorf("%w: failed to get booking: %w", ErrInternal, err)
	}

	if err := uc.bookingRepo.Cancel(ctx, booking.ID); err != nil {
		return fmt.Errorf("%w: failed to cancel booking: %w", ErrInternal, err)
	}

	// Возврат монет только за платные клиентские бронирования
	if booking.CoinsSpent > 0 && booking.TgUserID != nil {
		if _, err := uc.accountRepo.Credit(ctx, *booking.TgUserID, booking.CoinsSpent); err != nil {
			return fmt.Errorf("%w: failed to refund coins: %w", ErrInternal, err)
		}
		result.RefundedCoins = booking.CoinsSpent
	}

	if err := uc.slotRepo.SetStatus(ctx, slot.ID, domain.SlotAvailable, nil); err != nil {
		return fmt.Errorf("%w: failed to release slot: %w", ErrInternal, err)
	}

	result.CancelledBookingID = &booking.ID
	return nil
}
