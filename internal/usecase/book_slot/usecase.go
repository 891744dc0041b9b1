package book_slot

import (
	"context"
	"errors"
	"fmt"

	"github.com/massage-bot/schedule-service/internal/domain"
	accountRepo "github.com/massage-bot/schedule-service/internal/infra/storage/account"
	slotRepo "github.com/massage-bot/schedule-service/internal/infra/storage/slot"
)

// UseCase use case клиентского бронирования слота
// Координирует тройку "списать монеты + создать бронирование + занять слот"
// в одной сериализуемой транзакции: либо фиксируются все три шага, либо ни один
type UseCase struct {
	slotRepo    SlotRepository
	bookingRepo BookingRepository
	accountRepo AccountRepository
	txManager   TransactionManager
	slotPrice   int
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotRepo SlotRepository,
	bookingRepo BookingRepository,
	accountRepo AccountRepository,
	txManager TransactionManager,
	slotPrice int,
	logger Logger,
) *UseCase {
	if slotPrice <= 0 {
		slotPrice = domain.DefaultSlotPriceCoins
	}
	return &UseCase{
		slotRepo:    slotRepo,
		bookingRepo: bookingRepo,
		accountRepo: accountRepo,
		txManager:   txManager,
		slotPrice:   slotPrice,
		logger:      logger,
	}
}

// Execute выполняет бронирование слота клиентом
// Два конкурентных запроса на один слот разрешаются блокировкой строки слота:
// ровно один получает бронирование, второй - ErrSlotNotAvailable
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookSlot: user=%d, slot=%d", req.TgUserID, req.SlotID)

	if req.TgUserID <= 0 || req.SlotID <= 0 {
		uc.logger.Warn("BookSlot: invalid request user=%d, slot=%d", req.TgUserID, req.SlotID)
		return nil, ErrInvalidInput
	}

	var result *Response

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Загружаем слот с блокировкой строки
		slot, err := uc.slotRepo.GetByIDForUpdate(txCtx, req.SlotID)
		if err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotFound) {
				return ErrSlotNotFound
			}
			return fmt.Errorf("%w: failed to get slot: %w", ErrInternal, err)
		}

		// 2. Слот должен быть свободен
		if !slot.IsAvailable() {
			return ErrSlotNotAvailable
		}

		// 3. Списываем монеты; при нехватке транзакция откатывается без следов
		newBalance, err := uc.accountRepo.Debit(txCtx, req.TgUserID, uc.slotPrice)
		if err != nil {
			if errors.Is(err, accountRepo.ErrInsufficientFunds) {
				return ErrInsufficientFunds
			}
			return fmt.Errorf("%w: failed to debit account: %w", ErrInternal, err)
		}

		// 4. Создаем бронирование
		booking := &domain.Booking{
			SlotID:        slot.ID,
			TgUserID:      &req.TgUserID,
			Status:        domain.BookingConfirmed,
			Source:        domain.SourceCustomer,
			CoinsSpent:    uc.slotPrice,
			SlotDate:      slot.Date,
			SlotStartTime: slot.StartTime,
			SlotEndTime:   slot.EndTime,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}

		// 5. Занимаем слот, связывая его с бронированием
		if err := uc.slotRepo.SetStatus(txCtx, slot.ID, domain.SlotBooked, &created.ID); err != nil {
			return fmt.Errorf("%w: failed to mark slot booked: %w", ErrInternal, err)
		}

		result = &Response{
			BookingID:  created.ID,
			SlotID:     slot.ID,
			Date:       slot.Date,
			StartTime:  slot.StartTime,
			EndTime:    slot.EndTime,
			CoinsSpent: uc.slotPrice,
			NewBalance: newBalance,
			CreatedAt:  created.CreatedAt,
		}
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, ErrSlotNotFound):
			uc.logger.Warn("BookSlot: slot=%d not found", req.SlotID)
		case errors.Is(err, ErrSlotNotAvailable):
			uc.logger.Warn("BookSlot: slot=%d not available for user=%d", req.SlotID, req.TgUserID)
		case errors.Is(err, ErrInsufficientFunds):
			uc.logger.Warn("BookSlot: insufficient funds for user=%d", req.TgUserID)
		default:
			uc.logger.Error("BookSlot: failed for user=%d, slot=%d: %v", req.TgUserID, req.SlotID, err)
		}
		return nil, err
	}

	uc.logger.Info("BookSlot: successfully created booking id=%d for user=%d, new balance=%d",
		result.BookingID, req.TgUserID, result.NewBalance)
	return result, nil
}
