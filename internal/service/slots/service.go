package slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/massage-bot/schedule-service/internal/domain"
	slotRepo "github.com/massage-bot/schedule-service/internal/infra/storage/slot"
	"github.com/massage-bot/schedule-service/internal/service/slots/models"
)

// Service сервис для работы со слотами расписания
type Service struct {
	slotRepo  SlotRepository
	txManager TransactionManager
	logger    Logger
}

// NewService создает новый экземпляр сервиса слотов
func NewService(slotRepo SlotRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		slotRepo:  slotRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// Create создает одиночный слот
// Дубликат (дата, начало, конец) отклоняется с ErrSlotAlreadyExists
// независимо от статуса существующего слота
func (s *Service) Create(ctx context.Context, req *models.CreateSlotRequest) (*models.SlotResponse, error) {
	s.logger.Info("CreateSlot: date=%s, time=%s-%s, status=%s",
		req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime, req.Status)

	status := req.Status
	if status == "" {
		status = domain.SlotAvailable
	}

	// Новый слот создается только свободным или заблокированным:
	// статус booked достижим исключительно через координатор бронирований
	if status != domain.SlotAvailable && status != domain.SlotBlocked {
		s.logger.Warn("CreateSlot: invalid initial status=%s", status)
		return nil, ErrInvalidStatus
	}

	if !req.StartTime.IsBefore(req.EndTime) {
		s.logger.Warn("CreateSlot: invalid time range %s-%s", req.StartTime, req.EndTime)
		return nil, ErrInvalidTimeRange
	}

	slot := &domain.Slot{
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Status:    status,
	}

	created, err := s.slotRepo.Create(ctx, slot)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotAlreadyExists) {
			s.logger.Warn("CreateSlot: slot already exists date=%s, time=%s-%s",
				req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)
			return nil, ErrSlotAlreadyExists
		}
		s.logger.Error("CreateSlot: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("CreateSlot: successfully created slot id=%d", created.ID)
	return models.FromDomainSlot(created), nil
}

// List получает слоты за период (границы включительно)
// Для клиентской выдачи возвращаются только свободные слоты, администратору -
// все со ссылками на бронирования
func (s *Service) List(ctx context.Context, req *models.ListSlotsRequest) (*models.SlotListResponse, error) {
	if req.EndDate.Before(req.StartDate) {
		s.logger.Warn("ListSlots: invalid date range %s..%s",
			req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))
		return nil, ErrInvalidDateRange
	}

	var status *domain.SlotStatus
	if req.OnlyAvailable {
		available := domain.SlotAvailable
		status = &available
	}

	slots, err := s.slotRepo.ListByDateRange(ctx, req.StartDate, req.EndDate, status)
	if err != nil {
		s.logger.Error("ListSlots: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("ListSlots: fetched %d slots for period %s..%s",
		len(slots), req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))
	return models.FromDomainSlotList(slots), nil
}

// GetByID получает слот по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.SlotResponse, error) {
	slot, err := s.slotRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			return nil, ErrSlotNotFound
		}
		s.logger.Error("GetSlot: repository error for slot id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %w", ErrInternal, err)
	}

	return models.FromDomainSlot(slot), nil
}

// Delete удаляет слот
// Занятый слот удалить нельзя - сначала администратор обязан освободить его
// (отменить бронирование через toggle), поэтому удаление выполняется в
// транзакции с блокировкой строки слота
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("DeleteSlot: deleting slot id=%d", id)

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		slot, err := s.slotRepo.GetByIDForUpdate(txCtx, id)
		if err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotFound) {
				return ErrSlotNotFound
			}
			return fmt.Errorf("%w: Delete - get slot: %w", ErrInternal, err)
		}

		if !slot.CanBeDeleted() {
			return ErrSlotBooked
		}

		if err := s.slotRepo.Delete(txCtx, id); err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotFound) {
				return ErrSlotNotFound
			}
			return fmt.Errorf("%w: Delete - repository error: %w", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, ErrSlotNotFound) {
			s.logger.Warn("DeleteSlot: slot id=%d not found", id)
		} else if errors.Is(err, ErrSlotBooked) {
			s.logger.Warn("DeleteSlot: slot id=%d is booked, release it first", id)
		} else {
			s.logger.Error("DeleteSlot: failed for slot id=%d: %v", id, err)
		}
		return err
	}

	s.logger.Info("DeleteSlot: successfully deleted slot id=%d", id)
	return nil
}
