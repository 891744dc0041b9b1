package balance

import (
	"context"
	"errors"
	"fmt"

	accountRepo "github.com/massage-bot/schedule-service/internal/infra/storage/account"
)

// Service сервис балансов монет
// Списания здесь намеренно отсутствуют: дебет всегда выполняется
// координатором бронирований в паре с созданием бронирования
type Service struct {
	accountRepo AccountRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса балансов
func NewService(accountRepo AccountRepository, logger Logger) *Service {
	return &Service{
		accountRepo: accountRepo,
		logger:      logger,
	}
}

// GetBalance возвращает текущий баланс клиента
// Отсутствующий аккаунт читается как нулевой баланс - клиент еще не покупал монеты
func (s *Service) GetBalance(ctx context.Context, tgUserID int64) (int, error) {
	coins, err := s.accountRepo.GetBalance(ctx, tgUserID)
	if err != nil {
		if errors.Is(err, accountRepo.ErrAccountNotFound) {
			s.logger.Info("GetBalance: no account for user=%d, treating as zero", tgUserID)
			return 0, nil
		}
		s.logger.Error("GetBalance: repository error for user=%d: %v", tgUserID, err)
		return 0, fmt.Errorf("%w: GetBalance - repository error: %w", ErrInternal, err)
	}

	return coins, nil
}

// TopUp пополняет баланс клиента
// Вызывается хост-ботом после покупки пакета монет
func (s *Service) TopUp(ctx context.Context, tgUserID int64, amount int) (int, error) {
	if amount <= 0 {
		s.logger.Warn("TopUp: invalid amount=%d for user=%d", amount, tgUserID)
		return 0, ErrInvalidAmount
	}

	newBalance, err := s.accountRepo.Credit(ctx, tgUserID, amount)
	if err != nil {
		s.logger.Error("TopUp: repository error for user=%d: %v", tgUserID, err)
		return 0, fmt.Errorf("%w: TopUp - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("TopUp: credited %d coins to user=%d, new balance=%d", amount, tgUserID, newBalance)
	return newBalance, nil
}
