package account

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/massage-bot/schedule-service/pkg/dbmetrics"
	"github.com/massage-bot/schedule-service/pkg/psqlbuilder"
)

// Repository репозиторий балансов монет
// Баланс никогда не уходит в минус: проверка и списание выполняются одним
// UPDATE, конкурентные списания по одному аккаунту сериализуются блокировкой
// строки на стороне PostgreSQL
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория балансов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Debit атомарно списывает amount монет с баланса
// Возвращает новый баланс; если монет недостаточно (или аккаунта нет) -
// ErrInsufficientFunds, баланс не изменяется
func (r *Repository) Debit(ctx context.Context, tgUserID int64, amount int) (int, error) {
	if amount <= 0 {
		return 0, ErrInvalidAmount
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("accounts").
		Set("coins_balance", squirrel.Expr("coins_balance - ?", amount)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"tg_user_id": tgUserID}).
		Where(squirrel.GtOrEq{"coins_balance": amount}).
		Suffix("RETURNING coins_balance").
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: Debit - build update query: %v", ErrBuildQuery, err)
	}

	var newBalance int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&newBalance)
	if err == sql.ErrNoRows {
		return 0, ErrInsufficientFunds
	}
	if err != nil {
		return 0, fmt.Errorf("%w: Debit - execute update: %w", ErrExecQuery, err)
	}

	return newBalance, nil
}

// Credit атомарно зачисляет amount монет на баланс
// Всегда успешен: отсутствующий аккаунт создается с нулевым балансом
// (используется для возврата монет при отмене бронирования)
func (r *Repository) Credit(ctx context.Context, tgUserID int64, amount int) (int, error) {
	if amount <= 0 {
		return 0, ErrInvalidAmount
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("accounts").
		Columns("tg_user_id", "coins_balance").
		Values(tgUserID, amount).
		Suffix("ON CONFLICT (tg_user_id) DO UPDATE SET coins_balance = accounts.coins_balance + EXCLUDED.coins_balance, updated_at = NOW()").
		Suffix("RETURNING coins_balance").
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: Credit - build upsert query: %v", ErrBuildQuery, err)
	}

	var newBalance int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&newBalance)
	if err != nil {
		return 0, fmt.Errorf("%w: Credit - execute upsert: %w", ErrExecQuery, err)
	}

	return newBalance, nil
}

// GetBalance возвращает текущий баланс аккаунта
func (r *Repository) GetBalance(ctx context.Context, tgUserID int64) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("coins_balance").
		From("accounts").
		Where(squirrel.Eq{"tg_user_id": tgUserID}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: GetBalance - build select query: %v", ErrBuildQuery, err)
	}

	var balance int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&balance)
	if err == sql.ErrNoRows {
		return 0, ErrAccountNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("%w: GetBalance - scan balance: %w", ErrScanRow, err)
	}

	return balance, nil
}
