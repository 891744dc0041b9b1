package simpletxmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/massage-bot/schedule-service/pkg/dbmetrics"
)

// Вариант pkg/txmanager без сбора метрик - работает напрямую с *sql.DB
// Используется, когда метрики выключены в конфигурации

const (
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"

	maxRetries   = 3
	retryBackoff = 50 * time.Millisecond
)

var (
	// ErrTxBegin возвращается при ошибке начала транзакции
	ErrTxBegin = errors.New("simpletxmanager: failed to begin transaction")

	// ErrTxCommit возвращается при ошибке коммита транзакции
	ErrTxCommit = errors.New("simpletxmanager: failed to commit transaction")

	// ErrRetriesExhausted возвращается после исчерпания повторов
	ErrRetriesExhausted = errors.New("simpletxmanager: serialization retries exhausted")
)

// TransactionManager менеджер транзакций поверх *sql.DB
type TransactionManager struct {
	db *sql.DB
}

// NewTransactionManager создает новый менеджер транзакций
func NewTransactionManager(db *sql.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// Do выполняет fn в транзакции с уровнем изоляции по умолчанию
func (m *TransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{}, fn)
}

// DoSerializable выполняет fn в сериализуемой транзакции с повторами
// при serialization failure / deadlock
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	opts := &sql.TxOptions{Isolation: sql.LevelSerializable}

	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(retryBackoff * time.Duration(attempt)):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		lastErr = m.run(ctx, opts, fn)
		if !isRetryable(lastErr) {
			return lastErr
		}
	}

	return fmt.Errorf("%w: %v", ErrRetriesExhausted, lastErr)
}

// DoReadOnly выполняет fn в read-only транзакции
func (m *TransactionManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{ReadOnly: true}, fn)
}

func (m *TransactionManager) run(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context) error) (err error) {
	if dbmetrics.IsInTransaction(ctx) {
		return fn(ctx)
	}

	tx, err := m.db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTxBegin, err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	txCtx := dbmetrics.WithExecutor(ctx, tx)

	if err := fn(txCtx); err != nil {
		_ = tx.Rollback()
		return err
	}

	// Serialization failure чаще всего приходит именно на COMMIT,
	// поэтому драйверная ошибка сохраняется в цепочке через %w
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrTxCommit, err)
	}

	return nil
}

func isRetryable(err error) bool {
	if err == nil {
		return false
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pgSerializationFailure || string(pqErr.Code) == pgDeadlockDetected
	}

	return false
}
