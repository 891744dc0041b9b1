package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/massage-bot/schedule-service/pkg/dbmetrics"
	"github.com/massage-bot/schedule-service/pkg/metrics"
)

// Коды ошибок PostgreSQL
const (
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
)

const (
	maxRetries   = 3
	retryBackoff = 50 * time.Millisecond
)

// Значения label isolation в метриках транзакций
const (
	labelDefault      = "default"
	labelSerializable = "serializable"
	labelReadOnly     = "read_only"
)

var (
	// ErrTxBegin возвращается при ошибке начала транзакции
	ErrTxBegin = errors.New("txmanager: failed to begin transaction")

	// ErrTxCommit возвращается при ошибке коммита транзакции
	ErrTxCommit = errors.New("txmanager: failed to commit transaction")

	// ErrRetriesExhausted возвращается, когда все повторы сериализуемой
	// транзакции завершились serialization failure
	ErrRetriesExhausted = errors.New("txmanager: serialization retries exhausted")
)

// TxBeginner интерфейс для начала транзакций
// Реализуется *dbmetrics.DB
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error)
}

// TransactionManager управляет транзакциями БД
// Кладет активную транзакцию в контекст, откуда её достают репозитории
type TransactionManager struct {
	db      TxBeginner
	metrics *metrics.Metrics
}

// NewTransactionManager создает новый менеджер транзакций
func NewTransactionManager(db TxBeginner, m *metrics.Metrics) *TransactionManager {
	return &TransactionManager{db: db, metrics: m}
}

// Do выполняет fn в транзакции с уровнем изоляции по умолчанию (Read Committed)
func (m *TransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{}, fn)
}

// DoSerializable выполняет fn в сериализуемой транзакции
// При serialization failure (40001) или deadlock (40P01) повторяет
// выполнение до maxRetries раз
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	opts := &sql.TxOptions{Isolation: sql.LevelSerializable}

	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			if m.metrics != nil {
				m.metrics.IncTxRetry(labelSerializable)
			}
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
	// Вложенные транзакции не поддерживаются - переиспользуем текущую
	if dbmetrics.IsInTransaction(ctx) {
		return fn(ctx)
	}

	label := isolationLabel(opts)

	tx, err := m.db.BeginTx(ctx, opts)
	if err != nil {
		m.observe(label, "begin_error")
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
		m.observe(label, "rollback")
		return err
	}

	if err := tx.Commit(); err != nil {
		m.observe(label, "commit_error")
		return fmt.Errorf("%w: %w", ErrTxCommit, err)
	}

	m.observe(label, "commit")
	return nil
}

func (m *TransactionManager) observe(isolation, result string) {
	if m.metrics != nil {
		m.metrics.ObserveTx(isolation, result)
	}
}

func isolationLabel(opts *sql.TxOptions) string {
	switch {
	case opts.ReadOnly:
		return labelReadOnly
	case opts.Isolation == sql.LevelSerializable:
		return labelSerializable
	default:
		return labelDefault
	}
}

// isRetryable возвращает true для ошибок, при которых сериализуемую
// транзакцию имеет смысл повторить
// Репозитории и координаторы оборачивают драйверную ошибку через %w,
// поэтому errors.As видит pq.Error сквозь всю цепочку
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
