package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/massage-bot/schedule-service/pkg/dbmetrics"
)

type fakeTx struct {
	commitErr  error
	committed  bool
	rolledBack bool
}

func (t *fakeTx) ExecContext(context.Context, string, ...interface{}) (sql.Result, error) {
	return nil, nil
}

func (t *fakeTx) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, nil
}

func (t *fakeTx) QueryRowContext(context.Context, string, ...interface{}) *sql.Row {
	return nil
}

func (t *fakeTx) Commit() error {
	t.committed = true
	return t.commitErr
}

func (t *fakeTx) Rollback() error {
	t.rolledBack = true
	return nil
}

type fakeBeginner struct {
	begins int
	txs    []*fakeTx
}

func (b *fakeBeginner) BeginTx(_ context.Context, _ *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	b.begins++
	tx := &fakeTx{}
	if len(b.txs) >= b.begins {
		tx = b.txs[b.begins-1]
	}
	return tx, nil
}

func serializationFailure() *pq.Error {
	return &pq.Error{Code: "40001"}
}

// Репозитории оборачивают драйверную ошибку сентинелом пакета; повтор
// обязан сработать и сквозь такую цепочку, а не только на голой pq.Error
func TestDoSerializable_RetriesWrappedSerializationFailure(t *testing.T) {
	errScanRow := errors.New("slot.storage: failed to scan row")
	beginner := &fakeBeginner{}
	manager := NewTransactionManager(beginner, nil)

	attempts := 0
	err := manager.DoSerializable(context.Background(), func(ctx context.Context) error {
		attempts++
		return fmt.Errorf("%w: getByID - scan slot: %w", errScanRow, serializationFailure())
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRetriesExhausted)
	assert.Equal(t, maxRetries, attempts)
}

func TestDoSerializable_RetriesRawSerializationFailure(t *testing.T) {
	beginner := &fakeBeginner{}
	manager := NewTransactionManager(beginner, nil)

	attempts := 0
	err := manager.DoSerializable(context.Background(), func(ctx context.Context) error {
		attempts++
		if attempts < 2 {
			return serializationFailure()
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, attempts)
}

func TestDoSerializable_RetriesCommitSerializationFailure(t *testing.T) {
	// Serializable транзакция падает с 40001 на COMMIT: первый коммит
	// проваливается, повтор проходит
	beginner := &fakeBeginner{txs: []*fakeTx{
		{commitErr: serializationFailure()},
		{},
	}}
	manager := NewTransactionManager(beginner, nil)

	attempts := 0
	err := manager.DoSerializable(context.Background(), func(ctx context.Context) error {
		attempts++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, attempts)
	assert.True(t, beginner.txs[1].committed)
}

func TestDoSerializable_NoRetryOnDomainError(t *testing.T) {
	errSlotNotAvailable := errors.New("book_slot: slot is not available")
	beginner := &fakeBeginner{}
	manager := NewTransactionManager(beginner, nil)

	attempts := 0
	err := manager.DoSerializable(context.Background(), func(ctx context.Context) error {
		attempts++
		return errSlotNotAvailable
	})

	assert.ErrorIs(t, err, errSlotNotAvailable)
	assert.Equal(t, 1, attempts)
	assert.Equal(t, 1, beginner.begins)
}

func TestDo_ReusesActiveTransaction(t *testing.T) {
	beginner := &fakeBeginner{}
	manager := NewTransactionManager(beginner, nil)

	outer := &fakeTx{}
	ctx := dbmetrics.WithExecutor(context.Background(), outer)

	called := false
	err := manager.Do(ctx, func(txCtx context.Context) error {
		called = true
		assert.True(t, dbmetrics.IsInTransaction(txCtx))
		return nil
	})

	require.NoError(t, err)
	assert.True(t, called)
	// Вложенный вызов не начинает и не коммитит новую транзакцию
	assert.Equal(t, 0, beginner.begins)
	assert.False(t, outer.committed)
}

func TestDoReadOnly_CommitsOnSuccess(t *testing.T) {
	tx := &fakeTx{}
	beginner := &fakeBeginner{txs: []*fakeTx{tx}}
	manager := NewTransactionManager(beginner, nil)

	err := manager.DoReadOnly(context.Background(), func(ctx context.Context) error {
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, beginner.begins)
	assert.True(t, tx.committed)
	assert.False(t, tx.rolledBack)
}

func TestRun_RollsBackOnError(t *testing.T) {
	tx := &fakeTx{}
	beginner := &fakeBeginner{txs: []*fakeTx{tx}}
	manager := NewTransactionManager(beginner, nil)

	errBoom := errors.New("boom")
	err := manager.Do(context.Background(), func(ctx context.Context) error {
		return errBoom
	})

	assert.ErrorIs(t, err, errBoom)
	assert.True(t, tx.rolledBack)
	assert.False(t, tx.committed)
}
