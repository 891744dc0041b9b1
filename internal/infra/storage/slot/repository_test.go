package slot

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/massage-bot/schedule-service/internal/domain"
	"github.com/massage-bot/schedule-service/pkg/ptr"
)

type failingExecutor struct {
	err error
}

func (f *failingExecutor) ExecContext(context.Context, string, ...interface{}) (sql.Result, error) {
	return nil, f.err
}

func (f *failingExecutor) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, f.err
}

func (f *failingExecutor) QueryRowContext(context.Context, string, ...interface{}) *sql.Row {
	return nil
}

// Драйверная ошибка должна оставаться видимой через errors.As сквозь
// обёртку репозитория: менеджер транзакций распознает по ней 40001/40P01
func TestSetStatus_PreservesDriverError(t *testing.T) {
	driverErr := &pq.Error{Code: "40001"}
	repo := NewRepository(&failingExecutor{err: driverErr})

	err := repo.SetStatus(context.Background(), 1, domain.SlotBooked, ptr.Ptr(int64(7)))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecQuery)

	var pqErr *pq.Error
	require.True(t, errors.As(err, &pqErr))
	assert.Equal(t, "40001", string(pqErr.Code))
}

func TestListByDateRange_PreservesDriverError(t *testing.T) {
	driverErr := &pq.Error{Code: "40P01"}
	repo := NewRepository(&failingExecutor{err: driverErr})

	startDate := time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)
	endDate := time.Date(2024, 12, 7, 0, 0, 0, 0, time.UTC)

	_, err := repo.ListByDateRange(context.Background(), startDate, endDate, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecQuery)

	var pqErr *pq.Error
	require.True(t, errors.As(err, &pqErr))
	assert.Equal(t, "40P01", string(pqErr.Code))
}
