package slot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/massage-bot/schedule-service/internal/domain"
	"github.com/massage-bot/schedule-service/pkg/dbmetrics"
	"github.com/massage-bot/schedule-service/pkg/psqlbuilder"
	"github.com/massage-bot/schedule-service/pkg/types"
)

// Код ошибки PostgreSQL unique_violation
const pgUniqueViolation = "23505"

var slotColumns = []string{
	"id",
	"slot_date",
	"start_time",
	"end_time",
	"status",
	"booking_id",
	"google_event_id",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы со слотами расписания
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый слот
// Уникальность (slot_date, start_time, end_time) обеспечивается constraint'ом БД:
// при дубликате возвращается ErrSlotAlreadyExists независимо от статуса
// существующего слота
func (r *Repository) Create(ctx context.Context, slot *domain.Slot) (*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("slots").
		Columns(
			"slot_date",
			"start_time",
			"end_time",
			"status",
			"google_event_id",
		).
		Values(
			slot.Date,
			slot.StartTime,
			slot.EndTime,
			slot.Status,
			slot.GoogleEventID,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&slot.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation {
			return nil, ErrSlotAlreadyExists
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	slot.CreatedAt = createdAt.Time
	slot.UpdatedAt = updatedAt.Time

	return slot, nil
}

// GetByID получает слот по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Slot, error) {
	return r.getByID(ctx, id, false)
}

// GetByIDForUpdate получает слот по ID с блокировкой строки (FOR UPDATE)
// Используется координатором бронирований внутри транзакции, чтобы два
// конкурентных запроса на один слот выполнялись строго по очереди
func (r *Repository) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Slot, error) {
	return r.getByID(ctx, id, true)
}

func (r *Repository) getByID(ctx context.Context, id int64, forUpdate bool) (*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(slotColumns...).
		From("slots").
		Where(squirrel.Eq{"id": id})

	if forUpdate && dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: getByID - build select query: %v", ErrBuildQuery, err)
	}

	var slot domain.Slot
	err = r.scanSlotRow(executor.QueryRowContext(ctx, query, args...), &slot)
	if err == sql.ErrNoRows {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: getByID - scan slot: %w", ErrScanRow, err)
	}

	return &slot, nil
}

// GetByGoogleEventID получает слот по ссылке на событие внешнего календаря
func (r *Repository) GetByGoogleEventID(ctx context.Context, eventID string) (*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(slotColumns...).
		From("slots").
		Where(squirrel.Eq{"google_event_id": eventID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByGoogleEventID - build select query: %v", ErrBuildQuery, err)
	}

	var slot domain.Slot
	err = r.scanSlotRow(executor.QueryRowContext(ctx, query, args...), &slot)
	if err == sql.ErrNoRows {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByGoogleEventID - scan slot: %w", ErrScanRow, err)
	}

	return &slot, nil
}

// ListByDateRange получает слоты за период (границы включительно)
// Опционально фильтрует по статусу; сортировка по (дата, время начала)
func (r *Repository) ListByDateRange(ctx context.Context, startDate, endDate time.Time, status *domain.SlotStatus) ([]*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(slotColumns...).
		From("slots").
		Where(squirrel.GtOrEq{"slot_date": startDate}).
		Where(squirrel.LtOrEq{"slot_date": endDate}).
		OrderBy("slot_date ASC, start_time ASC")

	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByDateRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByDateRange - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanSlots(rows)
}

// SetStatus атомарно обновляет статус слота вместе с booking_id
// Инвариант "booking_id установлен <=> статус booked" никогда не нарушается,
// потому что оба поля пишутся одним UPDATE
func (r *Repository) SetStatus(ctx context.Context, id int64, status domain.SlotStatus, bookingID *int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("slots").
		Set("status", status).
		Set("booking_id", bookingID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetStatus - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetStatus - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSlotNotFound
	}

	return nil
}

// UpdateTimes обновляет время слота (используется синхронизацией календаря)
func (r *Repository) UpdateTimes(ctx context.Context, id int64, startTime, endTime types.TimeString) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("slots").
		Set("start_time", startTime).
		Set("end_time", endTime).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateTimes - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation {
			return ErrSlotAlreadyExists
		}
		return fmt.Errorf("%w: UpdateTimes - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateTimes - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSlotNotFound
	}

	return nil
}

// Delete физически удаляет слот
// Вызывающая сторона обязана предварительно убедиться, что слот не занят
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("slots").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSlotNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanSlotRow(row rowScanner, slot *domain.Slot) error {
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&slot.ID,
		&slot.Date,
		&slot.StartTime,
		&slot.EndTime,
		&slot.Status,
		&slot.BookingID,
		&slot.GoogleEventID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return err
	}

	slot.CreatedAt = createdAt.Time
	slot.UpdatedAt = updatedAt.Time
	return nil
}

// scanSlots сканирует результаты запроса в слайс слотов
func (r *Repository) scanSlots(rows *sql.Rows) ([]*domain.Slot, error) {
	slots := make([]*domain.Slot, 0)

	for rows.Next() {
		var slot domain.Slot
		if err := r.scanSlotRow(rows, &slot); err != nil {
			return nil, fmt.Errorf("%w: scanSlots - scan row: %w", ErrScanRow, err)
		}
		slots = append(slots, &slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanSlots - rows error: %w", ErrScanRow, err)
	}

	return slots, nil
}
