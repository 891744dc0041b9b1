package booking

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/massage-bot/schedule-service/internal/domain"
	"github.com/massage-bot/schedule-service/pkg/dbmetrics"
	"github.com/massage-bot/schedule-service/pkg/psqlbuilder"
)

var bookingColumns = []string{
	"id",
	"slot_id",
	"tg_user_id",
	"client_name",
	"client_phone",
	"status",
	"source",
	"coins_spent",
	"slot_date",
	"slot_start_time",
	"slot_end_time",
	"created_at",
	"updated_at",
	"cancelled_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Данные слота (дата и время) денормализуются в запись бронирования,
// чтобы списки записей не требовали join и переживали удаление слота.
// Предусловие "слот свободен" обеспечивается координатором в транзакции,
// а не этим репозиторием
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"slot_id",
			"tg_user_id",
			"client_name",
			"client_phone",
			"status",
			"source",
			"coins_spent",
			"slot_date",
			"slot_start_time",
			"slot_end_time",
		).
		Values(
			booking.SlotID,
			booking.TgUserID,
			booking.ClientName,
			booking.ClientPhone,
			booking.Status,
			booking.Source,
			booking.CoinsSpent,
			booking.SlotDate,
			booking.SlotStartTime,
			booking.SlotEndTime,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var booking domain.Booking
	err = r.scanBookingRow(executor.QueryRowContext(ctx, query, args...), &booking)
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %w", ErrScanRow, err)
	}

	return &booking, nil
}

// GetActiveBySlotID получает неотмененное бронирование слота
// Инвариант "не более одного активного бронирования на слот" поддерживается
// координатором; здесь он только читается
func (r *Repository) GetActiveBySlotID(ctx context.Context, slotID int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"slot_id": slotID}).
		Where(squirrel.NotEq{"status": domain.BookingCancelled}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveBySlotID - build select query: %v", ErrBuildQuery, err)
	}

	var booking domain.Booking
	err = r.scanBookingRow(executor.QueryRowContext(ctx, query, args...), &booking)
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveBySlotID - scan booking: %w", ErrScanRow, err)
	}

	return &booking, nil
}

// ListWithFilter получает бронирования с фильтрацией по статусу и периоду
// Сортировка по (дата слота, время начала)
func (r *Repository) ListWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		OrderBy("slot_date ASC, slot_start_time ASC")

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"slot_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"slot_date": *filter.EndDate})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// UpdateContactInfo частично обновляет контактные данные бронирования
// Поле, переданное как nil, остается без изменений; значения обрезаются
// от окружающих пробелов перед сохранением
func (r *Repository) UpdateContactInfo(ctx context.Context, id int64, clientName, clientPhone *string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("bookings").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if clientName != nil {
		updateBuilder = updateBuilder.Set("client_name", strings.TrimSpace(*clientName))
	}
	if clientPhone != nil {
		updateBuilder = updateBuilder.Set("client_phone", strings.TrimSpace(*clientPhone))
	}

	query, args, err := updateBuilder.
		Suffix("RETURNING " + strings.Join(bookingColumns, ", ")).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpdateContactInfo - build update query: %v", ErrBuildQuery, err)
	}

	var booking domain.Booking
	err = r.scanBookingRow(executor.QueryRowContext(ctx, query, args...), &booking)
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateContactInfo - scan booking: %w", ErrScanRow, err)
	}

	return &booking, nil
}

// UpdateStatus обновляет статус бронирования
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// Cancel отмечает бронирование отмененным
// Слот и баланс этим методом не затрагиваются - это работа координатора
func (r *Repository) Cancel(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.BookingCancelled).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanBookingRow(row rowScanner, booking *domain.Booking) error {
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.SlotID,
		&booking.TgUserID,
		&booking.ClientName,
		&booking.ClientPhone,
		&booking.Status,
		&booking.Source,
		&booking.CoinsSpent,
		&booking.SlotDate,
		&booking.SlotStartTime,
		&booking.SlotEndTime,
		&createdAt,
		&updatedAt,
		&booking.CancelledAt,
	)
	if err != nil {
		return err
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time
	return nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var booking domain.Booking
		if err := r.scanBookingRow(rows, &booking); err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %w", ErrScanRow, err)
		}
		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %w", ErrScanRow, err)
	}

	return bookings, nil
}
