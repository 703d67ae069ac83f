package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/Fairway-BookingService/internal/domain"
	"github.com/m04kA/Fairway-BookingService/pkg/dbmetrics"
	"github.com/m04kA/Fairway-BookingService/pkg/psqlbuilder"
)

const tableBookings = "bookings"

var bookingColumns = []string{
	"id",
	"bay_id",
	"booking_date",
	"start_time",
	"end_time",
	"slot_start",
	"slot_end",
	"duration_hours",
	"status",
	"payment_status",
	"player_count",
	"session_type",
	"famous_course_option",
	"user_type",
	"base_price",
	"total_price",
	"guest_name",
	"guest_email",
	"guest_phone",
	"accept_whatsapp",
	"enter_competition",
	"coupon_code",
	"special_requests",
	"payment_reference",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
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
// Идентификатор, бокс и created_at задаются вызывающей стороной.
// Если в контексте передана активная транзакция, использует её.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableBookings).
		Columns(
			"id",
			"bay_id",
			"booking_date",
			"start_time",
			"end_time",
			"slot_start",
			"slot_end",
			"duration_hours",
			"status",
			"payment_status",
			"player_count",
			"session_type",
			"famous_course_option",
			"user_type",
			"base_price",
			"total_price",
			"guest_name",
			"guest_email",
			"guest_phone",
			"accept_whatsapp",
			"enter_competition",
			"coupon_code",
			"special_requests",
			"created_at",
			"updated_at",
		).
		Values(
			booking.ID,
			booking.BayID,
			booking.BookingDate.Format(domain.DateFormat),
			booking.StartTime,
			booking.EndTime,
			booking.SlotStart,
			booking.SlotEnd,
			booking.DurationHours,
			string(booking.Status),
			string(booking.PaymentStatus),
			booking.PlayerCount,
			booking.SessionType,
			booking.FamousCourseOption,
			string(booking.UserType),
			booking.BasePrice,
			booking.TotalPrice,
			booking.GuestName,
			booking.GuestEmail,
			booking.GuestPhone,
			booking.AcceptWhatsapp,
			booking.EnterCompetition,
			booking.CouponCode,
			booking.SpecialRequests,
			booking.CreatedAt,
			booking.UpdatedAt,
		).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return booking, nil
}

// GetByID получает бронирование по ID
// Внутри транзакции строка блокируется (FOR UPDATE) до её завершения
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From(tableBookings).
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %w", ErrScanRow, err)
	}

	return booking, nil
}

// GetByDay получает бронирования на дату
// Отменённые исключаются, если не указан IncludeCancelled.
// "Призрачные" pending записи возвращаются - их отсекает движок допуска.
func (r *Repository) GetByDay(ctx context.Context, filter domain.DayBookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From(tableBookings).
		Where(squirrel.Eq{"booking_date": filter.Date.Format(domain.DateFormat)}).
		OrderBy("slot_start ASC", "bay_id ASC")

	if !filter.IncludeCancelled {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": domain.StatusValues(domain.NonCancelledStatuses)})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDay - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDay - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// GetLive получает неотменённые бронирования, окно которых содержит момент at
func (r *Repository) GetLive(ctx context.Context, at time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From(tableBookings).
		Where(squirrel.Eq{"status": domain.StatusValues(domain.NonCancelledStatuses)}).
		Where(squirrel.LtOrEq{"slot_start": at}).
		Where(squirrel.Gt{"slot_end": at}).
		OrderBy("bay_id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetLive - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetLive - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// LockDay берёт транзакционную advisory-блокировку на дату.
// Все допуски на один день выполняются последовательно; блокировка снимается при commit/rollback.
func (r *Repository) LockDay(ctx context.Context, day time.Time) error {
	if !dbmetrics.IsInTransaction(ctx) {
		return ErrNotInTransaction
	}
	executor := dbmetrics.GetExecutor(ctx, r.db)

	key := "bookings:" + day.Format(domain.DateFormat)
	if _, err := executor.ExecContext(ctx, "SELECT pg_advisory_xact_lock(hashtext($1))", key); err != nil {
		return fmt.Errorf("%w: LockDay - acquire lock %s: %w", ErrExecQuery, key, err)
	}

	return nil
}

// UpdateStatus обновляет статус бронирования и статус оплаты
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BookingStatus, paymentStatus domain.PaymentStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableBookings).
		Set("status", string(status)).
		Set("payment_status", string(paymentStatus)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, executor, "UpdateStatus", query, args)
}

// SetPaymentReference сохраняет идентификатор checkout-сессии платёжного шлюза
func (r *Repository) SetPaymentReference(ctx context.Context, id uuid.UUID, reference string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableBookings).
		Set("payment_reference", reference).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetPaymentReference - build update query: %v", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, executor, "SetPaymentReference", query, args)
}

// Cancel отменяет бронирование с указанием причины
func (r *Repository) Cancel(ctx context.Context, id uuid.UUID, reason *string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableBookings).
		Set("status", string(domain.StatusCancelled)).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, executor, "Cancel", query, args)
}

func (r *Repository) execAffectingOne(ctx context.Context, executor DBExecutor, op, query string, args []interface{}) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %w", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var status, paymentStatus, userType string
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.BayID,
		&booking.BookingDate,
		&booking.StartTime,
		&booking.EndTime,
		&booking.SlotStart,
		&booking.SlotEnd,
		&booking.DurationHours,
		&status,
		&paymentStatus,
		&booking.PlayerCount,
		&booking.SessionType,
		&booking.FamousCourseOption,
		&userType,
		&booking.BasePrice,
		&booking.TotalPrice,
		&booking.GuestName,
		&booking.GuestEmail,
		&booking.GuestPhone,
		&booking.AcceptWhatsapp,
		&booking.EnterCompetition,
		&booking.CouponCode,
		&booking.SpecialRequests,
		&booking.PaymentReference,
		&booking.CancellationReason,
		&booking.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.Status = domain.BookingStatus(status)
	booking.PaymentStatus = domain.PaymentStatus(paymentStatus)
	booking.UserType = domain.UserType(userType)
	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %w", ErrScanRow, err)
	}

	return bookings, nil
}
