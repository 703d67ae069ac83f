package coupon

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/Fairway-BookingService/internal/domain"
	"github.com/m04kA/Fairway-BookingService/pkg/dbmetrics"
	"github.com/m04kA/Fairway-BookingService/pkg/psqlbuilder"
)

const tableCoupons = "coupons"

// Repository репозиторий для работы с купонами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория купонов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetActiveByCode получает активный купон по коду
// Код должен быть уже нормализован (domain.NormalizeCouponCode)
func (r *Repository) GetActiveByCode(ctx context.Context, code string) (*domain.Coupon, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"code",
		"discount_type",
		"discount_value",
		"is_active",
		"expires_at",
		"max_uses",
		"current_uses",
		"created_at",
		"updated_at",
	).
		From(tableCoupons).
		Where(squirrel.Eq{"code": code, "is_active": true})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByCode - build select query: %v", ErrBuildQuery, err)
	}

	var c domain.Coupon
	var discountType string
	var maxUses sql.NullInt64
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&c.ID,
		&c.Code,
		&discountType,
		&c.DiscountValue,
		&c.IsActive,
		&c.ExpiresAt,
		&maxUses,
		&c.CurrentUses,
		&createdAt,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCouponNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByCode - scan coupon: %v", ErrScanRow, err)
	}

	c.DiscountType = domain.DiscountType(discountType)
	if maxUses.Valid {
		limit := int(maxUses.Int64)
		c.MaxUses = &limit
	}
	c.CreatedAt = createdAt.Time
	c.UpdatedAt = updatedAt.Time

	return &c, nil
}

// IncrementUses увеличивает счётчик использований купона
// Обновление атомарно проверяет лимит, поэтому параллельные погашения не превышают max_uses
func (r *Repository) IncrementUses(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableCoupons).
		Set("current_uses", squirrel.Expr("current_uses + 1")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Or{
			squirrel.Eq{"max_uses": nil},
			squirrel.Expr("current_uses < max_uses"),
		}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: IncrementUses - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: IncrementUses - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: IncrementUses - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrUsageLimitReached
	}

	return nil
}
