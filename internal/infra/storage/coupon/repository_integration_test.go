//go:build integration

package coupon

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Fairway-BookingService/internal/domain"
	"github.com/m04kA/Fairway-BookingService/internal/infra/storage/pgtest"
	"github.com/m04kA/Fairway-BookingService/pkg/dbmetrics"
)

func seed(t *testing.T, db *dbmetrics.DB, code string, maxUses interface{}, active bool) {
	t.Helper()

	_, err := db.ExecContext(context.Background(),
		`INSERT INTO coupons (code, discount_type, discount_value, is_active, max_uses) VALUES ($1, 'percentage', 100, $2, $3)`,
		code, active, maxUses)
	require.NoError(t, err)
}

func TestRepository_GetActiveByCode(t *testing.T) {
	db := dbmetrics.Wrap(pgtest.Open(t), nil)
	repo := NewRepository(db)
	ctx := context.Background()

	seed(t, db, "FREEGOLF", 5, true)
	seed(t, db, "OLDPROMO", nil, false)

	c, err := repo.GetActiveByCode(ctx, "FREEGOLF")
	require.NoError(t, err)
	assert.Equal(t, domain.DiscountPercentage, c.DiscountType)
	assert.Equal(t, 100.0, c.DiscountValue)
	require.NotNil(t, c.MaxUses)
	assert.Equal(t, 5, *c.MaxUses)
	assert.Zero(t, c.CurrentUses)
	assert.Nil(t, c.ExpiresAt)

	_, err = repo.GetActiveByCode(ctx, "OLDPROMO")
	assert.ErrorIs(t, err, ErrCouponNotFound)

	_, err = repo.GetActiveByCode(ctx, "NOPE")
	assert.ErrorIs(t, err, ErrCouponNotFound)
}

func TestRepository_IncrementUsesStopsAtLimit(t *testing.T) {
	db := dbmetrics.Wrap(pgtest.Open(t), nil)
	repo := NewRepository(db)
	ctx := context.Background()

	seed(t, db, "TWICE", 2, true)
	c, err := repo.GetActiveByCode(ctx, "TWICE")
	require.NoError(t, err)

	require.NoError(t, repo.IncrementUses(ctx, c.ID))
	require.NoError(t, repo.IncrementUses(ctx, c.ID))
	assert.ErrorIs(t, repo.IncrementUses(ctx, c.ID), ErrUsageLimitReached)

	c, err = repo.GetActiveByCode(ctx, "TWICE")
	require.NoError(t, err)
	assert.Equal(t, 2, c.CurrentUses)

	assert.ErrorIs(t, repo.IncrementUses(ctx, c.ID+1000), ErrUsageLimitReached)
}

func TestRepository_IncrementUsesConcurrent(t *testing.T) {
	db := dbmetrics.Wrap(pgtest.Open(t), nil)
	repo := NewRepository(db)
	ctx := context.Background()

	const limit, attempts = 3, 12

	seed(t, db, "RUSH", limit, true)
	seed(t, db, "UNLIMITED", nil, true)
	rush, err := repo.GetActiveByCode(ctx, "RUSH")
	require.NoError(t, err)
	unlimited, err := repo.GetActiveByCode(ctx, "UNLIMITED")
	require.NoError(t, err)

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		redeemed int
		refused  int
	)
	for i := 0; i < attempts; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			err := repo.IncrementUses(ctx, rush.ID)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				redeemed++
			case errors.Is(err, ErrUsageLimitReached):
				refused++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
		go func() {
			defer wg.Done()
			if err := repo.IncrementUses(ctx, unlimited.ID); err != nil {
				t.Errorf("unlimited coupon refused: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, limit, redeemed)
	assert.Equal(t, attempts-limit, refused)

	rush, err = repo.GetActiveByCode(ctx, "RUSH")
	require.NoError(t, err)
	assert.Equal(t, limit, rush.CurrentUses)

	unlimited, err = repo.GetActiveByCode(ctx, "UNLIMITED")
	require.NoError(t, err)
	assert.Equal(t, attempts, unlimited.CurrentUses)
}
