package coupons

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Fairway-BookingService/internal/domain"
	couponRepo "github.com/m04kA/Fairway-BookingService/internal/infra/storage/coupon"
	"github.com/m04kA/Fairway-BookingService/internal/service/coupons/models"
	"github.com/m04kA/Fairway-BookingService/pkg/ptr"
)

type fakeRepo struct {
	coupons     map[string]*domain.Coupon
	incremented []int64
	getErr      error
	incErr      error
}

func (r *fakeRepo) GetActiveByCode(_ context.Context, code string) (*domain.Coupon, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	c, ok := r.coupons[code]
	if !ok || !c.IsActive {
		return nil, couponRepo.ErrCouponNotFound
	}
	return c, nil
}

func (r *fakeRepo) IncrementUses(_ context.Context, id int64) error {
	if r.incErr != nil {
		return r.incErr
	}
	r.incremented = append(r.incremented, id)
	return nil
}

type passTx struct{}

func (passTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService(repo *fakeRepo, now time.Time) *Service {
	s := NewService(repo, passTx{}, nopLogger{})
	s.timeProvider = fixedClock{now: now}
	return s
}

func testCoupons(now time.Time) map[string]*domain.Coupon {
	return map[string]*domain.Coupon{
		"SAVE10": {ID: 1, Code: "SAVE10", DiscountType: domain.DiscountPercentage, DiscountValue: 10, IsActive: true},
		"FLAT50": {ID: 2, Code: "FLAT50", DiscountType: domain.DiscountFixed, DiscountValue: 50, IsActive: true},
		"OLD": {
			ID: 3, Code: "OLD", DiscountType: domain.DiscountFixed, DiscountValue: 20, IsActive: true,
			ExpiresAt: ptr.Ptr(now.Add(-time.Hour)),
		},
		"ONCE": {
			ID: 4, Code: "ONCE", DiscountType: domain.DiscountFixed, DiscountValue: 20, IsActive: true,
			MaxUses: ptr.Ptr(1), CurrentUses: 1,
		},
		"OFF": {ID: 5, Code: "OFF", DiscountType: domain.DiscountFixed, DiscountValue: 20, IsActive: false},
	}
}

func TestValidate(t *testing.T) {
	now := time.Date(2025, time.March, 14, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		code         string
		amount       float64
		wantValid    bool
		wantDiscount float64
		wantMessage  string
		wantRedeemed []int64
	}{
		{
			name:         "percentage, code normalized",
			code:         "  save10 ",
			amount:       450,
			wantValid:    true,
			wantDiscount: 45,
			wantMessage:  "Coupon applied! You saved R45.00",
			wantRedeemed: []int64{1},
		},
		{
			name:         "fixed capped by amount",
			code:         "FLAT50",
			amount:       30,
			wantValid:    true,
			wantDiscount: 30,
			wantMessage:  "Coupon applied! You saved R30.00",
			wantRedeemed: []int64{2},
		},
		{name: "unknown", code: "NOPE", amount: 100, wantMessage: msgInvalid},
		{name: "inactive", code: "OFF", amount: 100, wantMessage: msgInvalid},
		{name: "expired", code: "OLD", amount: 100, wantMessage: msgExpired},
		{name: "exhausted", code: "ONCE", amount: 100, wantMessage: msgExhausted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepo{coupons: testCoupons(now)}

			resp, err := newTestService(repo, now).Validate(context.Background(), &models.ValidateRequest{
				CouponCode:    tt.code,
				BookingAmount: tt.amount,
			})
			require.NoError(t, err)

			assert.Equal(t, tt.wantValid, resp.Valid)
			assert.InDelta(t, tt.wantDiscount, resp.DiscountAmount, 0.001)
			assert.Equal(t, tt.wantMessage, resp.Message)
			assert.Equal(t, tt.wantRedeemed, repo.incremented)
		})
	}
}

func TestValidate_ConcurrentLimitReached(t *testing.T) {
	now := time.Now()
	repo := &fakeRepo{coupons: testCoupons(now), incErr: couponRepo.ErrUsageLimitReached}

	resp, err := newTestService(repo, now).Validate(context.Background(), &models.ValidateRequest{
		CouponCode:    "SAVE10",
		BookingAmount: 100,
	})
	require.NoError(t, err)
	assert.False(t, resp.Valid)
	assert.Equal(t, msgExhausted, resp.Message)
}

func TestValidate_Errors(t *testing.T) {
	now := time.Now()

	_, err := newTestService(&fakeRepo{}, now).Validate(context.Background(), &models.ValidateRequest{CouponCode: " "})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = newTestService(&fakeRepo{}, now).Validate(context.Background(), &models.ValidateRequest{
		CouponCode: "SAVE10", BookingAmount: -1,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	repo := &fakeRepo{getErr: errors.New("connection refused")}
	_, err = newTestService(repo, now).Validate(context.Background(), &models.ValidateRequest{
		CouponCode: "SAVE10", BookingAmount: 100,
	})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestLookup(t *testing.T) {
	now := time.Now()
	svc := newTestService(&fakeRepo{coupons: testCoupons(now)}, now)

	coupon, err := svc.Lookup(context.Background(), "flat50")
	require.NoError(t, err)
	assert.Equal(t, int64(2), coupon.ID)

	_, err = svc.Lookup(context.Background(), "OLD")
	assert.ErrorIs(t, err, ErrCouponExpired)
}
