package coupons

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/m04kA/Fairway-BookingService/internal/domain"
	couponRepo "github.com/m04kA/Fairway-BookingService/internal/infra/storage/coupon"
	"github.com/m04kA/Fairway-BookingService/internal/service/coupons/models"
)

const (
	msgInvalid   = "Invalid coupon code"
	msgExpired   = "Coupon has expired"
	msgExhausted = "Coupon usage limit reached"
	msgRequired  = "Coupon code is required"
)

// Service сервис купонов
type Service struct {
	couponRepo   CouponRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса купонов
func NewService(couponRepo CouponRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		couponRepo:   couponRepo,
		txManager:    txManager,
		timeProvider: realTimeProvider{},
		logger:       logger,
	}
}

// Lookup находит купон, пригодный к применению
// Возвращает ErrCouponInvalid, ErrCouponExpired или ErrCouponExhausted
func (s *Service) Lookup(ctx context.Context, code string) (*domain.Coupon, error) {
	normalized := domain.NormalizeCouponCode(code)
	if normalized == "" {
		return nil, fmt.Errorf("%w: empty coupon code", ErrInvalidInput)
	}

	coupon, err := s.couponRepo.GetActiveByCode(ctx, normalized)
	if err != nil {
		if errors.Is(err, couponRepo.ErrCouponNotFound) {
			s.logger.Warn("Lookup: coupon code=%s not found", normalized)
			return nil, ErrCouponInvalid
		}
		s.logger.Error("Lookup: repository error for code=%s: %v", normalized, err)
		return nil, fmt.Errorf("%w: Lookup - repository error: %v", ErrInternal, err)
	}

	if coupon.IsExpired(s.timeProvider.Now()) {
		s.logger.Warn("Lookup: coupon code=%s expired at %s", normalized, coupon.ExpiresAt)
		return nil, ErrCouponExpired
	}
	if coupon.IsExhausted() {
		s.logger.Warn("Lookup: coupon code=%s exhausted, uses=%d", normalized, coupon.CurrentUses)
		return nil, ErrCouponExhausted
	}

	return coupon, nil
}

// Validate проверяет купон для суммы бронирования и засчитывает одно использование
func (s *Service) Validate(ctx context.Context, req *models.ValidateRequest) (*models.ValidateResponse, error) {
	s.logger.Info("Validate: code=%s, amount=%.2f", req.CouponCode, req.BookingAmount)

	if domain.NormalizeCouponCode(req.CouponCode) == "" {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, msgRequired)
	}
	if req.BookingAmount < 0 || math.IsNaN(req.BookingAmount) {
		return nil, fmt.Errorf("%w: negative booking amount", ErrInvalidInput)
	}

	var discount float64
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		// В транзакции купон читается с блокировкой строки
		coupon, err := s.Lookup(txCtx, req.CouponCode)
		if err != nil {
			return err
		}

		discount = coupon.Discount(req.BookingAmount)

		if err := s.couponRepo.IncrementUses(txCtx, coupon.ID); err != nil {
			if errors.Is(err, couponRepo.ErrUsageLimitReached) {
				return ErrCouponExhausted
			}
			return fmt.Errorf("%w: Validate - increment uses: %v", ErrInternal, err)
		}
		return nil
	})

	switch {
	case err == nil:
		s.logger.Info("Validate: code=%s applied, discount=%.2f", req.CouponCode, discount)
		return &models.ValidateResponse{
			Valid:          true,
			DiscountAmount: discount,
			Message:        fmt.Sprintf("Coupon applied! You saved R%.2f", discount),
		}, nil
	case errors.Is(err, ErrCouponInvalid):
		return &models.ValidateResponse{Message: msgInvalid}, nil
	case errors.Is(err, ErrCouponExpired):
		return &models.ValidateResponse{Message: msgExpired}, nil
	case errors.Is(err, ErrCouponExhausted):
		return &models.ValidateResponse{Message: msgExhausted}, nil
	case errors.Is(err, ErrInternal):
		return nil, err
	default:
		s.logger.Error("Validate: transaction failed for code=%s: %v", req.CouponCode, err)
		return nil, fmt.Errorf("%w: Validate - transaction: %v", ErrInternal, err)
	}
}
