package validate_coupon

import (
	"context"

	"github.com/m04kA/Fairway-BookingService/internal/service/coupons/models"
)

type CouponService interface {
	Validate(ctx context.Context, req *models.ValidateRequest) (*models.ValidateResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
