package domain

import (
	"math"
	"strings"
	"time"
)

// DiscountType тип скидки купона
type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

// Coupon represents a discount code
type Coupon struct {
	ID            int64
	Code          string
	DiscountType  DiscountType
	DiscountValue float64
	IsActive      bool
	ExpiresAt     *time.Time
	MaxUses       *int
	CurrentUses   int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NormalizeCouponCode приводит код к виду, в котором он хранится
func NormalizeCouponCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// IsExpired returns true if the coupon expiry has passed at now
func (c *Coupon) IsExpired(now time.Time) bool {
	return c.ExpiresAt != nil && c.ExpiresAt.Before(now)
}

// IsExhausted returns true if the usage limit is reached
func (c *Coupon) IsExhausted() bool {
	return c.MaxUses != nil && c.CurrentUses >= *c.MaxUses
}

// IsFullDiscount returns true for a 100% percentage coupon
func (c *Coupon) IsFullDiscount() bool {
	return c.DiscountType == DiscountPercentage && c.DiscountValue >= 100
}

// Discount returns the discount for amount, never more than amount itself
func (c *Coupon) Discount(amount float64) float64 {
	if amount <= 0 {
		return 0
	}

	var discount float64
	switch c.DiscountType {
	case DiscountPercentage:
		discount = amount * c.DiscountValue / 100
	case DiscountFixed:
		discount = c.DiscountValue
	}

	return math.Min(math.Max(discount, 0), amount)
}

// Apply returns the price after discount
func (c *Coupon) Apply(amount float64) float64 {
	return math.Max(0, amount-c.Discount(amount))
}

// PricingOutcome итог применения купона к цене бронирования
type PricingOutcome struct {
	TotalPrice    float64
	Status        BookingStatus
	PaymentStatus PaymentStatus
	CouponCode    *string
	SkipGateway   bool
}

// IsFree returns true if nothing has to be charged through the gateway
func (p PricingOutcome) IsFree() bool {
	return p.SkipGateway
}

// PriceBooking применяет купон к бронированию.
// Код администратора сохраняет базовую цену и помечает оплату на месте.
// Купон на 100% или нулевая итоговая сумма подтверждают бронирование без оплаты.
func PriceBooking(basePrice, totalPrice float64, coupon *Coupon, adminBypassCode string) PricingOutcome {
	out := PricingOutcome{
		TotalPrice:    totalPrice,
		Status:        StatusPending,
		PaymentStatus: PaymentPending,
	}

	if coupon != nil {
		code := coupon.Code
		out.CouponCode = &code

		switch {
		case adminBypassCode != "" && coupon.Code == NormalizeCouponCode(adminBypassCode):
			out.TotalPrice = basePrice
			out.Status = StatusConfirmed
			out.PaymentStatus = PaymentPaidInstore
			out.SkipGateway = true
			return out
		case coupon.IsFullDiscount():
			out.TotalPrice = 0
			out.Status = StatusConfirmed
			out.PaymentStatus = PaymentCompleted
			out.SkipGateway = true
			return out
		case coupon.DiscountValue > 0:
			out.TotalPrice = coupon.Apply(basePrice)
		}
	}

	if out.TotalPrice == 0 {
		out.Status = StatusConfirmed
		out.PaymentStatus = PaymentCompleted
		out.SkipGateway = true
	}

	return out
}
