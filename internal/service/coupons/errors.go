package coupons

import "errors"

var (
	// ErrInvalidInput возвращается при пустом коде или отрицательной сумме
	ErrInvalidInput = errors.New("coupons: invalid input data")

	// ErrCouponInvalid купон не найден или выключен
	ErrCouponInvalid = errors.New("coupons: invalid coupon code")

	// ErrCouponExpired срок действия купона истёк
	ErrCouponExpired = errors.New("coupons: coupon has expired")

	// ErrCouponExhausted лимит использований исчерпан
	ErrCouponExhausted = errors.New("coupons: coupon usage limit reached")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("coupons: internal error")
)
