package coupon

import "errors"

var (
	// ErrCouponNotFound возвращается, когда активный купон с таким кодом не найден
	ErrCouponNotFound = errors.New("coupon.repository: coupon not found")

	// ErrUsageLimitReached возвращается, когда лимит использований купона исчерпан
	ErrUsageLimitReached = errors.New("coupon.repository: usage limit reached")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("coupon.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("coupon.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("coupon.repository: failed to scan row")
)
