package models

// ValidateRequest запрос на проверку купона
type ValidateRequest struct {
	CouponCode    string  `json:"coupon_code"`
	BookingAmount float64 `json:"booking_amount"`
}

// ValidateResponse результат проверки купона
// Невалидный купон - штатный ответ, а не ошибка
type ValidateResponse struct {
	Valid          bool    `json:"valid"`
	DiscountAmount float64 `json:"discount_amount"`
	Message        string  `json:"message"`
}
