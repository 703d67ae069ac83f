package yoco

// Metadata передаётся в checkout и возвращается в webhook без изменений
// Суммы передаются строками с двумя знаками после запятой
type Metadata struct {
	BookingID          string `json:"bookingId"`
	TotalPrice         string `json:"totalPrice,omitempty"`
	DepositPaid        string `json:"depositPaid,omitempty"`
	OutstandingBalance string `json:"outstandingBalance,omitempty"`
	IsDeposit          string `json:"isDeposit,omitempty"`
}

// CheckoutRequest запрос на создание checkout-сессии
type CheckoutRequest struct {
	Amount     int64    `json:"amount"` // в центах
	Currency   string   `json:"currency"`
	CancelURL  string   `json:"cancelUrl"`
	SuccessURL string   `json:"successUrl"`
	FailureURL string   `json:"failureUrl"`
	Metadata   Metadata `json:"metadata"`
}

// Checkout созданная checkout-сессия
type Checkout struct {
	ID          string `json:"id"`
	RedirectURL string `json:"redirectUrl"`
	Status      string `json:"status"`
}

// ErrorResponse модель ошибки от шлюза
type ErrorResponse struct {
	ErrorType    string `json:"errorType"`
	ErrorCode    string `json:"errorCode"`
	ErrorMessage string `json:"errorMessage"`
	Description  string `json:"description"`
}

// WebhookEvent событие от шлюза
type WebhookEvent struct {
	ID      string         `json:"id"`
	Type    string         `json:"type"`
	Payload WebhookPayload `json:"payload"`
}

// WebhookPayload платёж внутри события
type WebhookPayload struct {
	ID       string   `json:"id"`
	Amount   int64    `json:"amount"`
	Currency string   `json:"currency"`
	Status   string   `json:"status"`
	Metadata Metadata `json:"metadata"`
}

// EventPaymentSucceeded тип события об успешной оплате
const EventPaymentSucceeded = "payment.succeeded"
