package confirm_payment

import (
	"time"

	"github.com/google/uuid"
)

// Source источник подтверждения оплаты
type Source string

const (
	SourceWebhook Source = "webhook"
	SourceManual  Source = "manual"
)

// Settings параметры подтверждения
type Settings struct {
	DepositPercent int
	GhostTimeout   time.Duration
}

// Request модель запроса на подтверждение оплаты
type Request struct {
	BookingID  uuid.UUID
	PaymentID  string   // ID платежа шлюза (пустой для ручного подтверждения)
	AmountPaid *float64 // Фактически оплаченная сумма, если известна
	Source     Source
}

// Response модель ответа
type Response struct {
	BookingID        uuid.UUID
	Status           string
	AlreadyConfirmed bool // Повторное подтверждение ничего не изменило
	Ignored          bool // Событие webhook не относится к оплате
	DepositPaid      float64
	Outstanding      float64
}
