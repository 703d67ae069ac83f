package domain

import (
	"time"

	"github.com/google/uuid"
)

// EventType тип события для системы автоматизации
type EventType string

const (
	// EventBookingCreated бронирование допущено и ожидает оплаты на месте или онлайн
	EventBookingCreated EventType = "booking.created"

	// EventPaymentSucceeded оплата подтверждена (шлюзом, вручную или купоном)
	EventPaymentSucceeded EventType = "payment.succeeded"
)

// BookingEvent событие, отправляемое во внешнюю автоматизацию после допуска или оплаты
type BookingEvent struct {
	Type        EventType
	BookingID   uuid.UUID
	BayID       int
	PaymentID   string
	Amount      float64
	TotalPrice  float64
	DepositPaid float64
	Outstanding float64
	Status      BookingStatus
	GuestName   *string
	GuestEmail  *string
	GuestPhone  *string
	SlotStart   time.Time
	OccurredAt  time.Time
}

// NewPaymentSucceededEvent собирает событие об оплате с разбивкой депозита
func NewPaymentSucceededEvent(b *Booking, paymentID string, split DepositSplit, now time.Time) BookingEvent {
	return BookingEvent{
		Type:        EventPaymentSucceeded,
		BookingID:   b.ID,
		BayID:       b.BayID,
		PaymentID:   paymentID,
		Amount:      split.DueNow,
		TotalPrice:  split.Total,
		DepositPaid: split.DueNow,
		Outstanding: split.Outstanding,
		Status:      b.Status,
		GuestName:   b.GuestName,
		GuestEmail:  b.GuestEmail,
		GuestPhone:  b.GuestPhone,
		SlotStart:   b.SlotStart,
		OccurredAt:  now,
	}
}

// NewBookingCreatedEvent собирает событие о новом бронировании
func NewBookingCreatedEvent(b *Booking, now time.Time) BookingEvent {
	return BookingEvent{
		Type:        EventBookingCreated,
		BookingID:   b.ID,
		BayID:       b.BayID,
		TotalPrice:  b.TotalPrice,
		Outstanding: b.TotalPrice,
		Status:      b.Status,
		GuestName:   b.GuestName,
		GuestEmail:  b.GuestEmail,
		GuestPhone:  b.GuestPhone,
		SlotStart:   b.SlotStart,
		OccurredAt:  now,
	}
}
