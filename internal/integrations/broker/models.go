package broker

import "time"

// Message тело сообщения о событии бронирования
type Message struct {
	Type        string    `json:"type"`
	BookingID   string    `json:"booking_id"`
	BayID       int       `json:"bay_id"`
	PaymentID   string    `json:"payment_id,omitempty"`
	Amount      float64   `json:"amount"`
	TotalPrice  float64   `json:"total_price"`
	DepositPaid float64   `json:"deposit_paid"`
	Outstanding float64   `json:"outstanding_balance"`
	Status      string    `json:"status"`
	GuestName   *string   `json:"guest_name,omitempty"`
	GuestEmail  *string   `json:"guest_email,omitempty"`
	GuestPhone  *string   `json:"guest_phone,omitempty"`
	SlotStart   time.Time `json:"slot_start"`
	OccurredAt  time.Time `json:"occurred_at"`
}
