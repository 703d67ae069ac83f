package automation

// webhookEvent тело запроса в n8n
// Повторяет формат события платёжного шлюза, чтобы один сценарий обрабатывал оба источника
type webhookEvent struct {
	Type    string         `json:"type"`
	Payload webhookPayload `json:"payload"`
}

type webhookPayload struct {
	ID       string          `json:"id"`
	Amount   int64           `json:"amount"` // в центах
	Status   string          `json:"status"`
	Metadata webhookMetadata `json:"metadata"`
}

type webhookMetadata struct {
	BookingID          string  `json:"bookingId"`
	BayID              int     `json:"bayId"`
	BookingStatus      string  `json:"bookingStatus"`
	TotalPrice         string  `json:"totalPrice"`
	DepositPaid        string  `json:"depositPaid"`
	OutstandingBalance string  `json:"outstandingBalance"`
	SlotStart          string  `json:"slotStart"`
	GuestName          *string `json:"guestName,omitempty"`
	GuestEmail         *string `json:"guestEmail,omitempty"`
	GuestPhone         *string `json:"guestPhone,omitempty"`
}
