package confirm_payment

import (
	"github.com/google/uuid"

	confirmPayment "github.com/m04kA/Fairway-BookingService/internal/usecase/confirm_payment"
)

// ConfirmPaymentRequest HTTP request model
type ConfirmPaymentRequest struct {
	BookingID string `json:"bookingId"`
	PaymentID string `json:"paymentId,omitempty"`
}

// ConfirmPaymentResponse HTTP response model
type ConfirmPaymentResponse struct {
	Success            bool    `json:"success"`
	BookingID          string  `json:"booking_id"`
	Status             string  `json:"status"`
	AlreadyConfirmed   bool    `json:"already_confirmed"`
	DepositPaid        float64 `json:"deposit_paid"`
	OutstandingBalance float64 `json:"outstanding_balance"`
}

// ToUseCaseRequest конвертирует HTTP request в модель use case
func (r *ConfirmPaymentRequest) ToUseCaseRequest() (*confirmPayment.Request, error) {
	bookingID, err := uuid.Parse(r.BookingID)
	if err != nil {
		return nil, err
	}

	return &confirmPayment.Request{
		BookingID: bookingID,
		PaymentID: r.PaymentID,
		Source:    confirmPayment.SourceManual,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *confirmPayment.Response) *ConfirmPaymentResponse {
	return &ConfirmPaymentResponse{
		Success:            true,
		BookingID:          resp.BookingID.String(),
		Status:             resp.Status,
		AlreadyConfirmed:   resp.AlreadyConfirmed,
		DepositPaid:        resp.DepositPaid,
		OutstandingBalance: resp.Outstanding,
	}
}
