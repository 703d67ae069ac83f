package cancel_booking

import (
	"github.com/m04kA/Fairway-BookingService/internal/service/bookings/models"
)

// CancelBookingRequest HTTP request model
type CancelBookingRequest struct {
	CancellationReason *string `json:"cancellation_reason,omitempty"`
}

// CancelBookingResponse HTTP response model
type CancelBookingResponse struct {
	Success   bool   `json:"success"`
	BookingID string `json:"booking_id"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *CancelBookingRequest) ToServiceRequest() *models.CancelBookingRequest {
	return &models.CancelBookingRequest{
		CancellationReason: r.CancellationReason,
	}
}
