package create_booking

import (
	"time"

	"github.com/m04kA/Fairway-BookingService/internal/domain"
	createBooking "github.com/m04kA/Fairway-BookingService/internal/usecase/create_booking"
	"github.com/m04kA/Fairway-BookingService/pkg/types"
)

// CreateBookingRequest HTTP request model (бронирование у стойки)
type CreateBookingRequest struct {
	BookingDate        string  `json:"booking_date"` // "2025-03-14"
	StartTime          string  `json:"start_time"`   // "10:00"
	DurationHours      float64 `json:"duration_hours"`
	TotalPrice         float64 `json:"total_price"`
	GuestName          *string `json:"guest_name,omitempty"`
	GuestEmail         *string `json:"guest_email,omitempty"`
	GuestPhone         *string `json:"guest_phone,omitempty"`
	PaymentStatus      string  `json:"payment_status"` // "completed" если оплачено на месте
	Players            int     `json:"players"`
	SessionType        string  `json:"session_type"`
	FamousCourseOption *string `json:"famous_course_option,omitempty"`
	SpecialRequests    *string `json:"special_requests,omitempty"`
}

// CreateBookingResponse HTTP response model
type CreateBookingResponse struct {
	Success     bool   `json:"success"`
	BookingID   string `json:"booking_id"`
	AssignedBay int    `json:"assigned_bay"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	// Парсим дату
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	// Парсим время
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		Date:               bookingDate,
		StartTime:          startTime,
		DurationHours:      r.DurationHours,
		PlayerCount:        r.Players,
		SessionType:        r.SessionType,
		FamousCourseOption: r.FamousCourseOption,
		GuestName:          r.GuestName,
		GuestEmail:         r.GuestEmail,
		GuestPhone:         r.GuestPhone,
		TotalPrice:         r.TotalPrice,
		PaymentStatus:      r.PaymentStatus,
		SpecialRequests:    r.SpecialRequests,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	return &CreateBookingResponse{
		Success:     true,
		BookingID:   resp.BookingID.String(),
		AssignedBay: resp.AssignedBay,
		Status:      resp.Status,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
	}
}
