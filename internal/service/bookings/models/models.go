package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/Fairway-BookingService/internal/domain"
)

// Request модели

// ListDayRequest запрос на получение бронирований за день
type ListDayRequest struct {
	Date             time.Time
	IncludeCancelled bool
}

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	CancellationReason *string `json:"cancellation_reason,omitempty"`
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID            uuid.UUID `json:"id"`
	BayID         int       `json:"bay_id"`
	BookingDate   string    `json:"booking_date"` // "2025-10-15"
	StartTime     string    `json:"start_time"`   // "10:00"
	EndTime       string    `json:"end_time"`
	DurationHours float64   `json:"duration_hours"`
	Status        string    `json:"status"` // с учётом завершения по времени
	PaymentStatus string    `json:"payment_status"`

	PlayerCount        int     `json:"player_count"`
	SessionType        string  `json:"session_type"`
	FamousCourseOption *string `json:"famous_course_option,omitempty"`
	UserType           string  `json:"user_type"`
	BasePrice          float64 `json:"base_price"`
	TotalPrice         float64 `json:"total_price"`

	GuestName        *string `json:"guest_name,omitempty"`
	GuestEmail       *string `json:"guest_email,omitempty"`
	GuestPhone       *string `json:"guest_phone,omitempty"`
	AcceptWhatsapp   bool    `json:"accept_whatsapp"`
	EnterCompetition bool    `json:"enter_competition"`
	CouponCode       *string `json:"coupon_code,omitempty"`
	SpecialRequests  *string `json:"special_requests,omitempty"`
	PaymentReference *string `json:"payment_reference,omitempty"`

	CancellationReason *string `json:"cancellation_reason,omitempty"`
	CancelledAt        *string `json:"cancelled_at,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Date     string            `json:"date"`
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
// Статус вычисляется на момент now
func FromDomainBooking(b *domain.Booking, now time.Time) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:                 b.ID,
		BayID:              b.BayID,
		BookingDate:        b.BookingDate.Format(domain.DateFormat),
		StartTime:          b.StartTime.String(),
		EndTime:            b.EndTime.String(),
		DurationHours:      b.DurationHours,
		Status:             string(b.EffectiveStatus(now)),
		PaymentStatus:      string(b.PaymentStatus),
		PlayerCount:        b.PlayerCount,
		SessionType:        b.SessionType,
		FamousCourseOption: b.FamousCourseOption,
		UserType:           string(b.UserType),
		BasePrice:          b.BasePrice,
		TotalPrice:         b.TotalPrice,
		GuestName:          b.GuestName,
		GuestEmail:         b.GuestEmail,
		GuestPhone:         b.GuestPhone,
		AcceptWhatsapp:     b.AcceptWhatsapp,
		EnterCompetition:   b.EnterCompetition,
		CouponCode:         b.CouponCode,
		SpecialRequests:    b.SpecialRequests,
		PaymentReference:   b.PaymentReference,
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}

	// Конвертируем CancelledAt в строку ISO 8601
	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(date time.Time, bookings []*domain.Booking, now time.Time) *BookingListResponse {
	resp := &BookingListResponse{
		Date:     date.Format(domain.DateFormat),
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking, now); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}
