package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/Fairway-BookingService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending     BookingStatus = "pending"
	StatusConfirmed   BookingStatus = "confirmed"
	StatusPaidInstore BookingStatus = "paid_instore"
	StatusCancelled   BookingStatus = "cancelled"
	StatusCompleted   BookingStatus = "completed"
)

// PaymentStatus represents the payment state of a booking
type PaymentStatus string

const (
	PaymentPending     PaymentStatus = "pending"
	PaymentCompleted   PaymentStatus = "completed"
	PaymentPaidInstore PaymentStatus = "paid_instore"
	PaymentFailed      PaymentStatus = "failed"
	PaymentRefunded    PaymentStatus = "refunded"
)

// UserType тип клиента
type UserType string

const (
	UserTypeGuest  UserType = "guest"
	UserTypeWalkIn UserType = "walk_in"
)

// Booking represents a bay reservation
type Booking struct {
	ID            uuid.UUID
	BayID         int // 0 только до назначения бокса
	BookingDate   time.Time
	StartTime     types.TimeString
	EndTime       types.TimeString
	SlotStart     time.Time
	SlotEnd       time.Time
	DurationHours float64
	Status        BookingStatus
	PaymentStatus PaymentStatus

	PlayerCount        int
	SessionType        string
	FamousCourseOption *string
	UserType           UserType
	BasePrice          float64
	TotalPrice         float64

	GuestName        *string
	GuestEmail       *string
	GuestPhone       *string
	AcceptWhatsapp   bool
	EnterCompetition bool
	CouponCode       *string
	SpecialRequests  *string
	PaymentReference *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Window returns the occupied interval
func (b *Booking) Window() Window {
	return Window{Start: b.SlotStart, End: b.SlotEnd}
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// EffectiveStatus returns the status as seen at now.
// A confirmed or paid booking whose window has ended reads as completed; nothing is written.
func (b *Booking) EffectiveStatus(now time.Time) BookingStatus {
	switch b.Status {
	case StatusConfirmed, StatusPaidInstore:
		if !now.Before(b.SlotEnd) {
			return StatusCompleted
		}
	}
	return b.Status
}

// CanBeCancelled returns true if the booking can be cancelled at now
func (b *Booking) CanBeCancelled(now time.Time) bool {
	switch b.EffectiveStatus(now) {
	case StatusPending, StatusConfirmed, StatusPaidInstore:
		return true
	default:
		return false
	}
}

// CanBeConfirmed returns true if payment confirmation may move the booking to confirmed
func (b *Booking) CanBeConfirmed() bool {
	return b.Status == StatusPending
}

// IsConfirmed returns true if payment was already accepted
func (b *Booking) IsConfirmed() bool {
	return b.Status == StatusConfirmed || b.Status == StatusPaidInstore
}

// BookingDraft данные нового бронирования до назначения бокса
type BookingDraft struct {
	Status        BookingStatus
	PaymentStatus PaymentStatus

	PlayerCount        int
	SessionType        string
	FamousCourseOption *string
	UserType           UserType
	BasePrice          float64
	TotalPrice         float64

	GuestName        *string
	GuestEmail       *string
	GuestPhone       *string
	AcceptWhatsapp   bool
	EnterCompetition bool
	CouponCode       *string
	SpecialRequests  *string
}

// ToBooking собирает запись для вставки: окно, бокс и время создания задаются движком
func (d BookingDraft) ToBooking(window Window, bayID int, loc *time.Location, now time.Time) *Booking {
	status := d.Status
	if status == "" {
		status = StatusPending
	}
	paymentStatus := d.PaymentStatus
	if paymentStatus == "" {
		paymentStatus = PaymentPending
	}

	local := window.Start.In(loc)
	y, m, day := local.Date()

	return &Booking{
		ID:                 uuid.New(),
		BayID:              bayID,
		BookingDate:        time.Date(y, m, day, 0, 0, 0, 0, time.UTC),
		StartTime:          window.StartLabel(loc),
		EndTime:            window.EndLabel(loc),
		SlotStart:          window.Start,
		SlotEnd:            window.End,
		DurationHours:      window.Duration().Hours(),
		Status:             status,
		PaymentStatus:      paymentStatus,
		PlayerCount:        d.PlayerCount,
		SessionType:        d.SessionType,
		FamousCourseOption: d.FamousCourseOption,
		UserType:           d.UserType,
		BasePrice:          d.BasePrice,
		TotalPrice:         d.TotalPrice,
		GuestName:          d.GuestName,
		GuestEmail:         d.GuestEmail,
		GuestPhone:         d.GuestPhone,
		AcceptWhatsapp:     d.AcceptWhatsapp,
		EnterCompetition:   d.EnterCompetition,
		CouponCode:         d.CouponCode,
		SpecialRequests:    d.SpecialRequests,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

// DayBookingsFilter фильтр для выборки бронирований за день
type DayBookingsFilter struct {
	Date             time.Time
	IncludeCancelled bool
}
