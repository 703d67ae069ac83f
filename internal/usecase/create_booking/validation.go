package create_booking

import (
	"fmt"
	"math"
	"strings"

	"github.com/m04kA/Fairway-BookingService/internal/domain"
	"github.com/m04kA/Fairway-BookingService/pkg/ptr"
)

const (
	defaultGuestName   = "Walk-In Guest"
	defaultSessionType = "quick"
	defaultPlayerCount = 1

	paymentStatusCompleted = "completed"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Проверяем, что время начала указано
	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	// Валидируем формат времени
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.DurationHours <= 0 || math.IsNaN(req.DurationHours) {
		return fmt.Errorf("%w: durationHours must be positive", ErrInvalidInput)
	}

	if req.PlayerCount < 0 || req.PlayerCount > domain.MaxPlayerCount {
		return fmt.Errorf("%w: playerCount must be within 1..%d", ErrInvalidInput, domain.MaxPlayerCount)
	}

	if req.TotalPrice < 0 || math.IsNaN(req.TotalPrice) {
		return fmt.Errorf("%w: totalPrice must not be negative", ErrInvalidInput)
	}

	if req.GuestName != nil && len(*req.GuestName) > domain.MaxGuestNameLength {
		return fmt.Errorf("%w: guestName exceeds %d characters", ErrInvalidInput, domain.MaxGuestNameLength)
	}

	if req.SpecialRequests != nil && len(*req.SpecialRequests) > domain.MaxSpecialRequestsLength {
		return fmt.Errorf("%w: specialRequests exceeds %d characters", ErrInvalidInput, domain.MaxSpecialRequestsLength)
	}

	return nil
}

// buildDraft собирает черновик бронирования у стойки
// Оплаченное на месте бронирование сразу подтверждается
func buildDraft(req *Request) domain.BookingDraft {
	draft := domain.BookingDraft{
		Status:             domain.StatusPending,
		PaymentStatus:      domain.PaymentPending,
		PlayerCount:        req.PlayerCount,
		SessionType:        strings.TrimSpace(req.SessionType),
		FamousCourseOption: req.FamousCourseOption,
		UserType:           domain.UserTypeWalkIn,
		BasePrice:          req.TotalPrice,
		TotalPrice:         req.TotalPrice,
		GuestName:          req.GuestName,
		GuestEmail:         req.GuestEmail,
		GuestPhone:         req.GuestPhone,
		SpecialRequests:    req.SpecialRequests,
	}

	if strings.EqualFold(req.PaymentStatus, paymentStatusCompleted) {
		draft.Status = domain.StatusConfirmed
		draft.PaymentStatus = domain.PaymentPaidInstore
	}

	if draft.PlayerCount == 0 {
		draft.PlayerCount = defaultPlayerCount
	}
	if draft.SessionType == "" {
		draft.SessionType = defaultSessionType
	}
	if draft.GuestName == nil || strings.TrimSpace(*draft.GuestName) == "" {
		draft.GuestName = ptr.Ptr(defaultGuestName)
	}

	return draft
}
