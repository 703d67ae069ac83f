package initialize_payment

import (
	"fmt"
	"math"

	"github.com/m04kA/Fairway-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: booking_date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: start_time is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid start_time format: %v", ErrInvalidInput, err)
	}

	if req.DurationHours <= 0 || math.IsNaN(req.DurationHours) {
		return fmt.Errorf("%w: duration_hours must be positive", ErrInvalidInput)
	}

	if req.PlayerCount < 1 || req.PlayerCount > domain.MaxPlayerCount {
		return fmt.Errorf("%w: player_count must be within 1..%d", ErrInvalidInput, domain.MaxPlayerCount)
	}

	if req.BasePrice < 0 || req.TotalPrice < 0 || math.IsNaN(req.BasePrice) || math.IsNaN(req.TotalPrice) {
		return fmt.Errorf("%w: prices must not be negative", ErrInvalidInput)
	}

	if req.GuestName != nil && len(*req.GuestName) > domain.MaxGuestNameLength {
		return fmt.Errorf("%w: guest_name exceeds %d characters", ErrInvalidInput, domain.MaxGuestNameLength)
	}

	if req.SpecialRequests != nil && len(*req.SpecialRequests) > domain.MaxSpecialRequestsLength {
		return fmt.Errorf("%w: special_requests exceeds %d characters", ErrInvalidInput, domain.MaxSpecialRequestsLength)
	}

	return nil
}
