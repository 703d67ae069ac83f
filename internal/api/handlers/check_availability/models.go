package check_availability

import (
	"time"

	"github.com/m04kA/Fairway-BookingService/internal/domain"
	checkAvailability "github.com/m04kA/Fairway-BookingService/internal/usecase/check_availability"
	"github.com/m04kA/Fairway-BookingService/pkg/types"
)

// CheckAvailabilityRequest HTTP request model
type CheckAvailabilityRequest struct {
	BookingDate   string  `json:"booking_date"`   // "2025-03-14"
	StartTime     string  `json:"start_time"`     // "18:30"
	DurationHours float64 `json:"duration_hours"` // 1.5
}

// CheckAvailabilityResponse HTTP response model
type CheckAvailabilityResponse struct {
	Available           bool `json:"available"`
	ConflictingBookings int  `json:"conflicting_bookings"`
	Capacity            int  `json:"capacity"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CheckAvailabilityRequest) ToUseCaseRequest() (*checkAvailability.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &checkAvailability.Request{
		Date:          date,
		StartTime:     startTime,
		DurationHours: r.DurationHours,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkAvailability.Response) *CheckAvailabilityResponse {
	return &CheckAvailabilityResponse{
		Available:           resp.Available,
		ConflictingBookings: resp.Conflicting,
		Capacity:            resp.Capacity,
	}
}
