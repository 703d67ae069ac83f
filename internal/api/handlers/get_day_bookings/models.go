package get_day_bookings

import (
	"fmt"
	"strconv"
	"time"

	"github.com/m04kA/Fairway-BookingService/internal/domain"
	"github.com/m04kA/Fairway-BookingService/internal/service/bookings/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
func ToServiceRequest(dateStr string, includeCancelledStr string) (*models.ListDayRequest, error) {
	if dateStr == "" {
		return nil, fmt.Errorf("date is required")
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	req := &models.ListDayRequest{
		Date:             date,
		IncludeCancelled: false, // По умолчанию без отменённых
	}

	if includeCancelledStr != "" {
		includeCancelled, err := strconv.ParseBool(includeCancelledStr)
		if err != nil {
			return nil, fmt.Errorf("invalid includeCancelled value: %w", err)
		}
		req.IncludeCancelled = includeCancelled
	}

	return req, nil
}
