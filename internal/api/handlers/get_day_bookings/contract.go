package get_day_bookings

import (
	"context"

	"github.com/m04kA/Fairway-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	ListDay(ctx context.Context, req *models.ListDayRequest) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
