package check_availability

import (
	"context"
	"time"

	"github.com/m04kA/Fairway-BookingService/internal/domain"
	"github.com/m04kA/Fairway-BookingService/internal/service/admission"
)

// AdmissionEngine интерфейс движка допуска бронирований
type AdmissionEngine interface {
	CheckWindow(ctx context.Context, window domain.Window, poolSize int) (*admission.Occupancy, error)
	PoolSize() int
	Location() *time.Location
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
