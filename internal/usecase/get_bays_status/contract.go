package get_bays_status

import (
	"context"

	"github.com/m04kA/Fairway-BookingService/internal/service/admission"
)

// AdmissionEngine интерфейс движка допуска бронирований
type AdmissionEngine interface {
	LiveBays(ctx context.Context) (*admission.Board, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
