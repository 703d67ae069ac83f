package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/Fairway-BookingService/internal/domain"
	"github.com/m04kA/Fairway-BookingService/internal/service/admission"
)

// AdmissionEngine интерфейс движка допуска бронирований
type AdmissionEngine interface {
	Admit(ctx context.Context, window domain.Window, poolSize int, draft domain.BookingDraft) (*admission.Admission, error)
	PoolSize() int
	Location() *time.Location
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
