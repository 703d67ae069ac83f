package admission

import (
	"context"
	"time"

	"github.com/m04kA/Fairway-BookingService/internal/domain"
	"github.com/m04kA/Fairway-BookingService/pkg/types"
)

// BookingRepository интерфейс хранилища бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByDay(ctx context.Context, filter domain.DayBookingsFilter) ([]*domain.Booking, error)
	GetLive(ctx context.Context, at time.Time) ([]*domain.Booking, error)
	LockDay(ctx context.Context, day time.Time) error
}

// SlotsCache интерфейс кэша занятых слотов
type SlotsCache interface {
	Get(ctx context.Context, day time.Time, poolSize int) ([]types.TimeString, bool, error)
	Set(ctx context.Context, day time.Time, poolSize int, booked []types.TimeString) error
	Invalidate(ctx context.Context, day time.Time) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics счётчики допуска
type Metrics interface {
	RecordAdmission(outcome string)
	AddGhostsIgnored(n int)
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider возвращает системное время
type RealTimeProvider struct{}

func (RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
