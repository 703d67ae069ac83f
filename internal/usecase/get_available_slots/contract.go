package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/Fairway-BookingService/internal/domain"
	"github.com/m04kA/Fairway-BookingService/pkg/types"
)

// SlotsEngine источник занятости слотов
type SlotsEngine interface {
	SlotGrid(ctx context.Context, day time.Time) ([]domain.SlotOccupancy, error)
	GetBookedSlots(ctx context.Context, day time.Time) ([]types.TimeString, error)
	Location() *time.Location
	GranularityMinutes() int
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
