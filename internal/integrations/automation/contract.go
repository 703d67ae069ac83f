package automation

import (
	"context"

	"github.com/m04kA/Fairway-BookingService/internal/domain"
)

// Notifier получатель событий бронирования
type Notifier interface {
	Notify(ctx context.Context, event domain.BookingEvent) error
}

// FailureRecorder учитывает неудачные доставки (метрики)
type FailureRecorder interface {
	RecordNotificationFailure(notifier string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
