package confirm_payment

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/Fairway-BookingService/internal/domain"
	"github.com/m04kA/Fairway-BookingService/internal/integrations/yoco"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BookingStatus, paymentStatus domain.PaymentStatus) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// SlotsInvalidator сбрасывает кэш занятых слотов дня
type SlotsInvalidator interface {
	ForgetDay(ctx context.Context, day time.Time)
}

// WebhookVerifier проверяет подпись webhook шлюза
type WebhookVerifier interface {
	Verify(header http.Header, body []byte, now time.Time) (*yoco.WebhookEvent, error)
}

// Notifier интерфейс оповещения системы автоматизации
type Notifier interface {
	Notify(ctx context.Context, event domain.BookingEvent) error
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
