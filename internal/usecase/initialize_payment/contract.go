package initialize_payment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/Fairway-BookingService/internal/domain"
	"github.com/m04kA/Fairway-BookingService/internal/integrations/yoco"
	"github.com/m04kA/Fairway-BookingService/internal/service/admission"
)

// AdmissionEngine интерфейс движка допуска бронирований
type AdmissionEngine interface {
	Admit(ctx context.Context, window domain.Window, poolSize int, draft domain.BookingDraft) (*admission.Admission, error)
	PoolSize() int
	Location() *time.Location
}

// CouponService интерфейс поиска купонов
type CouponService interface {
	Lookup(ctx context.Context, code string) (*domain.Coupon, error)
}

// PaymentGateway интерфейс платёжного шлюза
type PaymentGateway interface {
	CreateCheckout(ctx context.Context, checkout yoco.CheckoutRequest) (*yoco.Checkout, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	SetPaymentReference(ctx context.Context, id uuid.UUID, reference string) error
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
