package confirm_payment

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/Fairway-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/Fairway-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/Fairway-BookingService/internal/integrations/yoco"
	"github.com/m04kA/Fairway-BookingService/internal/service/admission"
)

const manualPaymentID = "manual_confirmation"

// UseCase use case подтверждения оплаты: webhook шлюза или ручное подтверждение
type UseCase struct {
	bookingRepo  BookingRepository
	txManager    TransactionManager
	slots        SlotsInvalidator
	verifier     WebhookVerifier
	notifier     Notifier
	settings     Settings
	ghosts       domain.GhostFilter
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
// slots и notifier могут быть nil
func NewUseCase(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	slots SlotsInvalidator,
	verifier WebhookVerifier,
	notifier Notifier,
	settings Settings,
	logger Logger,
) *UseCase {
	if settings.DepositPercent == 0 {
		settings.DepositPercent = domain.DefaultDepositPercent
	}

	return &UseCase{
		bookingRepo:  bookingRepo,
		txManager:    txManager,
		slots:        slots,
		verifier:     verifier,
		notifier:     notifier,
		settings:     settings,
		ghosts:       domain.NewGhostFilter(settings.GhostTimeout),
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// ExecuteWebhook проверяет подпись события шлюза и подтверждает оплату
// События, отличные от payment.succeeded, подтверждаются шлюзу, но не обрабатываются
func (uc *UseCase) ExecuteWebhook(ctx context.Context, header http.Header, body []byte) (*Response, error) {
	// 1. Подпись и разбор события
	event, err := uc.verifier.Verify(header, body, uc.timeProvider.Now())
	if err != nil {
		if errors.Is(err, yoco.ErrInvalidSignature) {
			uc.logger.Warn("ConfirmPayment: webhook rejected: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
		}
		uc.logger.Warn("ConfirmPayment: malformed webhook: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 2. Нас интересует только успешная оплата
	if event.Type != yoco.EventPaymentSucceeded {
		uc.logger.Info("ConfirmPayment: webhook event id=%s type=%s ignored", event.ID, event.Type)
		return &Response{Ignored: true}, nil
	}

	// 3. ID бронирования из metadata
	bookingID, err := uuid.Parse(strings.TrimSpace(event.Payload.Metadata.BookingID))
	if err != nil {
		uc.logger.Warn("ConfirmPayment: webhook event id=%s without valid bookingId: %v", event.ID, err)
		return nil, fmt.Errorf("%w: metadata.bookingId: %v", ErrInvalidInput, err)
	}

	amount := float64(event.Payload.Amount) / 100
	return uc.Execute(ctx, &Request{
		BookingID:  bookingID,
		PaymentID:  event.Payload.ID,
		AmountPaid: &amount,
		Source:     SourceWebhook,
	})
}

// Execute переводит бронирование из pending в confirmed
// Повторное подтверждение уже подтверждённого бронирования успешно и не рассылает событие
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.BookingID == uuid.Nil {
		return nil, fmt.Errorf("%w: bookingId is required", ErrInvalidInput)
	}
	if req.Source == "" {
		req.Source = SourceManual
	}

	uc.logger.Info("ConfirmPayment: booking id=%s, source=%s, payment=%s", req.BookingID, req.Source, req.PaymentID)

	var (
		booking          *domain.Booking
		alreadyConfirmed bool
	)

	// 1. Читаем и обновляем в одной транзакции
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		var err error
		booking, err = uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: Execute - repository error: %v", ErrInternal, err)
		}

		if booking.IsConfirmed() {
			alreadyConfirmed = true
			return nil
		}
		if !booking.CanBeConfirmed() {
			return fmt.Errorf("%w: status=%s", ErrCannotConfirm, booking.Status)
		}

		if uc.ghosts.IsGhost(booking, uc.timeProvider.Now()) {
			// бокс мог быть уже отдан другому бронированию
			uc.logger.Warn("ConfirmPayment: late confirmation of expired pending booking id=%s, bay=%d, date=%s",
				booking.ID, booking.BayID, booking.BookingDate.Format(domain.DateFormat))
		}

		if err := uc.bookingRepo.UpdateStatus(txCtx, booking.ID, domain.StatusConfirmed, domain.PaymentCompleted); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: Execute - update status: %v", ErrInternal, err)
		}

		booking.Status = domain.StatusConfirmed
		booking.PaymentStatus = domain.PaymentCompleted
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrBookingNotFound):
			uc.logger.Warn("ConfirmPayment: booking id=%s not found", req.BookingID)
			return nil, err
		case errors.Is(err, ErrCannotConfirm):
			uc.logger.Warn("ConfirmPayment: booking id=%s cannot be confirmed: %v", req.BookingID, err)
			return nil, err
		case errors.Is(err, ErrInternal):
			uc.logger.Error("ConfirmPayment: failed for booking id=%s: %v", req.BookingID, err)
			return nil, err
		default:
			uc.logger.Error("ConfirmPayment: transaction failed for booking id=%s: %v", req.BookingID, err)
			return nil, fmt.Errorf("%w: Execute - transaction: %v", ErrInternal, err)
		}
	}

	// 2. Разбивка депозита
	split := uc.depositSplit(booking, req.AmountPaid)

	if alreadyConfirmed {
		uc.logger.Info("ConfirmPayment: booking id=%s already confirmed, status=%s", booking.ID, booking.Status)
		return uc.response(booking, split, true), nil
	}

	// 3. Кэш дня и оповещение
	if uc.slots != nil {
		uc.slots.ForgetDay(ctx, booking.BookingDate)
	}

	paymentID := req.PaymentID
	if paymentID == "" {
		paymentID = manualPaymentID
	}
	uc.notify(ctx, domain.NewPaymentSucceededEvent(booking, paymentID, split, uc.timeProvider.Now()))

	uc.logger.Info("ConfirmPayment: booking id=%s confirmed, paid=%.2f, outstanding=%.2f",
		booking.ID, split.DueNow, split.Outstanding)

	return uc.response(booking, split, false), nil
}

// depositSplit сумма, принятая шлюзом, приоритетнее расчётной
func (uc *UseCase) depositSplit(b *domain.Booking, amountPaid *float64) domain.DepositSplit {
	if amountPaid != nil && *amountPaid > 0 && *amountPaid <= b.TotalPrice {
		return domain.DepositSplit{
			Total:       b.TotalPrice,
			DueNow:      *amountPaid,
			Outstanding: b.TotalPrice - *amountPaid,
		}
	}

	return domain.CalculateDeposit(
		b.TotalPrice,
		uc.settings.DepositPercent,
		domain.IsDepositEligible(b.SessionType, b.FamousCourseOption),
		false,
	)
}

func (uc *UseCase) notify(ctx context.Context, event domain.BookingEvent) {
	if uc.notifier == nil {
		return
	}
	if err := uc.notifier.Notify(ctx, event); err != nil {
		uc.logger.Warn("ConfirmPayment: %v for booking id=%s: %v", admission.ErrNotificationFailed, event.BookingID, err)
	}
}

func (uc *UseCase) response(b *domain.Booking, split domain.DepositSplit, already bool) *Response {
	return &Response{
		BookingID:        b.ID,
		Status:           string(b.EffectiveStatus(uc.timeProvider.Now())),
		AlreadyConfirmed: already,
		DepositPaid:      split.DueNow,
		Outstanding:      split.Outstanding,
	}
}
