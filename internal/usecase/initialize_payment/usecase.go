package initialize_payment

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/Fairway-BookingService/internal/domain"
	"github.com/m04kA/Fairway-BookingService/internal/integrations/yoco"
	"github.com/m04kA/Fairway-BookingService/internal/service/admission"
	"github.com/m04kA/Fairway-BookingService/internal/service/coupons"
)

const (
	msgWalkInConfirmed = "Walk-in Confirmed"
	msgCouponConfirmed = "Booking confirmed with coupon"
)

// UseCase use case для инициализации онлайн-оплаты бронирования
type UseCase struct {
	engine       AdmissionEngine
	coupons      CouponService
	gateway      PaymentGateway
	bookingRepo  BookingRepository
	notifier     Notifier
	settings     Settings
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
// notifier может быть nil
func NewUseCase(
	engine AdmissionEngine,
	coupons CouponService,
	gateway PaymentGateway,
	bookingRepo BookingRepository,
	notifier Notifier,
	settings Settings,
	logger Logger,
) *UseCase {
	settings.SiteURL = strings.TrimRight(settings.SiteURL, "/")
	if settings.Currency == "" {
		settings.Currency = "ZAR"
	}
	if settings.DepositPercent == 0 {
		settings.DepositPercent = domain.DefaultDepositPercent
	}

	return &UseCase{
		engine:       engine,
		coupons:      coupons,
		gateway:      gateway,
		bookingRepo:  bookingRepo,
		notifier:     notifier,
		settings:     settings,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case: цена с купоном, допуск, депозит, checkout
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("InitializePayment: date=%s, time=%s, duration=%.2f, players=%d, session=%s",
		req.Date.Format(domain.DateFormat), req.StartTime, req.DurationHours, req.PlayerCount, req.SessionType)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("InitializePayment: validation failed: %v", err)
		return nil, err
	}

	// 2. Окно в часовом поясе площадки
	window, err := domain.NewWindow(req.Date, req.StartTime, req.DurationHours, uc.engine.Location())
	if err != nil {
		uc.logger.Warn("InitializePayment: invalid window: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidTimeSlot, err)
	}
	if !window.End.After(uc.timeProvider.Now()) {
		uc.logger.Warn("InitializePayment: window %s %s already ended", req.Date.Format(domain.DateFormat), req.StartTime)
		return nil, fmt.Errorf("%w: window already ended", ErrInvalidTimeSlot)
	}

	// 3. Применяем купон
	coupon, err := uc.findCoupon(ctx, req.CouponCode)
	if err != nil {
		return nil, err
	}
	pricing := domain.PriceBooking(req.BasePrice, req.TotalPrice, coupon, uc.settings.AdminBypassCode)

	// 4. Допуск
	admitted, err := uc.engine.Admit(ctx, window, uc.engine.PoolSize(), buildDraft(req, pricing))
	if err != nil {
		switch {
		case errors.Is(err, admission.ErrCapacityExceeded):
			return nil, fmt.Errorf("%w: %v", ErrSlotNotAvailable, err)
		case errors.Is(err, admission.ErrInvalidWindow), errors.Is(err, admission.ErrInvalidPoolSize):
			return nil, fmt.Errorf("%w: %v", ErrInvalidTimeSlot, err)
		case errors.Is(err, admission.ErrStoreUnavailable):
			return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		default:
			uc.logger.Error("InitializePayment: admission failed: %v", err)
			return nil, fmt.Errorf("%w: admission failed: %v", ErrInternal, err)
		}
	}
	booking := admitted.Booking

	// 5. Бесплатное бронирование: шлюз не нужен
	if pricing.IsFree() {
		uc.notify(ctx, freeBookingEvent(booking, pricing, uc.timeProvider.Now()))

		message := msgCouponConfirmed
		if pricing.PaymentStatus == domain.PaymentPaidInstore {
			message = msgWalkInConfirmed
		}

		uc.logger.Info("InitializePayment: free booking id=%s confirmed, bay=%d", booking.ID, booking.BayID)
		return &Response{
			BookingID:   booking.ID,
			BayID:       booking.BayID,
			FreeBooking: true,
			Message:     message,
		}, nil
	}

	// 6. Депозит
	split := domain.CalculateDeposit(
		pricing.TotalPrice,
		uc.settings.DepositPercent,
		domain.IsDepositEligible(req.SessionType, req.FamousCourseOption),
		req.PayFullAmount,
	)

	// 7. Checkout
	checkout, err := uc.gateway.CreateCheckout(ctx, uc.checkoutRequest(booking.ID.String(), split))
	if err != nil {
		uc.logger.Error("InitializePayment: checkout failed for booking id=%s: %v", booking.ID, err)
		return nil, fmt.Errorf("%w: %v", ErrPaymentGateway, err)
	}

	// 8. Сохраняем ссылку на checkout
	if err := uc.bookingRepo.SetPaymentReference(ctx, booking.ID, checkout.ID); err != nil {
		uc.logger.Warn("InitializePayment: failed to store checkout id=%s for booking id=%s: %v",
			checkout.ID, booking.ID, err)
	}

	uc.logger.Info("InitializePayment: checkout id=%s created for booking id=%s, due=%.2f, outstanding=%.2f",
		checkout.ID, booking.ID, split.DueNow, split.Outstanding)

	return &Response{
		BookingID:   booking.ID,
		BayID:       booking.BayID,
		RedirectURL: checkout.RedirectURL,
		AmountDue:   split.DueNow,
		Outstanding: split.Outstanding,
	}, nil
}

// findCoupon ищет купон; неприменимый купон игнорируется, бронирование идёт по полной цене
func (uc *UseCase) findCoupon(ctx context.Context, code *string) (*domain.Coupon, error) {
	if code == nil || domain.NormalizeCouponCode(*code) == "" {
		return nil, nil
	}

	coupon, err := uc.coupons.Lookup(ctx, *code)
	if err != nil {
		switch {
		case errors.Is(err, coupons.ErrCouponInvalid),
			errors.Is(err, coupons.ErrCouponExpired),
			errors.Is(err, coupons.ErrCouponExhausted),
			errors.Is(err, coupons.ErrInvalidInput):
			uc.logger.Warn("InitializePayment: coupon code=%s ignored: %v", *code, err)
			return nil, nil
		default:
			uc.logger.Error("InitializePayment: coupon lookup failed for code=%s: %v", *code, err)
			return nil, fmt.Errorf("%w: coupon lookup: %v", ErrStoreUnavailable, err)
		}
	}

	return coupon, nil
}

func (uc *UseCase) checkoutRequest(bookingID string, split domain.DepositSplit) yoco.CheckoutRequest {
	site := uc.settings.SiteURL
	return yoco.CheckoutRequest{
		Amount:     yoco.ToCents(split.DueNow),
		Currency:   uc.settings.Currency,
		CancelURL:  site + "/booking?cancelled=true",
		SuccessURL: site + "/booking/success?bookingId=" + url.QueryEscape(bookingID),
		FailureURL: site + "/booking?error=payment_failed",
		Metadata: yoco.Metadata{
			BookingID:          bookingID,
			TotalPrice:         yoco.FormatAmount(split.Total),
			DepositPaid:        yoco.FormatAmount(split.DueNow),
			OutstandingBalance: yoco.FormatAmount(split.Outstanding),
			IsDeposit:          strconv.FormatBool(split.IsDeposit()),
		},
	}
}

// notify ошибки оповещения не влияют на результат
func (uc *UseCase) notify(ctx context.Context, event domain.BookingEvent) {
	if uc.notifier == nil {
		return
	}
	if err := uc.notifier.Notify(ctx, event); err != nil {
		uc.logger.Warn("InitializePayment: %v for booking id=%s: %v", admission.ErrNotificationFailed, event.BookingID, err)
	}
}

func buildDraft(req *Request, pricing domain.PricingOutcome) domain.BookingDraft {
	return domain.BookingDraft{
		Status:             pricing.Status,
		PaymentStatus:      pricing.PaymentStatus,
		PlayerCount:        req.PlayerCount,
		SessionType:        req.SessionType,
		FamousCourseOption: req.FamousCourseOption,
		UserType:           domain.UserTypeGuest,
		BasePrice:          req.BasePrice,
		TotalPrice:         pricing.TotalPrice,
		GuestName:          req.GuestName,
		GuestEmail:         req.GuestEmail,
		GuestPhone:         req.GuestPhone,
		AcceptWhatsapp:     req.AcceptWhatsapp,
		EnterCompetition:   req.EnterCompetition,
		CouponCode:         pricing.CouponCode,
		SpecialRequests:    req.SpecialRequests,
	}
}

// freeBookingEvent оплата на месте уходит как новое бронирование, купон на 100% как оплата
func freeBookingEvent(b *domain.Booking, pricing domain.PricingOutcome, now time.Time) domain.BookingEvent {
	if pricing.PaymentStatus == domain.PaymentPaidInstore {
		return domain.NewBookingCreatedEvent(b, now)
	}

	paymentID := "free"
	if pricing.CouponCode != nil {
		paymentID = "coupon:" + *pricing.CouponCode
	}
	return domain.NewPaymentSucceededEvent(b, paymentID, domain.CalculateDeposit(b.TotalPrice, 0, false, true), now)
}
