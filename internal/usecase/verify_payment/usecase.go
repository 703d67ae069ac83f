package verify_payment

import (
	"context"
	"errors"
	"net/url"
	"strings"

	"github.com/google/uuid"

	bookingRepo "github.com/m04kA/Fairway-BookingService/internal/infra/storage/booking"
)

const (
	pathNoReference    = "/booking?error=no_payment_reference"
	pathNotFound       = "/booking?error=booking_not_found"
	pathSuccessPattern = "/booking/success?reference="
)

// UseCase use case возврата клиента со страницы оплаты
// Статус бронирования не меняется: подтверждение приходит через webhook
type UseCase struct {
	bookingRepo BookingRepository
	siteURL     string
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
// Пустой siteURL даёт относительные пути
func NewUseCase(bookingRepo BookingRepository, siteURL string, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		siteURL:     strings.TrimRight(siteURL, "/"),
		logger:      logger,
	}
}

// Execute определяет страницу, на которую вернуть клиента
// Даже pending бронирование ведёт на страницу успеха: webhook может прийти позже
func (uc *UseCase) Execute(ctx context.Context, req *Request) *Response {
	reference := strings.TrimSpace(req.Reference)
	if reference == "" {
		uc.logger.Warn("VerifyPayment: missing reference")
		return &Response{RedirectURL: uc.siteURL + pathNoReference}
	}

	id, err := uuid.Parse(reference)
	if err != nil {
		uc.logger.Warn("VerifyPayment: malformed reference=%q", reference)
		return &Response{RedirectURL: uc.siteURL + pathNotFound}
	}

	booking, err := uc.bookingRepo.GetByID(ctx, id)
	switch {
	case errors.Is(err, bookingRepo.ErrBookingNotFound):
		uc.logger.Warn("VerifyPayment: booking id=%s not found", id)
		return &Response{RedirectURL: uc.siteURL + pathNotFound}
	case err != nil:
		// клиент уже заплатил: при сбое хранилища всё равно ведём на страницу успеха
		uc.logger.Error("VerifyPayment: failed to read booking id=%s: %v", id, err)
	default:
		uc.logger.Info("VerifyPayment: booking id=%s, status=%s, payment=%s", id, booking.Status, booking.PaymentStatus)
	}

	return &Response{
		RedirectURL: uc.siteURL + pathSuccessPattern + url.QueryEscape(id.String()),
		Found:       err == nil,
	}
}
