package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/Fairway-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/Fairway-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/Fairway-BookingService/internal/service/bookings/models"
)

// Service сервис администрирования бронирований
type Service struct {
	bookingRepo  BookingRepository
	txManager    TransactionManager
	slots        SlotsInvalidator
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	slots SlotsInvalidator,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		txManager:    txManager,
		slots:        slots,
		timeProvider: realTimeProvider{},
		logger:       logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByID: successfully fetched booking id=%s", id)
	return models.FromDomainBooking(booking, s.timeProvider.Now()), nil
}

// ListDay получает бронирования за день, упорядоченные по началу и боксу
// Отменённые включаются только по запросу
func (s *Service) ListDay(ctx context.Context, req *models.ListDayRequest) (*models.BookingListResponse, error) {
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	date := req.Date.Format(domain.DateFormat)
	s.logger.Info("ListDay: fetching bookings for date=%s, includeCancelled=%t", date, req.IncludeCancelled)

	bookings, err := s.bookingRepo.GetByDay(ctx, domain.DayBookingsFilter{
		Date:             req.Date,
		IncludeCancelled: req.IncludeCancelled,
	})
	if err != nil {
		s.logger.Error("ListDay: repository error for date=%s: %v", date, err)
		return nil, fmt.Errorf("%w: ListDay - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListDay: successfully fetched %d bookings for date=%s", len(bookings), date)
	return models.FromDomainBookingList(req.Date, bookings, s.timeProvider.Now()), nil
}

// Cancel отменяет бронирование; бокс освобождается сразу
// Завершённые и уже отменённые бронирования отменить нельзя
func (s *Service) Cancel(ctx context.Context, bookingID uuid.UUID, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%s", bookingID)

	reason := normalizeReason(req.CancellationReason)
	if reason != nil && len(*reason) > domain.MaxCancellationReasonLength {
		s.logger.Warn("Cancel: reason too long for booking id=%s", bookingID)
		return fmt.Errorf("%w: cancellation reason exceeds %d characters", ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	var bookingDate time.Time
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		// Строка блокируется до конца транзакции
		booking, err := s.bookingRepo.GetByID(txCtx, bookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}

		now := s.timeProvider.Now()
		if !booking.CanBeCancelled(now) {
			s.logger.Warn("Cancel: booking id=%s cannot be cancelled, status=%s",
				bookingID, booking.EffectiveStatus(now))
			return ErrCannotCancel
		}

		if err := s.bookingRepo.Cancel(txCtx, bookingID, reason); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}

		bookingDate = booking.BookingDate
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrBookingNotFound):
			s.logger.Warn("Cancel: booking id=%s not found", bookingID)
		case errors.Is(err, ErrCannotCancel):
		default:
			s.logger.Error("Cancel: failed for booking id=%s: %v", bookingID, err)
			if !errors.Is(err, ErrInternal) {
				return fmt.Errorf("%w: Cancel - transaction: %v", ErrInternal, err)
			}
		}
		return err
	}

	if s.slots != nil {
		s.slots.ForgetDay(ctx, bookingDate)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%s", bookingID)
	return nil
}

func normalizeReason(reason *string) *string {
	if reason == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*reason)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
