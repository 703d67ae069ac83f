package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/Fairway-BookingService/internal/domain"
	"github.com/m04kA/Fairway-BookingService/internal/service/admission"
)

// UseCase use case для создания бронирования у стойки (walk-in)
type UseCase struct {
	engine       AdmissionEngine
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(engine AdmissionEngine, logger Logger) *UseCase {
	return &UseCase{
		engine:       engine,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка свободного бокса и вставка выполняются движком допуска атомарно
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: walk-in date=%s, time=%s, duration=%.2f, players=%d",
		req.Date.Format(domain.DateFormat), req.StartTime, req.DurationHours, req.PlayerCount)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Строим окно в часовом поясе площадки
	loc := uc.engine.Location()
	window, err := domain.NewWindow(req.Date, req.StartTime, req.DurationHours, loc)
	if err != nil {
		uc.logger.Warn("CreateBooking: invalid window: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidTimeSlot, err)
	}

	// 3. Прошедшие окна не допускаются
	if !window.End.After(uc.timeProvider.Now()) {
		uc.logger.Warn("CreateBooking: window %s %s already ended", req.Date.Format(domain.DateFormat), req.StartTime)
		return nil, ErrInvalidDate
	}

	// 4. Допуск
	result, err := uc.engine.Admit(ctx, window, uc.engine.PoolSize(), buildDraft(req))
	if err != nil {
		switch {
		case errors.Is(err, admission.ErrCapacityExceeded):
			return nil, fmt.Errorf("%w: %v", ErrSlotNotAvailable, err)
		case errors.Is(err, admission.ErrInvalidWindow), errors.Is(err, admission.ErrInvalidPoolSize):
			return nil, fmt.Errorf("%w: %v", ErrInvalidTimeSlot, err)
		case errors.Is(err, admission.ErrStoreUnavailable):
			return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		default:
			uc.logger.Error("CreateBooking: admission failed: %v", err)
			return nil, fmt.Errorf("%w: admission failed: %v", ErrInternal, err)
		}
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s, bay=%d", result.BookingID, result.BayID)

	return &Response{
		BookingID:   result.BookingID,
		AssignedBay: result.BayID,
		Status:      string(result.Booking.Status),
		CreatedAt:   result.Booking.CreatedAt,
	}, nil
}
