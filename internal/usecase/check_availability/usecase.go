package check_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/Fairway-BookingService/internal/domain"
	"github.com/m04kA/Fairway-BookingService/internal/service/admission"
)

// UseCase use case рекомендательной проверки свободного бокса на окно
type UseCase struct {
	engine AdmissionEngine
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(engine AdmissionEngine, logger Logger) *UseCase {
	return &UseCase{
		engine: engine,
		logger: logger,
	}
}

// Execute выполняет проверку
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Окно в часовом поясе площадки
	window, err := domain.NewWindow(req.Date, req.StartTime, req.DurationHours, uc.engine.Location())
	if err != nil {
		uc.logger.Warn("CheckAvailability: invalid window: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 2. Считаем пересечения
	occupancy, err := uc.engine.CheckWindow(ctx, window, uc.engine.PoolSize())
	if err != nil {
		switch {
		case errors.Is(err, admission.ErrInvalidWindow), errors.Is(err, admission.ErrInvalidPoolSize):
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		case errors.Is(err, admission.ErrStoreUnavailable):
			return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		default:
			uc.logger.Error("CheckAvailability: failed: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	uc.logger.Info("CheckAvailability: date=%s, time=%s, duration=%.2f, conflicting=%d/%d",
		req.Date.Format(domain.DateFormat), req.StartTime, req.DurationHours, occupancy.Conflicting, occupancy.Capacity)

	return &Response{
		Available:   occupancy.Available(),
		Conflicting: occupancy.Conflicting,
		Capacity:    occupancy.Capacity,
	}, nil
}
