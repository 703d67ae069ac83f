package get_available_slots

import (
	"context"
	"fmt"

	"github.com/m04kA/Fairway-BookingService/internal/domain"
)

// UseCase use case для получения сетки слотов дня
type UseCase struct {
	engine       SlotsEngine
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(engine SlotsEngine, logger Logger) *UseCase {
	return &UseCase{
		engine:       engine,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения слотов
// Результат рекомендательный: окончательное решение принимает допуск бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if req.Date.IsZero() {
		uc.logger.Warn("GetAvailableSlots: date is required")
		return nil, ErrInvalidDate
	}

	date := req.Date.Format(domain.DateFormat)
	uc.logger.Info("GetAvailableSlots: date=%s", date)

	// 2. Получаем занятость по слотам
	grid, err := uc.engine.SlotGrid(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to build slot grid for date=%s: %v", date, err)
		return nil, fmt.Errorf("%w: failed to build slot grid: %v", ErrInternal, err)
	}

	// 3. Полностью занятые слоты (с кэшем)
	booked, err := uc.engine.GetBookedSlots(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get booked slots for date=%s: %v", date, err)
		return nil, fmt.Errorf("%w: failed to get booked slots: %v", ErrInternal, err)
	}

	// 4. Отбрасываем прошедшие слоты
	slots := toSlots(grid, uc.engine.GranularityMinutes(), req.Date, uc.timeProvider.Now(), uc.engine.Location())

	uc.logger.Info("GetAvailableSlots: generated %d slots, %d fully booked for date=%s", len(slots), len(booked), date)

	return &Response{
		Date:        req.Date,
		Slots:       slots,
		BookedSlots: booked,
	}, nil
}
