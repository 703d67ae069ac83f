package get_bays_status

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/Fairway-BookingService/internal/service/admission"
)

// UseCase use case табло боксов для стойки администратора
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

// Execute возвращает занятость боксов на текущий момент
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	board, err := uc.engine.LiveBays(ctx)
	if err != nil {
		if errors.Is(err, admission.ErrStoreUnavailable) {
			return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}
		uc.logger.Error("GetBaysStatus: failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	bays := make([]Bay, 0, len(board.Bays))
	for _, state := range board.Bays {
		bay := Bay{
			ID:     state.ID,
			Status: StatusAvailable,
			Label:  fmt.Sprintf("Simulator %d", state.ID),
		}
		if state.Occupied {
			bay.Status = StatusOccupied
			bay.BookingID = state.BookingID
			bay.FreeAt = state.FreeAt
		}
		bays = append(bays, bay)
	}

	available := board.AvailableCount()
	uc.logger.Info("GetBaysStatus: %d of %d bays available", available, len(bays))

	return &Response{
		Bays:           bays,
		AvailableCount: available,
		ServerTime:     board.ServerTime,
	}, nil
}
