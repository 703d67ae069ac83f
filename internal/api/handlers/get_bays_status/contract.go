package get_bays_status

import (
	"context"

	getBaysStatus "github.com/m04kA/Fairway-BookingService/internal/usecase/get_bays_status"
)

type BaysStatusUseCase interface {
	Execute(ctx context.Context) (*getBaysStatus.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
