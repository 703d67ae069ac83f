package get_bays_status

import (
	"errors"
	"net/http"

	"github.com/m04kA/Fairway-BookingService/internal/api/handlers"
	getBaysStatus "github.com/m04kA/Fairway-BookingService/internal/usecase/get_bays_status"
)

const (
	msgStoreUnavailable = "хранилище временно недоступно, повторите запрос"
)

type Handler struct {
	useCase BaysStatusUseCase
	logger  Logger
}

func NewHandler(useCase BaysStatusUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/bays/status
// Табло для стойки администратора, не кэшируется
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-store")

	result, err := h.useCase.Execute(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, getBaysStatus.ErrStoreUnavailable):
			h.logger.Error("GET /bays/status - Store unavailable: %v", err)
			handlers.RespondServiceUnavailable(w, msgStoreUnavailable)

		default:
			h.logger.Error("GET /bays/status - Failed to get bays status: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bays/status - available=%d of %d", result.AvailableCount, len(result.Bays))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
