package initialize_payment

import (
	"errors"
	"net/http"

	"github.com/m04kA/Fairway-BookingService/internal/api/handlers"
	initializePayment "github.com/m04kA/Fairway-BookingService/internal/usecase/initialize_payment"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректная дата (YYYY-MM-DD) или время начала (HH:MM)"
	msgInvalidInput       = "некорректные данные бронирования"
	msgSlotNotAvailable   = "Sorry, all bays are full for this time duration."
	msgInvalidTimeSlot    = "некорректный временной слот или вне часов работы"
	msgStoreUnavailable   = "хранилище временно недоступно, повторите запрос"
	msgPaymentFailed      = "Payment initialization failed"
)

type Handler struct {
	useCase InitializePaymentUseCase
	logger  Logger
}

func NewHandler(useCase InitializePaymentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/payments/initialize
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req InitializePaymentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /payments/initialize - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /payments/initialize - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, initializePayment.ErrSlotNotAvailable):
			h.logger.Warn("POST /payments/initialize - All bays taken: date=%s, time=%s",
				useCaseReq.Date.Format("2006-01-02"), useCaseReq.StartTime)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, initializePayment.ErrInvalidInput):
			h.logger.Warn("POST /payments/initialize - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, initializePayment.ErrInvalidTimeSlot):
			h.logger.Warn("POST /payments/initialize - Invalid time slot: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, initializePayment.ErrStoreUnavailable):
			h.logger.Error("POST /payments/initialize - Store unavailable: %v", err)
			handlers.RespondServiceUnavailable(w, msgStoreUnavailable)

		case errors.Is(err, initializePayment.ErrPaymentGateway):
			h.logger.Error("POST /payments/initialize - Gateway failed: %v", err)
			handlers.RespondBadGateway(w, msgPaymentFailed)

		default:
			h.logger.Error("POST /payments/initialize - Failed to initialize payment: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /payments/initialize - booking_id=%s, bay=%d, free=%t",
		result.BookingID, result.BayID, result.FreeBooking)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
