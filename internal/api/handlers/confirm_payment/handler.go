package confirm_payment

import (
	"errors"
	"net/http"

	"github.com/m04kA/Fairway-BookingService/internal/api/handlers"
	confirmPayment "github.com/m04kA/Fairway-BookingService/internal/usecase/confirm_payment"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgNotFound           = "бронирование не найдено"
	msgCannotConfirm      = "бронирование не может быть подтверждено"
)

type Handler struct {
	useCase ConfirmPaymentUseCase
	logger  Logger
}

func NewHandler(useCase ConfirmPaymentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/payments/confirm
// Ручное подтверждение оплаты
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ConfirmPaymentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /payments/confirm - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /payments/confirm - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, confirmPayment.ErrBookingNotFound):
			h.logger.Warn("POST /payments/confirm - Booking not found: booking_id=%s", useCaseReq.BookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, confirmPayment.ErrCannotConfirm):
			h.logger.Warn("POST /payments/confirm - Cannot confirm: booking_id=%s", useCaseReq.BookingID)
			handlers.RespondBadRequest(w, msgCannotConfirm)

		case errors.Is(err, confirmPayment.ErrInvalidInput):
			h.logger.Warn("POST /payments/confirm - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidBookingID)

		default:
			h.logger.Error("POST /payments/confirm - Failed to confirm payment: booking_id=%s, error=%v",
				useCaseReq.BookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /payments/confirm - Payment confirmed: booking_id=%s, already_confirmed=%t",
		result.BookingID, result.AlreadyConfirmed)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
