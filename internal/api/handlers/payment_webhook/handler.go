package payment_webhook

import (
	"errors"
	"io"
	"net/http"

	"github.com/m04kA/Fairway-BookingService/internal/api/handlers"
	confirmPayment "github.com/m04kA/Fairway-BookingService/internal/usecase/confirm_payment"
)

const (
	maxWebhookBodySize = 1 << 20

	msgInvalidBody      = "некорректное тело webhook"
	msgInvalidSignature = "неверная подпись webhook"
	msgNotFound         = "бронирование не найдено"
	msgCannotConfirm    = "бронирование не может быть подтверждено"
)

// WebhookResponse HTTP response model
type WebhookResponse struct {
	Received bool   `json:"received"`
	Status   string `json:"status,omitempty"`
}

type Handler struct {
	useCase WebhookUseCase
	logger  Logger
}

func NewHandler(useCase WebhookUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/payments/webhook
// Подпись проверяется по сырому телу запроса, поэтому тело не декодируется заранее
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookBodySize))
	if err != nil {
		h.logger.Warn("POST /payments/webhook - Failed to read body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.useCase.ExecuteWebhook(r.Context(), r.Header, body)
	if err != nil {
		switch {
		case errors.Is(err, confirmPayment.ErrInvalidSignature):
			h.logger.Warn("POST /payments/webhook - Invalid signature: webhook_id=%s", r.Header.Get("webhook-id"))
			handlers.RespondUnauthorized(w, msgInvalidSignature)

		case errors.Is(err, confirmPayment.ErrInvalidInput):
			h.logger.Warn("POST /payments/webhook - Invalid payload: %v", err)
			handlers.RespondBadRequest(w, msgInvalidBody)

		case errors.Is(err, confirmPayment.ErrBookingNotFound):
			h.logger.Warn("POST /payments/webhook - Booking not found: %v", err)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, confirmPayment.ErrCannotConfirm):
			h.logger.Warn("POST /payments/webhook - Cannot confirm: %v", err)
			handlers.RespondConflict(w, msgCannotConfirm)

		default:
			h.logger.Error("POST /payments/webhook - Failed to process webhook: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if result.Ignored {
		h.logger.Info("POST /payments/webhook - Event ignored")
		handlers.RespondJSON(w, http.StatusOK, &WebhookResponse{Received: true})
		return
	}

	h.logger.Info("POST /payments/webhook - Payment processed: booking_id=%s, already_confirmed=%t",
		result.BookingID, result.AlreadyConfirmed)
	handlers.RespondJSON(w, http.StatusOK, &WebhookResponse{Received: true, Status: result.Status})
}
