package verify_payment

import (
	"context"
	"net/http"

	verifyPayment "github.com/m04kA/Fairway-BookingService/internal/usecase/verify_payment"
)

type VerifyPaymentUseCase interface {
	Execute(ctx context.Context, req *verifyPayment.Request) *verifyPayment.Response
}

type Logger interface {
	Info(format string, v ...interface{})
}

type Handler struct {
	useCase VerifyPaymentUseCase
	logger  Logger
}

func NewHandler(useCase VerifyPaymentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/payments/verify?reference=
// Клиент возвращается сюда со шлюза и всегда получает redirect
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result := h.useCase.Execute(r.Context(), &verifyPayment.Request{
		Reference: r.URL.Query().Get("reference"),
	})

	h.logger.Info("GET /payments/verify - Redirecting: found=%t, location=%s", result.Found, result.RedirectURL)
	http.Redirect(w, r, result.RedirectURL, http.StatusFound)
}
