package payment_webhook

import (
	"context"
	"net/http"

	confirmPayment "github.com/m04kA/Fairway-BookingService/internal/usecase/confirm_payment"
)

type WebhookUseCase interface {
	ExecuteWebhook(ctx context.Context, header http.Header, body []byte) (*confirmPayment.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
