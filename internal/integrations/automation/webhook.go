package automation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/Fairway-BookingService/internal/domain"
)

const manualPaymentID = "manual_confirmation"

// WebhookClient отправляет события в webhook n8n
type WebhookClient struct {
	url        string
	secret     string
	httpClient *http.Client
	log        Logger
}

// NewWebhookClient создает новый экземпляр клиента
func NewWebhookClient(url, secret string, timeout time.Duration, log Logger) *WebhookClient {
	return &WebhookClient{
		url:    url,
		secret: secret,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Notify отправляет событие; ответ n8n не разбирается
func (c *WebhookClient) Notify(ctx context.Context, event domain.BookingEvent) error {
	body, err := json.Marshal(toWebhookEvent(event))
	if err != nil {
		return fmt.Errorf("%w: failed to marshal event: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Webhook-Timestamp", strconv.FormatInt(event.OccurredAt.UnixMilli(), 10))
	if c.secret != "" {
		req.Header.Set("X-Webhook-Secret", c.secret)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrDeliveryFailed, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: unexpected status code %d", ErrDeliveryFailed, resp.StatusCode)
	}

	c.log.Info("Automation: webhook delivered type=%s, booking=%s", event.Type, event.BookingID)
	return nil
}

func toWebhookEvent(event domain.BookingEvent) webhookEvent {
	paymentID := event.PaymentID
	if paymentID == "" {
		paymentID = manualPaymentID
	}
	status := "pending"
	if event.Type == domain.EventPaymentSucceeded {
		status = "succeeded"
	}

	return webhookEvent{
		Type: string(event.Type),
		Payload: webhookPayload{
			ID:     paymentID,
			Amount: int64(math.Round(event.Amount * 100)),
			Status: status,
			Metadata: webhookMetadata{
				BookingID:          event.BookingID.String(),
				BayID:              event.BayID,
				BookingStatus:      string(event.Status),
				TotalPrice:         fmt.Sprintf("%.2f", event.TotalPrice),
				DepositPaid:        fmt.Sprintf("%.2f", event.DepositPaid),
				OutstandingBalance: fmt.Sprintf("%.2f", event.Outstanding),
				SlotStart:          event.SlotStart.Format(time.RFC3339),
				GuestName:          event.GuestName,
				GuestEmail:         event.GuestEmail,
				GuestPhone:         event.GuestPhone,
			},
		},
	}
}
