package yoco

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	svix "github.com/svix/svix-webhooks/go"
)

const (
	headerWebhookTimestamp = "webhook-timestamp"

	secretPrefix       = "whsec_"
	signatureTolerance = 3 * time.Minute
)

// WebhookVerifier проверяет подпись webhook шлюза по схеме Standard Webhooks
// Верификатор без секрета отклоняет любое событие
type WebhookVerifier struct {
	wh *svix.Webhook
}

// NewWebhookVerifier создает верификатор из секрета вида whsec_<base64>
func NewWebhookVerifier(secret string) (*WebhookVerifier, error) {
	if strings.TrimSpace(strings.TrimPrefix(secret, secretPrefix)) == "" {
		return nil, fmt.Errorf("%w: webhook secret is empty", ErrInternal)
	}

	wh, err := svix.NewWebhook(secret)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed webhook secret: %v", ErrInternal, err)
	}

	return &WebhookVerifier{wh: wh}, nil
}

// Verify проверяет подпись тела запроса и разбирает событие
// Окно допуска по времени считается от now, а не от системных часов
func (v *WebhookVerifier) Verify(header http.Header, body []byte, now time.Time) (*WebhookEvent, error) {
	if v == nil || v.wh == nil {
		return nil, fmt.Errorf("%w: webhook secret is not configured", ErrInvalidSignature)
	}

	if err := checkTimestamp(header, now); err != nil {
		return nil, err
	}

	if err := v.wh.VerifyIgnoringTimestamp(body, header); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}

	var event WebhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return nil, fmt.Errorf("%w: failed to decode webhook: %v", ErrInvalidResponse, err)
	}

	return &event, nil
}

func checkTimestamp(header http.Header, now time.Time) error {
	raw := header.Get(headerWebhookTimestamp)
	if raw == "" {
		return fmt.Errorf("%w: missing signature headers", ErrInvalidSignature)
	}

	sec, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: malformed timestamp", ErrInvalidSignature)
	}

	sent := time.Unix(sec, 0)
	if now.Sub(sent) > signatureTolerance || sent.Sub(now) > signatureTolerance {
		return fmt.Errorf("%w: timestamp outside tolerance", ErrInvalidSignature)
	}

	return nil
}
