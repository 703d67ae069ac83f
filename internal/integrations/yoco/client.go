package yoco

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"strings"
	"time"
)

// Client клиент платёжного шлюза Yoco
type Client struct {
	baseURL    string
	secretKey  string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента Yoco
func NewClient(baseURL, secretKey string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		secretKey: secretKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// ToCents переводит сумму в минимальные единицы валюты
func ToCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// FormatAmount форматирует сумму для metadata
func FormatAmount(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}

// CreateCheckout создает checkout-сессию и возвращает ссылку для оплаты
func (c *Client) CreateCheckout(ctx context.Context, checkout CheckoutRequest) (*Checkout, error) {
	body, err := json.Marshal(checkout)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	url := c.baseURL + "/checkouts"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.secretKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		// Продолжаем обработку
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, ErrUnauthorized
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return nil, fmt.Errorf("%w: %s", ErrInvalidRequest, readError(resp.Body))
	default:
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, readError(resp.Body))
	}

	var result Checkout
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	if result.ID == "" || result.RedirectURL == "" {
		return nil, fmt.Errorf("%w: checkout without id or redirect url", ErrInvalidResponse)
	}

	c.log.Info("Yoco: checkout created id=%s, booking=%s, amount=%d", result.ID, checkout.Metadata.BookingID, checkout.Amount)

	return &result, nil
}

func readError(r io.Reader) string {
	raw, _ := io.ReadAll(io.LimitReader(r, 4096))

	var e ErrorResponse
	if err := json.Unmarshal(raw, &e); err == nil && (e.ErrorMessage != "" || e.Description != "") {
		return strings.TrimSpace(e.ErrorMessage + " " + e.Description)
	}
	return string(raw)
}
