package initialize_payment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	initializePayment "github.com/m04kA/Fairway-BookingService/internal/usecase/initialize_payment"
	"github.com/m04kA/Fairway-BookingService/pkg/types"
)

type stubUseCase struct {
	resp *initializePayment.Response
	err  error
	got  *initializePayment.Request
}

func (s *stubUseCase) Execute(ctx context.Context, req *initializePayment.Request) (*initializePayment.Response, error) {
	s.got = req
	return s.resp, s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestToUseCaseRequest_Aliases(t *testing.T) {
	req := InitializePaymentRequest{
		Date:           "2025-03-14",
		TimeSlot:       "15:30",
		Duration:       2,
		Players:        4,
		SessionTypeAlt: "4-ball",
		TotalPriceAlt:  1200,
		CustomerName:   strPtr("Naledi"),
		CustomerEmail:  strPtr("naledi@example.com"),
	}

	got, err := req.ToUseCaseRequest()
	require.NoError(t, err)

	assert.Equal(t, "2025-03-14", got.Date.Format("2006-01-02"))
	assert.Equal(t, types.TimeString("15:30"), got.StartTime)
	assert.Equal(t, 2.0, got.DurationHours)
	assert.Equal(t, 4, got.PlayerCount)
	assert.Equal(t, "4-ball", got.SessionType)
	require.NotNil(t, got.FamousCourseOption)
	assert.Equal(t, "4-ball", *got.FamousCourseOption)
	assert.Equal(t, 1200.0, got.TotalPrice)
	assert.Equal(t, 1200.0, got.BasePrice)
	assert.Equal(t, "Naledi", *got.GuestName)
	assert.Equal(t, "naledi@example.com", *got.GuestEmail)
	assert.Nil(t, got.GuestPhone)
}

func TestToUseCaseRequest_CanonicalWins(t *testing.T) {
	req := InitializePaymentRequest{
		BookingDate:   "2025-03-15",
		Date:          "2025-03-14",
		StartTime:     "09:00",
		TimeSlot:      "15:30",
		DurationHours: 1,
		PlayerCount:   2,
		BasePrice:     600,
		TotalPrice:    500,
	}

	got, err := req.ToUseCaseRequest()
	require.NoError(t, err)
	assert.Equal(t, "2025-03-15", got.Date.Format("2006-01-02"))
	assert.Equal(t, types.TimeString("09:00"), got.StartTime)
	assert.Equal(t, 600.0, got.BasePrice)
	assert.Equal(t, 500.0, got.TotalPrice)
}

func strPtr(s string) *string { return &s }

const body = `{"booking_date":"2025-03-14","start_time":"10:00","duration_hours":1,"player_count":2,"total_price":500}`

func TestHandle(t *testing.T) {
	id := uuid.New()

	t.Run("checkout", func(t *testing.T) {
		h := NewHandler(&stubUseCase{resp: &initializePayment.Response{
			BookingID:   id,
			BayID:       1,
			RedirectURL: "https://pay.example/ch_1",
			AmountDue:   200,
			Outstanding: 300,
		}}, nopLogger{})

		rec := httptest.NewRecorder()
		h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/payments/initialize", strings.NewReader(body)))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"booking_id":"`+id.String()+`","assigned_bay":1,"redirect_url":"https://pay.example/ch_1","redirectUrl":"https://pay.example/ch_1","amount_due":200,"outstanding_balance":300}`,
			rec.Body.String())
	})

	t.Run("free booking", func(t *testing.T) {
		h := NewHandler(&stubUseCase{resp: &initializePayment.Response{
			BookingID:   id,
			BayID:       2,
			FreeBooking: true,
			Message:     "Booking confirmed with coupon",
		}}, nopLogger{})

		rec := httptest.NewRecorder()
		h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/payments/initialize", strings.NewReader(body)))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"booking_id":"`+id.String()+`","assigned_bay":2,"free_booking":true,"message":"Booking confirmed with coupon"}`,
			rec.Body.String())
	})
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
	}{
		{name: "bad json", body: `[`, wantStatus: http.StatusBadRequest},
		{name: "no date", body: `{"start_time":"10:00"}`, wantStatus: http.StatusBadRequest},
		{name: "full", body: body, err: initializePayment.ErrSlotNotAvailable, wantStatus: http.StatusConflict},
		{name: "gateway", body: body, err: initializePayment.ErrPaymentGateway, wantStatus: http.StatusBadGateway},
		{name: "store", body: body, err: initializePayment.ErrStoreUnavailable, wantStatus: http.StatusServiceUnavailable},
		{name: "input", body: body, err: initializePayment.ErrInvalidInput, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&stubUseCase{err: tt.err}, nopLogger{})

			rec := httptest.NewRecorder()
			h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/payments/initialize", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
