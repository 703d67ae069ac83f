package confirm_payment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	confirmPayment "github.com/m04kA/Fairway-BookingService/internal/usecase/confirm_payment"
)

type stubUseCase struct {
	err error
	got *confirmPayment.Request
}

func (s *stubUseCase) Execute(ctx context.Context, req *confirmPayment.Request) (*confirmPayment.Response, error) {
	s.got = req
	if s.err != nil {
		return nil, s.err
	}
	return &confirmPayment.Response{
		BookingID:   req.BookingID,
		Status:      "confirmed",
		DepositPaid: 200,
		Outstanding: 300,
	}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandle_Success(t *testing.T) {
	id := uuid.New()
	uc := &stubUseCase{}
	h := NewHandler(uc, nopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/payments/confirm",
		strings.NewReader(`{"bookingId":"`+id.String()+`"}`)))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"booking_id":"`+id.String()+`","status":"confirmed","already_confirmed":false,"deposit_paid":200,"outstanding_balance":300}`,
		rec.Body.String())
	assert.Equal(t, confirmPayment.SourceManual, uc.got.Source)
}

func TestHandle_Errors(t *testing.T) {
	id := uuid.NewString()

	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
	}{
		{name: "empty body", body: ``, wantStatus: http.StatusBadRequest},
		{name: "bad id", body: `{"bookingId":"42"}`, wantStatus: http.StatusBadRequest},
		{name: "not found", body: `{"bookingId":"` + id + `"}`, err: confirmPayment.ErrBookingNotFound, wantStatus: http.StatusNotFound},
		{name: "cancelled", body: `{"bookingId":"` + id + `"}`, err: confirmPayment.ErrCannotConfirm, wantStatus: http.StatusBadRequest},
		{name: "internal", body: `{"bookingId":"` + id + `"}`, err: confirmPayment.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&stubUseCase{err: tt.err}, nopLogger{})

			rec := httptest.NewRecorder()
			h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/payments/confirm", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
