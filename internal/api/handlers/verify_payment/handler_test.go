package verify_payment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	verifyPayment "github.com/m04kA/Fairway-BookingService/internal/usecase/verify_payment"
)

type stubUseCase struct {
	got *verifyPayment.Request
}

func (s *stubUseCase) Execute(ctx context.Context, req *verifyPayment.Request) *verifyPayment.Response {
	s.got = req
	return &verifyPayment.Response{RedirectURL: "https://fairway.example/booking/success?reference=" + req.Reference, Found: true}
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{}) {}

func TestHandle_Redirects(t *testing.T) {
	uc := &stubUseCase{}
	h := NewHandler(uc, nopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/payments/verify?reference=abc", nil))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "https://fairway.example/booking/success?reference=abc", rec.Header().Get("Location"))
	assert.Equal(t, "abc", uc.got.Reference)
}
