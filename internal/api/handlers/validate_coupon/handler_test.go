package validate_coupon

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Fairway-BookingService/internal/service/coupons"
	"github.com/m04kA/Fairway-BookingService/internal/service/coupons/models"
)

type stubService struct {
	resp *models.ValidateResponse
	err  error
	got  *models.ValidateRequest
}

func (s *stubService) Validate(ctx context.Context, req *models.ValidateRequest) (*models.ValidateResponse, error) {
	s.got = req
	return s.resp, s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func post(h *Handler, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/coupons/validate", strings.NewReader(body)))
	return rec
}

func TestHandle_Valid(t *testing.T) {
	svc := &stubService{resp: &models.ValidateResponse{Valid: true, DiscountAmount: 50, Message: "Coupon applied! You saved R50.00"}}
	h := NewHandler(svc, nopLogger{})

	rec := post(h, `{"coupon_code":"golf10","booking_amount":500}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"valid":true,"discount_amount":50,"message":"Coupon applied! You saved R50.00"}`, rec.Body.String())
	assert.Equal(t, "golf10", svc.got.CouponCode)
	assert.Equal(t, 500.0, svc.got.BookingAmount)
}

func TestHandle_InvalidCouponIsNotAnError(t *testing.T) {
	h := NewHandler(&stubService{resp: &models.ValidateResponse{Message: "Invalid coupon code"}}, nopLogger{})

	rec := post(h, `{"coupon_code":"nope","booking_amount":500}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"valid":false,"discount_amount":0,"message":"Invalid coupon code"}`, rec.Body.String())
}

func TestHandle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, post(NewHandler(&stubService{}, nopLogger{}), `{`).Code)
	assert.Equal(t, http.StatusBadRequest,
		post(NewHandler(&stubService{err: coupons.ErrInvalidInput}, nopLogger{}), `{"coupon_code":""}`).Code)
	assert.Equal(t, http.StatusInternalServerError,
		post(NewHandler(&stubService{err: coupons.ErrInternal}, nopLogger{}), `{"coupon_code":"x"}`).Code)
}
