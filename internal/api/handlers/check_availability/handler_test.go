package check_availability

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	checkAvailability "github.com/m04kA/Fairway-BookingService/internal/usecase/check_availability"
)

type stubUseCase struct {
	resp *checkAvailability.Response
	err  error
	got  *checkAvailability.Request
}

func (s *stubUseCase) Execute(ctx context.Context, req *checkAvailability.Request) (*checkAvailability.Response, error) {
	s.got = req
	return s.resp, s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandle(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		resp       *checkAvailability.Response
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "available",
			body:       `{"booking_date":"2025-03-14","start_time":"18:30","duration_hours":1.5}`,
			resp:       &checkAvailability.Response{Available: true, Conflicting: 1, Capacity: 3},
			wantStatus: http.StatusOK,
			wantBody:   `{"available":true,"conflicting_bookings":1,"capacity":3}`,
		},
		{
			name:       "bad date",
			body:       `{"booking_date":"14/03/2025","start_time":"18:30","duration_hours":1}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "bad body",
			body:       `{`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid window",
			body:       `{"booking_date":"2025-03-14","start_time":"18:30","duration_hours":0}`,
			err:        fmt.Errorf("%w: duration", checkAvailability.ErrInvalidInput),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "store down",
			body:       `{"booking_date":"2025-03-14","start_time":"18:30","duration_hours":1}`,
			err:        checkAvailability.ErrStoreUnavailable,
			wantStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&stubUseCase{resp: tt.resp, err: tt.err}, nopLogger{})

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings/check-availability", strings.NewReader(tt.body))
			h.Handle(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}
