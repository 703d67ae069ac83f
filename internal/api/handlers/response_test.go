package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondJSON(rec, http.StatusCreated, map[string]int{"assigned_bay": 2})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"assigned_bay":2}`, rec.Body.String())
}

func TestRespondJSON_NilBody(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondJSON(rec, http.StatusOK, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestRespondErrors(t *testing.T) {
	tests := []struct {
		name    string
		respond func(w http.ResponseWriter)
		status  int
		body    string
	}{
		{name: "bad request", respond: func(w http.ResponseWriter) { RespondBadRequest(w, "плохо") }, status: 400, body: `{"error":"плохо"}`},
		{name: "conflict", respond: func(w http.ResponseWriter) { RespondConflict(w, "занято") }, status: 409, body: `{"error":"занято"}`},
		{name: "bad gateway", respond: func(w http.ResponseWriter) { RespondBadGateway(w, "шлюз") }, status: 502, body: `{"error":"шлюз"}`},
		{name: "unavailable", respond: func(w http.ResponseWriter) { RespondServiceUnavailable(w, "позже") }, status: 503, body: `{"error":"позже"}`},
		{name: "internal", respond: RespondInternalError, status: 500, body: `{"error":"внутренняя ошибка сервера"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.respond(rec)
			assert.Equal(t, tt.status, rec.Code)
			assert.JSONEq(t, tt.body, rec.Body.String())
		})
	}
}

func TestDecodeJSON(t *testing.T) {
	var dst struct {
		BookingID string `json:"bookingId"`
	}

	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"bookingId":"abc"}`))
	require.NoError(t, DecodeJSON(r, &dst))
	assert.Equal(t, "abc", dst.BookingID)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
	assert.Error(t, DecodeJSON(r, &dst))

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"bookingId":1}`))
	assert.Error(t, DecodeJSON(r, &dst))

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{} {}`))
	assert.Error(t, DecodeJSON(r, &dst))
}
