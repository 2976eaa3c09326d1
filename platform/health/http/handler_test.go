package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHandler(t *testing.T) {
	ok := Check{Name: "postgres", Fn: func(context.Context) error { return nil }}
	failing := Check{Name: "redis", Fn: func(context.Context) error { return errors.New("connection refused") }}

	tests := []struct {
		name     string
		checks   []Check
		wantCode int
		wantBody string
	}{
		{name: "no checks", wantCode: http.StatusOK, wantBody: `{"status":"ok"}`},
		{name: "all ok", checks: []Check{ok}, wantCode: http.StatusOK, wantBody: `{"status":"ok","checks":{"postgres":"ok"}}`},
		{
			name:     "one failing",
			checks:   []Check{ok, failing},
			wantCode: http.StatusServiceUnavailable,
			wantBody: `{"status":"not ready","checks":{"postgres":"ok","redis":"connection refused"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			Handler(time.Second, tt.checks...)(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

			require.Equal(t, tt.wantCode, rec.Code)
			require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			require.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
