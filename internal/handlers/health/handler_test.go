package health

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type pinger func(ctx context.Context) error

func (p pinger) Ping(ctx context.Context) error {
	return p(ctx)
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name string
		ping pinger
		code int
	}{
		{
			name: "healthy",
			ping: func(_ context.Context) error { return nil },
			code: http.StatusOK,
		},
		{
			name: "database down",
			ping: func(_ context.Context) error { return errors.New("connection refused") },
			code: http.StatusServiceUnavailable,
		},
		{
			name: "ping is bounded",
			ping: func(ctx context.Context) error {
				_, ok := ctx.Deadline()
				assert.True(t, ok)

				return nil
			},
			code: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := Handler{db: tt.ping}

			rec := httptest.NewRecorder()
			h.Check(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tt.code, rec.Code)
		})
	}
}
