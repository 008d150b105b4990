package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) PingContext(ctx context.Context) error { return f(ctx) }

func TestHealth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		db   Pinger
		want int
	}{
		{"no database", nil, http.StatusOK},
		{"database up", pingerFunc(func(context.Context) error { return nil }), http.StatusOK},
		{"database down", pingerFunc(func(context.Context) error { return errors.New("dial tcp: refused") }), http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rr := httptest.NewRecorder()
			NewHealthHandler(tt.db).Health(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
			assert.Equal(t, tt.want, rr.Code)
		})
	}
}
