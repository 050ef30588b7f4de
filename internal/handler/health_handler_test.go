package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"verse-journal/internal/handler"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthHandler(t *testing.T) {
	up := handler.PingFunc(func(ctx context.Context) error { return nil })
	down := handler.PingFunc(func(ctx context.Context) error { return errors.New("connection refused") })

	tests := []struct {
		name   string
		checks map[string]handler.Pinger
		status int
		want   handler.HealthResponse
	}{
		{
			name:   "all up",
			checks: map[string]handler.Pinger{"database": up, "redis": up},
			status: fiber.StatusOK,
			want:   handler.HealthResponse{Status: "ok", Checks: map[string]string{"database": "up", "redis": "up"}},
		},
		{
			name:   "redis down",
			checks: map[string]handler.Pinger{"database": up, "redis": down},
			status: fiber.StatusServiceUnavailable,
			want:   handler.HealthResponse{Status: "degraded", Checks: map[string]string{"database": "up", "redis": "down"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/health", handler.NewHealthHandler(tt.checks).Health)

			resp, err := app.Test(httptest.NewRequest("GET", "/health", nil), -1)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)

			var body handler.HealthResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tt.want, body)
		})
	}
}
