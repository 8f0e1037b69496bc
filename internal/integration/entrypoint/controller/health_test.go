package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

func TestHealthController_Check(t *testing.T) {
	gin.SetMode(gin.TestMode)
	up := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("connection refused") }
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		checks     map[string]HealthCheck
		wantStatus int
		wantBody   HealthResponse
	}{
		{
			name:       "all dependencies up",
			checks:     map[string]HealthCheck{"database": up, "lock": up},
			wantStatus: http.StatusOK,
			wantBody: HealthResponse{
				Status:       "ok",
				Dependencies: map[string]string{"database": "connected", "lock": "connected"},
				Database:     "connected",
				Timestamp:    "2024-03-15T10:00:00Z",
			},
		},
		{
			name:       "lock backend down",
			checks:     map[string]HealthCheck{"database": up, "lock": down},
			wantStatus: http.StatusServiceUnavailable,
			wantBody: HealthResponse{
				Status:       "degraded",
				Dependencies: map[string]string{"database": "connected", "lock": "disconnected"},
				Database:     "connected",
				Timestamp:    "2024-03-15T10:00:00Z",
			},
		},
		{
			name:       "database down",
			checks:     map[string]HealthCheck{"database": down},
			wantStatus: http.StatusServiceUnavailable,
			wantBody: HealthResponse{
				Status:       "degraded",
				Dependencies: map[string]string{"database": "disconnected"},
				Database:     "disconnected",
				Timestamp:    "2024-03-15T10:00:00Z",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := gin.New()
			engine.GET("/health", NewHealthController(tt.checks, fixedClock{now}).Check)

			rec := httptest.NewRecorder()
			engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			var got HealthResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, tt.wantBody, got)
		})
	}
}
