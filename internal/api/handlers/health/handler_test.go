package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandle(t *testing.T) {
	ok := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("connection refused") }

	tests := []struct {
		name       string
		checks     map[string]Check
		wantStatus int
		wantBody   Response
	}{
		{
			name:       "healthy",
			checks:     map[string]Check{"database": ok, "redis": ok},
			wantStatus: http.StatusOK,
			wantBody:   Response{Status: "ok", Checks: map[string]string{"database": "ok", "redis": "ok"}},
		},
		{
			name:       "redis down",
			checks:     map[string]Check{"database": ok, "redis": down},
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   Response{Status: "degraded", Checks: map[string]string{"database": "ok", "redis": "connection refused"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			NewHandler(tt.checks).Handle(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			var body Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantBody, body)
		})
	}
}
