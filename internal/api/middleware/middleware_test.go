// Package middleware_test provides behavior tests for the API middleware package.
package middleware_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jroosing/easyhosts/internal/api/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func okHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ============================================================================
// RequireAPIKey Middleware Tests
// ============================================================================

func TestRequireAPIKey(t *testing.T) {
	tests := []struct {
		name     string
		expected string
		header   string
		want     int
	}{
		{"valid key", "test-secret", "test-secret", http.StatusOK},
		{"wrong key", "correct-key", "wrong-key", http.StatusUnauthorized},
		{"missing key", "correct-key", "", http.StatusUnauthorized},
		{"prefix of key", "correct-key", "correct", http.StatusUnauthorized},
		{"no key configured", "", "", http.StatusOK},
		{"no key configured, key sent", "", "anything", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(middleware.RequireAPIKey(tt.expected))
			router.GET("/hosts", okHandler)

			req := httptest.NewRequest(http.MethodGet, "/hosts", nil)
			if tt.header != "" {
				req.Header.Set("X-Api-Key", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code)
			if tt.want == http.StatusUnauthorized {
				assert.JSONEq(t, `{"error":"unauthorized"}`, w.Body.String())
			}
		})
	}
}

// ============================================================================
// RequestID Middleware Tests
// ============================================================================

func TestRequestID_GeneratesUUID(t *testing.T) {
	router := gin.New()
	router.Use(middleware.RequestID())
	router.GET("/hosts", okHandler)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/hosts", nil))

	id := w.Header().Get(middleware.RequestIDHeader)
	_, err := uuid.Parse(id)
	assert.NoError(t, err, "request id %q", id)
}

func TestRequestID_ReusesCallerID(t *testing.T) {
	router := gin.New()
	router.Use(middleware.RequestID())
	router.GET("/hosts", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(middleware.RequestIDHeader))
	})

	req := httptest.NewRequest(http.MethodGet, "/hosts", nil)
	req.Header.Set(middleware.RequestIDHeader, "trace-123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "trace-123", w.Header().Get(middleware.RequestIDHeader))
	assert.Equal(t, "trace-123", w.Body.String())
}

func TestRequestID_ReplacesOversizedID(t *testing.T) {
	router := gin.New()
	router.Use(middleware.RequestID())
	router.GET("/hosts", okHandler)

	req := httptest.NewRequest(http.MethodGet, "/hosts", nil)
	req.Header.Set(middleware.RequestIDHeader, strings.Repeat("x", 200))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Len(t, w.Header().Get(middleware.RequestIDHeader), 36)
}

// ============================================================================
// SlogRequestLogger Middleware Tests
// ============================================================================

func TestSlogRequestLogger_NilLogger(t *testing.T) {
	router := gin.New()
	router.Use(middleware.SlogRequestLogger(nil))
	router.GET("/hosts", okHandler)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/hosts", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSlogRequestLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	router := gin.New()
	router.Use(middleware.RequestID(), middleware.SlogRequestLogger(logger))
	router.GET("/hosts", okHandler)
	router.GET("/broken", func(c *gin.Context) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "boom"})
	})

	req := httptest.NewRequest(http.MethodGet, "/hosts", nil)
	req.Header.Set(middleware.RequestIDHeader, "req-1")
	router.ServeHTTP(httptest.NewRecorder(), req)
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/broken", nil))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var first, second map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))

	assert.Equal(t, "INFO", first["level"])
	assert.Equal(t, "/hosts", first["path"])
	assert.EqualValues(t, 200, first["status"])
	assert.Equal(t, "req-1", first["request_id"])

	assert.Equal(t, "ERROR", second["level"])
	assert.EqualValues(t, 500, second["status"])
}

func TestMiddlewareChain(t *testing.T) {
	router := gin.New()
	router.Use(middleware.RequestID(), middleware.SlogRequestLogger(nil), middleware.RequireAPIKey("secret"))
	router.GET("/protected", okHandler)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("X-Api-Key", "secret")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	w2 := httptest.NewRecorder()
	router.ServeHTTP(w2, httptest.NewRequest(http.MethodGet, "/protected", nil))
	assert.Equal(t, http.StatusUnauthorized, w2.Code)
	assert.NotEmpty(t, w2.Header().Get(middleware.RequestIDHeader))
}
