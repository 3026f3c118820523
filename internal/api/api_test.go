// Package api_test provides behavior tests for the API package.
package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jroosing/easyhosts/internal/api"
	"github.com/jroosing/easyhosts/internal/api/handlers"
	"github.com/jroosing/easyhosts/internal/api/models"
	"github.com/jroosing/easyhosts/internal/config"
	"github.com/jroosing/easyhosts/internal/hostsfile"
	"github.com/jroosing/easyhosts/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestConfig() *config.Config {
	cfg := config.Default()
	cfg.API.Host = "127.0.0.1"
	cfg.API.Port = 8787
	cfg.API.APIKey = ""
	return cfg
}

func newTestServer(t *testing.T, cfg *config.Config) *api.Server {
	t.Helper()
	dir := t.TempDir()
	hostsPath := filepath.Join(dir, "hosts")
	require.NoError(t, os.WriteFile(hostsPath, []byte("127.0.0.1 localhost\n"), 0o644))

	store := hostsfile.New(hostsPath, hostsfile.WithBackupDir(filepath.Join(dir, "backups")))
	h := handlers.New(cfg, store, nil, logging.Discard())
	return api.New(cfg, h, logging.Discard())
}

func performRequest(r http.Handler, method, path string, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// ============================================================================
// Server Creation Tests
// ============================================================================

func TestNew_PanicsOnNilArguments(t *testing.T) {
	assert.Panics(t, func() {
		api.New(nil, nil, nil)
	})
	assert.Panics(t, func() {
		api.New(createTestConfig(), nil, nil)
	})
}

func TestServer_Addr(t *testing.T) {
	cfg := createTestConfig()
	cfg.API.Host = "0.0.0.0"
	cfg.API.Port = 9090

	server := newTestServer(t, cfg)

	assert.Equal(t, "0.0.0.0:9090", server.Addr())
	assert.NotNil(t, server.Engine())
}

// ============================================================================
// Routes Tests
// ============================================================================

func TestRoutes_HealthEndpoint(t *testing.T) {
	server := newTestServer(t, createTestConfig())

	w := performRequest(server.Engine(), http.MethodGet, "/api/v1/health", "")

	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.StatusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRoutes_HostsEndpoint(t *testing.T) {
	server := newTestServer(t, createTestConfig())

	w := performRequest(server.Engine(), http.MethodGet, "/api/v1/hosts", "")

	require.Equal(t, http.StatusOK, w.Code)
	var resp models.DocumentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Stats.Total)
}

func TestRoutes_DatabaseEndpointsWithoutDatabase(t *testing.T) {
	server := newTestServer(t, createTestConfig())

	w := performRequest(server.Engine(), http.MethodGet, "/api/v1/profiles", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

// ============================================================================
// API Key Protection Tests
// ============================================================================

func TestRoutes_APIKey(t *testing.T) {
	tests := []struct {
		name       string
		configured string
		sent       string
		want       int
	}{
		{"valid key", "secret-key", "secret-key", http.StatusOK},
		{"invalid key", "secret-key", "wrong-key", http.StatusUnauthorized},
		{"missing key", "secret-key", "", http.StatusUnauthorized},
		{"no key configured", "", "", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := createTestConfig()
			cfg.API.APIKey = tt.configured
			server := newTestServer(t, cfg)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
			if tt.sent != "" {
				req.Header.Set("X-API-Key", tt.sent)
			}
			w := httptest.NewRecorder()
			server.Engine().ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code)
		})
	}
}

// ============================================================================
// Server Lifecycle Tests
// ============================================================================

func TestServer_Shutdown(t *testing.T) {
	cfg := createTestConfig()
	cfg.API.Port = 0
	server := newTestServer(t, cfg)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	assert.NoError(t, server.Shutdown(ctx))
}

// ============================================================================
// Swagger and UI Tests
// ============================================================================

func TestRoutes_SwaggerEndpoint(t *testing.T) {
	server := newTestServer(t, createTestConfig())

	w := performRequest(server.Engine(), http.MethodGet, "/swagger/index.html", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = performRequest(server.Engine(), http.MethodGet, "/swagger/doc.json", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "EasyHosts Management API")
}

func TestRoutes_SPAFallback(t *testing.T) {
	server := newTestServer(t, createTestConfig())

	w := performRequest(server.Engine(), http.MethodGet, "/profiles/home", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "EasyHosts")
}

func TestRoutes_UnknownAPIPathIsJSON404(t *testing.T) {
	server := newTestServer(t, createTestConfig())

	w := performRequest(server.Engine(), http.MethodGet, "/api/v1/nonexistent", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "not found", resp.Error)
}
