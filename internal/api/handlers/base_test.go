package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jroosing/easyhosts/internal/api"
	"github.com/jroosing/easyhosts/internal/api/handlers"
	"github.com/jroosing/easyhosts/internal/config"
	"github.com/jroosing/easyhosts/internal/database"
	"github.com/jroosing/easyhosts/internal/hostsfile"
	"github.com/jroosing/easyhosts/internal/logging"
	"github.com/jroosing/easyhosts/internal/system"
	"github.com/stretchr/testify/require"
)

const initialHosts = `# Local development:
127.0.0.1 localhost
# API gateway
127.0.0.1 api.local gateway.local
# 10.0.0.9 old.local # retired
10.0.0.5 db.local
`

type fakeRunner struct {
	mu      sync.Mutex
	results map[string]system.Result
	calls   map[string]int
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) (system.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := strings.Join(append([]string{name}, args...), " ")
	if f.calls == nil {
		f.calls = map[string]int{}
	}
	f.calls[key]++
	if res, ok := f.results[key]; ok {
		return res, nil
	}
	return system.Result{}, errors.New("executable file not found: " + name)
}

func (f *fakeRunner) set(key string, res system.Result) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.results[key] = res
}

func (f *fakeRunner) count(key string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[key]
}

type fakeResolver map[string][]string

func (f fakeResolver) LookupHost(_ context.Context, host string) ([]string, error) {
	if addrs, ok := f[host]; ok {
		return addrs, nil
	}
	return nil, errors.New("no such host")
}

type testEnv struct {
	handler   *handlers.Handler
	router    *gin.Engine
	store     *hostsfile.Store
	db        *database.DB
	runner    *fakeRunner
	hostsPath string
	backupDir string
}

func stepClock() func() time.Time {
	t := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time {
		now := t
		t = t.Add(time.Second)
		return now
	}
}

func defaultConfigWithFlush() *config.Config {
	cfg := config.Default()
	cfg.Hosts.AutoFlushDNS = true
	return cfg
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return newTestEnvWithConfig(t, config.Default(), true)
}

func newTestEnvWithConfig(t *testing.T, cfg *config.Config, withDB bool) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	hostsPath := filepath.Join(dir, "hosts")
	backupDir := filepath.Join(dir, "backups")
	require.NoError(t, os.WriteFile(hostsPath, []byte(initialHosts), 0o644))

	store := hostsfile.New(hostsPath,
		hostsfile.WithBackupDir(backupDir),
		hostsfile.WithClock(stepClock()),
		hostsfile.WithGOOS("linux"),
	)

	var db *database.DB
	if withDB {
		var err error
		db, err = database.Open(filepath.Join(dir, "state.db"))
		require.NoError(t, err)
		t.Cleanup(func() { db.Close() })
	}

	runner := &fakeRunner{results: map[string]system.Result{}}
	h := handlers.New(cfg, store, db, logging.Discard())
	h.SetSystem(runner, fakeResolver{"db.local": {"10.0.0.5"}}, "linux")

	r := gin.New()
	api.RegisterRoutes(r, h, cfg)

	return &testEnv{
		handler:   h,
		router:    r,
		store:     store,
		db:        db,
		runner:    runner,
		hostsPath: hostsPath,
		backupDir: backupDir,
	}
}

func (e *testEnv) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) hostsContent(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile(e.hostsPath)
	require.NoError(t, err)
	return string(data)
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), "body: %s", w.Body.String())
	return v
}
