package server

import (
	"context"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jroosing/easyhosts/internal/config"
	"github.com/jroosing/easyhosts/internal/database"
	"github.com/jroosing/easyhosts/internal/hosts"
	"github.com/jroosing/easyhosts/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()

	cfg := config.Default()
	cfg.Hosts.Path = filepath.Join(dir, "hosts")
	cfg.Hosts.BackupDir = filepath.Join(dir, "backups")
	cfg.Database.Path = filepath.Join(dir, "state.db")
	cfg.API.Port = 0
	require.NoError(t, cfg.Validate())
	require.NoError(t, os.WriteFile(cfg.Hosts.Path, []byte("127.0.0.1 localhost\n"), 0o644))
	return cfg
}

func TestRunWithContext_NilConfig(t *testing.T) {
	err := NewRunner(logging.Discard()).RunWithContext(context.Background(), nil)
	assert.Error(t, err)
}

func TestRunWithContext_BadDatabasePath(t *testing.T) {
	cfg := testConfig(t)
	cfg.Database.Path = filepath.Join(t.TempDir(), "missing", "dir", "state.db")

	err := NewRunner(logging.Discard()).RunWithContext(context.Background(), cfg)
	assert.Error(t, err)
}

func TestRunWithContext_APIStartsAndStops(t *testing.T) {
	cfg := testConfig(t)
	r := NewRunner(logging.Discard())

	ctx, cancel := context.WithCancel(context.Background())
	ready := make(chan string, 1)
	r.OnReady(func(addr string) { ready <- addr })

	done := make(chan error, 1)
	go func() { done <- r.RunWithContext(ctx, cfg) }()

	var addr string
	select {
	case addr = <-ready:
	case <-time.After(5 * time.Second):
		t.Fatal("runner did not become ready")
	}

	host, port, err := net.SplitHostPort(addr)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1", host)
	assert.NotEqual(t, "0", port)

	resp, err := http.Get("http://" + addr + "/api/v1/health")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(ShutdownTimeout + time.Second):
		t.Fatal("runner did not stop")
	}

	_, err = os.Stat(cfg.Database.Path)
	assert.NoError(t, err)
}

func TestRunWithContext_SwitcherAppliesProfile(t *testing.T) {
	cfg := testConfig(t)
	cfg.API.Enabled = false
	cfg.SSID.AutoSwitch = true

	db, err := database.Open(cfg.Database.Path)
	require.NoError(t, err)
	doc := hosts.NewDocument()
	doc.Add(hosts.Entry{Enabled: true, IP: "10.10.0.1", Domains: []string{"intranet"}})
	p, err := db.CreateProfile("Office", "", doc)
	require.NoError(t, err)
	require.NoError(t, db.UpsertSSIDRule("CorpWiFi", p.ID))
	require.NoError(t, db.Close())

	r := NewRunner(logging.Discard())
	r.SetSSIDDetector(func(context.Context) (string, bool, error) { return "CorpWiFi", true, nil })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- r.RunWithContext(ctx, cfg) }()

	assert.Eventually(t, func() bool {
		data, err := os.ReadFile(cfg.Hosts.Path)
		return err == nil && string(data) == "10.10.0.1 intranet\n"
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("runner did not stop")
	}
}
