// Package server wires the EasyHosts daemon together: hosts file store,
// state database, SSID switcher and management API.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/jroosing/easyhosts/internal/api"
	"github.com/jroosing/easyhosts/internal/api/handlers"
	"github.com/jroosing/easyhosts/internal/config"
	"github.com/jroosing/easyhosts/internal/database"
	"github.com/jroosing/easyhosts/internal/hostsfile"
	"github.com/jroosing/easyhosts/internal/switcher"
	"github.com/jroosing/easyhosts/internal/system"
)

// ShutdownTimeout bounds graceful shutdown of the API server.
const ShutdownTimeout = 5 * time.Second

// Runner orchestrates daemon startup, configuration, and shutdown.
type Runner struct {
	logger *slog.Logger
	detect switcher.DetectFunc
	ready  func(addr string)
}

// NewRunner creates a new runner with the given logger.
func NewRunner(logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{logger: logger}
}

// SetSSIDDetector replaces the OS Wi-Fi probe used by the switcher.
// If nil, the current platform's tools are used.
func (r *Runner) SetSSIDDetector(detect switcher.DetectFunc) {
	r.detect = detect
}

// OnReady registers a callback invoked with the bound API address once the
// listener is open.
func (r *Runner) OnReady(fn func(addr string)) {
	r.ready = fn
}

// Run starts the daemon and blocks until SIGINT/SIGTERM.
//
// Lifecycle:
//  1. Open the hosts file store and the state database
//  2. Start the SSID switcher (if enabled)
//  3. Start the management API (if enabled)
//  4. Wait for shutdown signal
//  5. Stop the API with a timeout, then the switcher, then close the database
func (r *Runner) Run(cfg *config.Config) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	return r.RunWithContext(ctx, cfg)
}

// RunWithContext starts the daemon and blocks until ctx is canceled or the
// API server fails.
func (r *Runner) RunWithContext(ctx context.Context, cfg *config.Config) error {
	if cfg == nil {
		return errors.New("config is nil")
	}

	store := hostsfile.New(cfg.Hosts.Path, hostsfile.WithBackupDir(cfg.Hosts.BackupDir))
	r.logger.Info("hosts file",
		"path", store.Path(),
		"backup_dir", store.BackupDir(),
		"admin", system.IsAdmin(store.Path()),
	)

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("open database %s: %w", cfg.Database.Path, err)
	}
	defer db.Close()

	h := handlers.New(cfg, store, db, r.logger)

	if cfg.SSID.AutoSwitch {
		sw, err := r.startSwitcher(ctx, cfg, h, db, store)
		if err != nil {
			return err
		}
		defer sw.Stop()
	}

	if !cfg.API.Enabled {
		r.logger.Info("management API disabled")
		<-ctx.Done()
		return nil
	}

	srv := api.New(cfg, h, r.logger)
	if err := srv.Listen(); err != nil {
		return fmt.Errorf("api listen: %w", err)
	}
	errCh := make(chan error, 1)
	go func() {
		if err := srv.Serve(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()
	r.logger.Info("api listening", "addr", srv.Addr(), "auth", cfg.API.APIKey != "")
	if r.ready != nil {
		r.ready(srv.Addr())
	}

	select {
	case <-ctx.Done():
		// shutdown requested
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("api server: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		r.logger.Warn("api shutdown", "err", err)
	}
	return nil
}

func (r *Runner) startSwitcher(
	ctx context.Context,
	cfg *config.Config,
	h *handlers.Handler,
	db *database.DB,
	store *hostsfile.Store,
) (*switcher.Switcher, error) {
	detect := r.detect
	if detect == nil {
		runner := system.ExecRunner{}
		goos := runtime.GOOS
		detect = func(ctx context.Context) (string, bool, error) {
			return system.CurrentSSID(ctx, runner, goos)
		}
	}

	var flush switcher.FlushFunc
	if cfg.Hosts.AutoFlushDNS {
		flush = h.FlushDNS
	}

	sw, err := switcher.New(cfg.SSID.PollInterval, r.logger, db, store, detect, flush)
	if err != nil {
		return nil, fmt.Errorf("ssid switcher: %w", err)
	}
	if err := sw.Start(ctx); err != nil {
		return nil, fmt.Errorf("ssid switcher: %w", err)
	}
	h.SetSwitcher(sw)
	r.logger.Info("ssid switcher started", "interval", cfg.SSID.PollInterval.String())
	return sw, nil
}
