// Package handlers implements the REST API endpoint handlers for EasyHosts.
//
// REST API Endpoints:
//
// System Health:
//   - GET /api/v1/health - Health check status
//   - GET /api/v1/stats - Server, host and hosts-file statistics
//
// Hosts File:
//   - GET /api/v1/hosts - Parsed hosts document
//   - PUT /api/v1/hosts - Replace the hosts file with a document
//   - GET /api/v1/hosts/raw, PUT /api/v1/hosts/raw - Raw hosts text
//   - POST /api/v1/hosts/parse, POST /api/v1/hosts/serialize - Stateless codec
//   - GET /api/v1/hosts/conflicts, GET /api/v1/hosts/search - Queries
//   - POST/PUT/DELETE /api/v1/hosts/entries[/:index] - Entry editing
//   - POST /api/v1/hosts/reset - Restore the OS default file
//
// Exchange and Backups:
//   - GET /api/v1/export/json, GET /api/v1/export/hosts, POST /api/v1/import/json
//   - GET/POST/DELETE /api/v1/backups, POST /api/v1/backups/restore
//
// Profiles, Remote Sources and SSID Rules:
//   - /api/v1/profiles, /api/v1/remote-sources, /api/v1/ssid-rules, /api/v1/switcher
//
// System:
//   - /api/v1/system/ping, lookup, flush-dns, ssid, admin
//
// Authentication:
//
// All endpoints support optional API key authentication via the X-API-Key
// header. If an API key is configured it is required for every endpoint.
//
// Security Considerations:
//
// - API is bound to 127.0.0.1:8787 by default (not exposed to network)
// - Every endpoint that writes the hosts file can redirect traffic on this
// machine; never expose the API without an API key
//
// @title EasyHosts Management API
// @version 1.0
// @description REST API for editing the system hosts file, backups and profiles.
//
// @contact.name EasyHosts
// @contact.url https://github.com/jroosing/easyhosts
//
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
//
// @host localhost:8787
// @BasePath /api/v1
//
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
package handlers

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"net"
	"net/http"
	"runtime"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jroosing/easyhosts/internal/api/models"
	"github.com/jroosing/easyhosts/internal/config"
	"github.com/jroosing/easyhosts/internal/database"
	"github.com/jroosing/easyhosts/internal/exchange"
	"github.com/jroosing/easyhosts/internal/hosts"
	"github.com/jroosing/easyhosts/internal/hostsfile"
	"github.com/jroosing/easyhosts/internal/remote"
	"github.com/jroosing/easyhosts/internal/switcher"
	"github.com/jroosing/easyhosts/internal/system"
)

// Handler contains dependencies for API handlers.
type Handler struct {
	cfg       *config.Config
	store     *hostsfile.Store
	db        *database.DB
	logger    *slog.Logger
	startTime time.Time

	fetcher  *remote.Fetcher
	runner   system.Runner
	resolver system.HostResolver
	goos     string

	// editMu serializes read-modify-write cycles on the hosts file.
	editMu sync.Mutex

	// Runtime components (set after server starts)
	ssidSwitcher *switcher.Switcher
	mu           sync.RWMutex
}

// New creates a new Handler. The database may be nil, in which case the
// profile, remote-source and SSID endpoints respond with 503.
func New(cfg *config.Config, store *hostsfile.Store, db *database.DB, logger *slog.Logger) *Handler {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		cfg:       cfg,
		store:     store,
		db:        db,
		logger:    logger,
		startTime: time.Now(),
		fetcher:   remote.NewFetcher(cfg.Remote.Timeout, cfg.Remote.MaxBytes),
		runner:    system.ExecRunner{},
		resolver:  net.DefaultResolver,
		goos:      runtime.GOOS,
	}
}

// DB returns the database connection for handlers that need it.
func (h *Handler) DB() *database.DB {
	return h.db
}

// SetFetcher replaces the remote list fetcher.
func (h *Handler) SetFetcher(f *remote.Fetcher) {
	h.fetcher = f
}

// SetSystem replaces the command runner, resolver and target OS used by the
// system endpoints.
func (h *Handler) SetSystem(runner system.Runner, resolver system.HostResolver, goos string) {
	h.runner = runner
	h.resolver = resolver
	h.goos = goos
}

// SetSwitcher sets the SSID switcher.
func (h *Handler) SetSwitcher(s *switcher.Switcher) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.ssidSwitcher = s
}

// GetSwitcher retrieves the SSID switcher.
func (h *Handler) GetSwitcher() *switcher.Switcher {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.ssidSwitcher
}

// FlushDNS is the switcher's flush callback: it runs the OS cache flush with
// this handler's runner.
func (h *Handler) FlushDNS(ctx context.Context) error {
	return system.FlushDNS(ctx, h.runner, h.goos)
}

// editHosts loads the hosts file, applies fn and saves the result with a
// backup. It returns the saved document and the backup path.
func (h *Handler) editHosts(ctx context.Context, fn func(doc *hosts.Document) error) (hosts.Document, string, error) {
	h.editMu.Lock()
	defer h.editMu.Unlock()

	doc, err := h.store.Load()
	if err != nil {
		return hosts.Document{}, "", err
	}
	if err := fn(&doc); err != nil {
		return hosts.Document{}, "", err
	}
	backup, err := h.store.Save(doc)
	if err != nil {
		return hosts.Document{}, "", err
	}
	h.afterWrite(ctx)
	return doc, backup, nil
}

// afterWrite flushes the DNS cache when auto flush is enabled.
func (h *Handler) afterWrite(ctx context.Context) {
	if !h.cfg.Hosts.AutoFlushDNS {
		return
	}
	if err := h.FlushDNS(ctx); err != nil {
		h.logger.Warn("dns flush after hosts write failed", "err", err)
	}
}

func (h *Handler) requireDB(c *gin.Context) bool {
	if h.db == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{Error: "Database not available"})
		return false
	}
	return true
}

// writeError maps domain errors to HTTP status codes.
func (h *Handler) writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, hosts.ErrInvalidEntry),
		errors.Is(err, hostsfile.ErrInvalidBackup),
		errors.Is(err, exchange.ErrUnsupportedVersion):
		status = http.StatusBadRequest
	case errors.Is(err, hosts.ErrIndexOutOfRange),
		errors.Is(err, database.ErrNotFound),
		errors.Is(err, fs.ErrNotExist):
		status = http.StatusNotFound
	case errors.Is(err, fs.ErrPermission):
		status = http.StatusForbidden
	case errors.Is(err, hostsfile.ErrResetUnsupported),
		errors.Is(err, system.ErrUnsupported):
		status = http.StatusNotImplemented
	}

	if status == http.StatusInternalServerError {
		h.logger.Error("api request failed", "path", c.FullPath(), "err", err)
	}
	c.JSON(status, models.ErrorResponse{Error: err.Error()})
}
