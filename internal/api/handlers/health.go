package handlers

import (
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jroosing/easyhosts/internal/api/models"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/process"
)

// Health godoc
// @Summary Health check
// @Description Returns server health status
// @Tags system
// @Produce json
// @Success 200 {object} models.StatusResponse
// @Failure 503 {object} models.ErrorResponse
// @Router /health [get]
func (h *Handler) Health(c *gin.Context) {
	if h.db != nil {
		if err := h.db.Health(); err != nil {
			c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{Error: "database unavailable: " + err.Error()})
			return
		}
	}
	c.JSON(http.StatusOK, models.StatusResponse{Status: "ok"})
}

// Stats godoc
// @Summary Server statistics
// @Description Returns runtime statistics, host information and a summary of the hosts file
// @Tags system
// @Produce json
// @Success 200 {object} models.ServerStatsResponse
// @Security ApiKeyAuth
// @Router /stats [get]
func (h *Handler) Stats(c *gin.Context) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	uptime := time.Since(h.startTime)

	resp := models.ServerStatsResponse{
		Uptime:        uptime.Round(time.Second).String(),
		UptimeSeconds: int64(uptime.Seconds()),
		StartTime:     h.startTime,
		GoRoutines:    runtime.NumGoroutine(),
		MemoryAllocMB: float64(m.Alloc) / 1024 / 1024,
		NumCPU:        runtime.NumCPU(),
		Process:       processStats(),
		Host:          hostInfo(),
		HostsPath:     h.store.Path(),
	}

	if doc, err := h.store.Load(); err == nil {
		stats := doc.Stats()
		resp.Hosts = &stats
	} else {
		h.logger.Debug("stats: hosts file unreadable", "err", err)
	}

	if backups, err := h.store.ListBackups(); err == nil {
		resp.Backups = len(backups)
	}

	if h.db != nil {
		if profiles, err := h.db.ListProfiles(); err == nil {
			resp.Profiles = len(profiles)
		}
		if active, err := h.db.ActiveProfileID(); err == nil {
			resp.ActiveProfile = active
		}
	}

	c.JSON(http.StatusOK, resp)
}

func processStats() *models.ProcessStats {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return nil
	}
	stats := &models.ProcessStats{PID: p.Pid}
	if mem, err := p.MemoryInfo(); err == nil {
		stats.RSSMB = float64(mem.RSS) / 1024 / 1024
	}
	if cpu, err := p.CPUPercent(); err == nil {
		stats.CPUPercent = cpu
	}
	return stats
}

func hostInfo() *models.HostInfo {
	info, err := host.Info()
	if err != nil {
		return nil
	}
	return &models.HostInfo{
		Hostname:        info.Hostname,
		OS:              info.OS,
		Platform:        info.Platform,
		PlatformVersion: info.PlatformVersion,
		UptimeSeconds:   info.Uptime,
	}
}
