package models

import (
	"time"

	"github.com/jroosing/easyhosts/internal/hosts"
)

// ServerStatsResponse contains server runtime statistics.
type ServerStatsResponse struct {
	Uptime        string        `json:"uptime"`
	UptimeSeconds int64         `json:"uptime_seconds"`
	StartTime     time.Time     `json:"start_time"`
	GoRoutines    int           `json:"goroutines"`
	MemoryAllocMB float64       `json:"memory_alloc_mb"`
	NumCPU        int           `json:"num_cpu"`
	Process       *ProcessStats `json:"process,omitempty"`
	Host          *HostInfo     `json:"host,omitempty"`
	HostsPath     string        `json:"hosts_path"`
	Hosts         *hosts.Stats  `json:"hosts,omitempty"`
	Profiles      int           `json:"profiles"`
	ActiveProfile string        `json:"active_profile_id,omitempty"`
	Backups       int           `json:"backups"`
}

// ProcessStats describes the server process as seen by the OS.
type ProcessStats struct {
	PID        int32   `json:"pid"`
	RSSMB      float64 `json:"rss_mb"`
	CPUPercent float64 `json:"cpu_percent"`
}

// HostInfo describes the machine the server runs on.
type HostInfo struct {
	Hostname        string `json:"hostname"`
	OS              string `json:"os"`
	Platform        string `json:"platform"`
	PlatformVersion string `json:"platform_version"`
	UptimeSeconds   uint64 `json:"uptime_seconds"`
}
