package models

import "time"

// RemoteSourceRequest is the request body for POST /remote-sources.
type RemoteSourceRequest struct {
	Name string `json:"name" binding:"required"`
	URL  string `json:"url"  binding:"required"`
}

// RemoteSourceResponse describes a remote hosts list.
type RemoteSourceResponse struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	URL         string     `json:"url"`
	Enabled     bool       `json:"enabled"`
	LastUpdated *time.Time `json:"last_updated,omitempty"`
	LastStatus  string     `json:"last_status,omitempty"`
	LastError   string     `json:"last_error,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// EnabledRequest toggles a boolean flag.
type EnabledRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

// ApplyResponse is returned after a remote list or import is applied.
type ApplyResponse struct {
	Mode     string `json:"mode"`
	Imported int    `json:"imported"`
	Total    int    `json:"total"`
	Backup   string `json:"backup,omitempty"`
}
