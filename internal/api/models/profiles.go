package models

import (
	"time"

	"github.com/jroosing/easyhosts/internal/hosts"
)

// ProfileRequest is the request body for creating or updating a profile.
// A nil Document snapshots the current hosts file.
type ProfileRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Document    *hosts.Document `json:"hosts_data"`
}

// ProfileResponse describes a stored profile.
type ProfileResponse struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Document    hosts.Document `json:"hosts_data"`
	Stats       hosts.Stats    `json:"stats"`
	Active      bool           `json:"active"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}
