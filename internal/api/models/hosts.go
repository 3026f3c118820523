package models

import (
	"strings"

	"github.com/jroosing/easyhosts/internal/hosts"
)

// DocumentResponse is the response for GET /hosts.
type DocumentResponse struct {
	Path     string         `json:"path"`
	Document hosts.Document `json:"hosts_data"`
	Stats    hosts.Stats    `json:"stats"`
}

// SaveDocumentRequest is the request body for PUT /hosts.
type SaveDocumentRequest struct {
	Document hosts.Document `json:"hosts_data"`
}

// RawHostsRequest carries hosts-file text.
type RawHostsRequest struct {
	Content string `json:"content"`
}

// RawHostsResponse carries hosts-file text.
type RawHostsResponse struct {
	Path    string `json:"path,omitempty"`
	Content string `json:"content"`
}

// EntryRequest is the request body for creating or replacing an entry.
type EntryRequest struct {
	Enabled *bool    `json:"enabled"`
	IP      string   `json:"ip"      binding:"required"`
	Domains []string `json:"domains" binding:"required,min=1"`
	Comment string   `json:"comment"`
	Tags    []string `json:"tags"`
}

// Entry converts the request into a trimmed hosts entry. A missing enabled
// flag means enabled.
func (r EntryRequest) Entry() hosts.Entry {
	e := hosts.Entry{
		Enabled: r.Enabled == nil || *r.Enabled,
		IP:      strings.TrimSpace(r.IP),
		Domains: make([]string, 0, len(r.Domains)),
		Comment: strings.TrimSpace(r.Comment),
	}
	for _, d := range r.Domains {
		if d = strings.TrimSpace(d); d != "" {
			e.Domains = append(e.Domains, d)
		}
	}
	for _, t := range r.Tags {
		if t = strings.TrimSpace(t); t != "" {
			e.Tags = append(e.Tags, t)
		}
	}
	return e
}

// EntryResponse is returned after an entry is written.
type EntryResponse struct {
	Index  int         `json:"index"`
	Entry  hosts.Entry `json:"entry"`
	Backup string      `json:"backup,omitempty"`
}

// ConflictsResponse is the response for GET /hosts/conflicts.
type ConflictsResponse struct {
	Conflicts []hosts.Conflict `json:"conflicts"`
	Count     int              `json:"count"`
}

// SearchResponse is the response for GET /hosts/search.
type SearchResponse struct {
	Query   string        `json:"query"`
	Indices []int         `json:"indices"`
	Entries []hosts.Entry `json:"entries"`
}
