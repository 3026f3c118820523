// Package exchange moves hosts documents in and out of the application as a
// versioned JSON envelope or as plain hosts-file text.
package exchange

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jroosing/easyhosts/internal/hosts"
)

// FormatVersion is the envelope version written by ExportJSON.
const FormatVersion = 1

// ErrUnsupportedVersion is returned when an envelope is newer than FormatVersion.
var ErrUnsupportedVersion = errors.New("unsupported export version")

// Envelope is the JSON export format.
type Envelope struct {
	Version   int            `json:"version"`
	Timestamp string         `json:"timestamp"`
	HostsData hosts.Document `json:"hosts_data"`
}

// ExportJSON wraps doc in an Envelope stamped with now and encodes it as indented JSON.
func ExportJSON(doc hosts.Document, now time.Time) ([]byte, error) {
	env := Envelope{
		Version:   FormatVersion,
		Timestamp: now.Format(time.RFC3339),
		HostsData: normalize(doc),
	}
	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize to JSON: %w", err)
	}
	return data, nil
}

// ImportJSON decodes an Envelope and returns its document.
func ImportJSON(data []byte) (hosts.Document, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return hosts.Document{}, fmt.Errorf("failed to parse JSON: %w", err)
	}
	if env.Version > FormatVersion {
		return hosts.Document{}, fmt.Errorf("%w: %d, please update the application", ErrUnsupportedVersion, env.Version)
	}
	doc := normalize(env.HostsData)
	if err := hosts.ValidateDocument(doc); err != nil {
		return hosts.Document{}, err
	}
	return doc, nil
}

// ExportHosts renders doc as hosts-file text.
func ExportHosts(doc hosts.Document) string {
	return hosts.Serialize(doc)
}

// normalize drops entries without domains and replaces nil slices, so that
// imported documents satisfy the same invariants as parsed ones.
func normalize(doc hosts.Document) hosts.Document {
	out := hosts.NewDocument()
	for _, e := range doc.Entries {
		if len(e.Domains) == 0 {
			continue
		}
		out.Entries = append(out.Entries, e.Clone())
	}
	out.Sections = append(out.Sections, doc.Sections...)
	return out
}

// Mode selects how an incoming document is combined with the current one.
type Mode string

const (
	ModeMerge   Mode = "merge"
	ModeReplace Mode = "replace"
)

// ParseMode parses a mode name. An empty string selects ModeMerge.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "", ModeMerge:
		return ModeMerge, nil
	case ModeReplace:
		return ModeReplace, nil
	default:
		return "", fmt.Errorf("unknown import mode %q (want merge or replace)", s)
	}
}

// Apply combines incoming with current according to mode.
func Apply(current, incoming hosts.Document, mode Mode) hosts.Document {
	if mode == ModeReplace {
		return incoming.Clone()
	}
	return hosts.Merge(current, incoming)
}
