// Package hosts converts hosts-file text into a structured Document and back.
//
// The hosts file maps IP addresses to hostnames ahead of DNS. Each non-blank line
// is one of:
//   - an entry: "IP domain [domain...] [# comment]"
//   - a disabled entry: the same, prefixed with "# "
//   - a section header: a comment that looks like a group label ("# === prod ===", "# Work Hosts:")
//   - a standalone comment, which attaches to the next entry as its comment
//
// Parsing is best-effort and never fails: lines that do not fit any of the shapes
// above are dropped. Serialization emits entries only, so sections and unattached
// comments do not survive a Serialize/Parse round-trip.
package hosts

import "slices"

// Entry is one resolution rule.
type Entry struct {
	Enabled bool     `json:"enabled"`
	IP      string   `json:"ip"`
	Domains []string `json:"domains"`
	Comment string   `json:"comment,omitempty"`
	// Tags are labels kept in profiles and JSON exports. The hosts file
	// has no place for them, so Serialize drops them.
	Tags []string `json:"tags,omitempty"`
}

// Clone returns a deep copy of the entry.
func (e Entry) Clone() Entry {
	e.Domains = slices.Clone(e.Domains)
	e.Tags = slices.Clone(e.Tags)
	return e
}

// Section is a cosmetic group label derived from a comment line.
// Sections are not linked to the entries that follow them.
type Section struct {
	Title   string `json:"title"`
	Enabled bool   `json:"enabled"`
}

// Document is the structured form of a hosts file.
type Document struct {
	Entries  []Entry   `json:"entries"`
	Sections []Section `json:"sections"`
}

// Stats summarizes a document.
type Stats struct {
	Total    int `json:"total"`
	Enabled  int `json:"enabled"`
	Disabled int `json:"disabled"`
	Sections int `json:"sections"`
}

// NewDocument returns an empty document with non-nil slices, so that it
// encodes as {"entries":[],"sections":[]}.
func NewDocument() Document {
	return Document{Entries: []Entry{}, Sections: []Section{}}
}

// Clone returns a deep copy of the document.
func (d Document) Clone() Document {
	out := Document{
		Entries:  make([]Entry, len(d.Entries)),
		Sections: slices.Clone(d.Sections),
	}
	if out.Sections == nil {
		out.Sections = []Section{}
	}
	for i, e := range d.Entries {
		out.Entries[i] = e.Clone()
	}
	return out
}

// Stats counts entries by state.
func (d Document) Stats() Stats {
	s := Stats{Total: len(d.Entries), Sections: len(d.Sections)}
	for _, e := range d.Entries {
		if e.Enabled {
			s.Enabled++
		} else {
			s.Disabled++
		}
	}
	return s
}

// Merge appends the entries and sections of extra to a copy of base.
func Merge(base, extra Document) Document {
	out := base.Clone()
	for _, e := range extra.Entries {
		out.Entries = append(out.Entries, e.Clone())
	}
	out.Sections = append(out.Sections, extra.Sections...)
	return out
}
