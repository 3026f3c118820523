package hosts

import (
	"fmt"
	"io"
	"net/netip"
	"strings"
)

// lineKind classifies one trimmed physical line.
type lineKind int

const (
	lineBlank lineKind = iota
	lineEmptyComment
	lineSection
	lineComment
	lineEntry
	lineMalformed
)

// line is the classification result for a single line. Only the fields
// relevant to kind are set.
type line struct {
	kind  lineKind
	text  string // section title or comment text
	entry Entry  // entry without its final comment
	note  string // inline comment from the entry line
}

// pendingState is the parser's only carried state: whether a standalone comment
// is waiting to be attached to the next entry.
//
//	state              | event               | next state
//	-------------------+---------------------+--------------------
//	any                | blank, empty "#"    | unchanged
//	any                | malformed line      | unchanged
//	any                | section header      | idle
//	any                | standalone comment  | pending(text)
//	idle               | entry               | idle (entry keeps its inline note)
//	pending(text)      | entry               | idle (entry takes text)
type pendingState struct {
	pending bool
	comment string
}

func (s pendingState) next(l line) pendingState {
	switch l.kind {
	case lineSection, lineEntry:
		return pendingState{}
	case lineComment:
		return pendingState{pending: true, comment: l.text}
	default:
		return s
	}
}

// attach returns the comment the entry should carry: a pending standalone
// comment wins over the inline one.
func (s pendingState) attach(inline string) string {
	if s.pending {
		return s.comment
	}
	return inline
}

// Parse converts hosts-file text into a Document. It never fails; lines that
// cannot be understood are skipped.
func Parse(content string) Document {
	doc := NewDocument()
	var state pendingState

	for raw := range strings.Lines(content) {
		l := classify(raw)
		switch l.kind {
		case lineSection:
			doc.Sections = append(doc.Sections, Section{Title: l.text, Enabled: true})
		case lineEntry:
			e := l.entry
			e.Comment = state.attach(l.note)
			doc.Entries = append(doc.Entries, e)
		}
		state = state.next(l)
	}

	return doc
}

// ParseReader reads r to the end and parses its content.
func ParseReader(r io.Reader) (Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Document{}, fmt.Errorf("error reading input: %w", err)
	}
	return Parse(string(data)), nil
}

// classify inspects one physical line. Disabled entries are recognized before
// comment classification so that "# 10.0.0.1 host" is not read as a comment.
func classify(raw string) line {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return line{kind: lineBlank}
	}

	if !strings.HasPrefix(trimmed, "#") {
		return parseEntry(trimmed, true)
	}

	body := strings.TrimSpace(trimmed[1:])
	if looksLikeEntry(body) {
		return parseEntry(body, false)
	}

	if body == "" {
		return line{kind: lineEmptyComment}
	}
	if IsSectionHeader(body) {
		return line{kind: lineSection, text: body}
	}
	return line{kind: lineComment, text: body}
}

// looksLikeEntry reports whether text has the "IP domain..." shape.
func looksLikeEntry(text string) bool {
	entryPart, _, _ := strings.Cut(text, "#")
	fields := strings.Fields(entryPart)
	if len(fields) < 2 {
		return false
	}
	_, err := netip.ParseAddr(fields[0])
	return err == nil
}

// parseEntry splits working text into address, domains and inline note.
func parseEntry(text string, enabled bool) line {
	entryPart, note, _ := strings.Cut(text, "#")
	entryPart = strings.TrimSpace(entryPart)
	if entryPart == "" {
		return line{kind: lineMalformed}
	}

	fields := strings.Fields(entryPart)
	if len(fields) < 2 {
		return line{kind: lineMalformed}
	}

	return line{
		kind: lineEntry,
		entry: Entry{
			Enabled: enabled,
			IP:      fields[0],
			Domains: fields[1:],
		},
		note: strings.TrimSpace(note),
	}
}

// IsSectionHeader reports whether comment text (with its leading '#' already
// removed and trimmed) reads as a group label rather than a prose comment.
func IsSectionHeader(text string) bool {
	if strings.Contains(text, "===") || strings.Contains(text, "---") {
		return true
	}
	if strings.HasSuffix(text, ":") && len(text) < 30 &&
		!strings.Contains(strings.ToLower(text), "example") {
		return true
	}
	return strings.HasPrefix(strings.ToUpper(text), "SECTION:")
}
