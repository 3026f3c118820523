package hosts

import (
	"io"
	"strings"
)

// Serialize renders the document's entries as hosts-file text, one line per
// entry. Disabled entries are prefixed with "# ". Sections are not emitted.
func Serialize(doc Document) string {
	var b strings.Builder
	for _, e := range doc.Entries {
		writeEntry(&b, e)
	}
	return b.String()
}

// Write serializes doc to w.
func Write(w io.Writer, doc Document) error {
	_, err := io.WriteString(w, Serialize(doc))
	return err
}

// FormatEntry renders a single entry without the trailing newline.
func FormatEntry(e Entry) string {
	var b strings.Builder
	writeEntry(&b, e)
	return strings.TrimSuffix(b.String(), "\n")
}

func writeEntry(b *strings.Builder, e Entry) {
	if !e.Enabled {
		b.WriteString("# ")
	}
	b.WriteString(e.IP)
	b.WriteByte(' ')
	b.WriteString(strings.Join(e.Domains, " "))
	if e.Comment != "" {
		b.WriteString(" # ")
		b.WriteString(e.Comment)
	}
	b.WriteByte('\n')
}
