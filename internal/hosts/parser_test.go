package hosts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_EnabledAndDisabledEntries(t *testing.T) {
	doc := Parse("127.0.0.1 localhost\n# 10.0.0.9 old.local\n")

	require.Len(t, doc.Entries, 2)
	assert.Equal(t, Entry{Enabled: true, IP: "127.0.0.1", Domains: []string{"localhost"}}, doc.Entries[0])
	assert.Equal(t, Entry{Enabled: false, IP: "10.0.0.9", Domains: []string{"old.local"}}, doc.Entries[1])
	assert.Empty(t, doc.Sections)
}

func TestParse_StandaloneCommentWinsOverInline(t *testing.T) {
	doc := Parse("# backup server\n10.0.0.5 backup.local # inline note\n")

	require.Len(t, doc.Entries, 1)
	assert.Equal(t, "backup server", doc.Entries[0].Comment)
	assert.Equal(t, []string{"backup.local"}, doc.Entries[0].Domains)
}

func TestParse_InlineComment(t *testing.T) {
	doc := Parse("10.0.0.5 backup.local   #   inline note  \n")

	require.Len(t, doc.Entries, 1)
	assert.Equal(t, "inline note", doc.Entries[0].Comment)
}

func TestParse_PendingComment(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		comments []string
	}{
		{
			name:     "most recent standalone comment wins",
			content:  "# first\n# second\n10.0.0.1 a.local\n",
			comments: []string{"second"},
		},
		{
			name:     "blank lines keep the pending comment",
			content:  "# note\n\n   \n10.0.0.1 a.local\n",
			comments: []string{"note"},
		},
		{
			name:     "empty comment markers keep the pending comment",
			content:  "# note\n#\n#   \n10.0.0.1 a.local\n",
			comments: []string{"note"},
		},
		{
			name:     "section header clears the pending comment",
			content:  "# note\n# === prod ===\n10.0.0.1 a.local\n",
			comments: []string{""},
		},
		{
			name:     "comment is consumed by the first entry only",
			content:  "# note\n10.0.0.1 a.local\n10.0.0.2 b.local\n",
			comments: []string{"note", ""},
		},
		{
			name:     "malformed lines do not consume the pending comment",
			content:  "# note\nbogus\n10.0.0.1\n10.0.0.1 a.local\n",
			comments: []string{"note"},
		},
		{
			name:     "disabled entry consumes the pending comment",
			content:  "# note\n# 10.0.0.1 a.local # inline\n",
			comments: []string{"note"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := Parse(tt.content)
			require.Len(t, doc.Entries, len(tt.comments))
			for i, want := range tt.comments {
				assert.Equal(t, want, doc.Entries[i].Comment, "entry %d", i)
			}
		})
	}
}

func TestParse_Sections(t *testing.T) {
	content := `# === prod ===
10.0.0.1 api.prod
# Work Hosts:
# For example:
10.0.0.2 example.local
# SECTION: staging
# --- misc ---
`
	doc := Parse(content)

	titles := make([]string, 0, len(doc.Sections))
	for _, s := range doc.Sections {
		assert.True(t, s.Enabled)
		titles = append(titles, s.Title)
	}
	assert.Equal(t, []string{"=== prod ===", "Work Hosts:", "SECTION: staging", "--- misc ---"}, titles)

	require.Len(t, doc.Entries, 2)
	assert.Equal(t, "", doc.Entries[0].Comment)
	assert.Equal(t, "For example:", doc.Entries[1].Comment)
}

func TestParse_EmptyCommentProducesNothing(t *testing.T) {
	doc := Parse("# \n")
	assert.Empty(t, doc.Entries)
	assert.Empty(t, doc.Sections)

	doc = Parse("# \n10.0.0.1 a.local\n")
	require.Len(t, doc.Entries, 1)
	assert.Equal(t, "", doc.Entries[0].Comment)
}

func TestParse_MalformedLinesDropped(t *testing.T) {
	content := "10.0.0.1\n# only a comment\nnot-an-entry\n  # \n10.0.0.2 ok.local\n"
	doc := Parse(content)

	require.Len(t, doc.Entries, 1)
	assert.Equal(t, "10.0.0.2", doc.Entries[0].IP)
	assert.Equal(t, "only a comment", doc.Entries[0].Comment)
}

func TestParse_WhitespaceAndLineEndings(t *testing.T) {
	doc := Parse("  10.0.0.1\tweb.local   www.local\r\n\t# 10.0.0.2  old.local\r\n")

	require.Len(t, doc.Entries, 2)
	assert.Equal(t, []string{"web.local", "www.local"}, doc.Entries[0].Domains)
	assert.True(t, doc.Entries[0].Enabled)
	assert.False(t, doc.Entries[1].Enabled)
	assert.Equal(t, "10.0.0.2", doc.Entries[1].IP)
}

func TestParse_DisabledEntryVariants(t *testing.T) {
	tests := []struct {
		line    string
		entry   bool
		ip      string
		comment string
	}{
		{"# 10.0.0.9 old.local", true, "10.0.0.9", ""},
		{"#10.0.0.9 old.local", true, "10.0.0.9", ""},
		{"#\t::1 localhost", true, "::1", ""},
		{"# fe80::1%eth0 link.local", true, "fe80::1%eth0", ""},
		{"# 10.0.0.9 old.local # retired", true, "10.0.0.9", "retired"},
		{"# backup server", false, "", ""},
		{"# 10.0.0.9", false, "", ""},
		{"# not.an.ip host.local", false, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			doc := Parse(tt.line + "\n")
			if !tt.entry {
				assert.Empty(t, doc.Entries)
				return
			}
			require.Len(t, doc.Entries, 1)
			assert.False(t, doc.Entries[0].Enabled)
			assert.Equal(t, tt.ip, doc.Entries[0].IP)
			assert.Equal(t, tt.comment, doc.Entries[0].Comment)
		})
	}
}

func TestParse_EmptyInput(t *testing.T) {
	doc := Parse("")
	assert.NotNil(t, doc.Entries)
	assert.NotNil(t, doc.Sections)
	assert.Empty(t, doc.Entries)
}

func TestParseReader(t *testing.T) {
	doc, err := ParseReader(strings.NewReader("127.0.0.1 localhost\n"))
	require.NoError(t, err)
	require.Len(t, doc.Entries, 1)
}

func TestIsSectionHeader(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"For example:", false},
		{"FOR EXAMPLE:", false},
		{"Work Hosts:", true},
		{"=== prod ===", true},
		{"--- misc ---", true},
		{"SECTION: db", true},
		{"section: db", true},
		{"Section name", false},
		{"This comment is definitely longer than thirty:", false},
		{"plain comment", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, IsSectionHeader(tt.text))
		})
	}
}

func TestPendingState_Transitions(t *testing.T) {
	idle := pendingState{}
	pending := pendingState{pending: true, comment: "x"}

	assert.Equal(t, pending, idle.next(line{kind: lineComment, text: "x"}))
	assert.Equal(t, pendingState{pending: true, comment: "y"}, pending.next(line{kind: lineComment, text: "y"}))
	assert.Equal(t, idle, pending.next(line{kind: lineSection, text: "=== a ==="}))
	assert.Equal(t, idle, pending.next(line{kind: lineEntry}))
	assert.Equal(t, pending, pending.next(line{kind: lineBlank}))
	assert.Equal(t, pending, pending.next(line{kind: lineEmptyComment}))
	assert.Equal(t, pending, pending.next(line{kind: lineMalformed}))

	assert.Equal(t, "x", pending.attach("inline"))
	assert.Equal(t, "inline", idle.attach("inline"))
}
