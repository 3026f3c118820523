package hosts

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerialize(t *testing.T) {
	doc := Document{
		Entries: []Entry{
			{Enabled: true, IP: "127.0.0.1", Domains: []string{"localhost"}},
			{Enabled: false, IP: "10.0.0.9", Domains: []string{"old.local", "legacy.local"}},
			{Enabled: true, IP: "10.0.0.5", Domains: []string{"backup.local"}, Comment: "backup server"},
		},
		Sections: []Section{{Title: "=== prod ===", Enabled: true}},
	}

	want := "127.0.0.1 localhost\n" +
		"# 10.0.0.9 old.local legacy.local\n" +
		"10.0.0.5 backup.local # backup server\n"
	assert.Equal(t, want, Serialize(doc))
}

func TestSerialize_Empty(t *testing.T) {
	assert.Equal(t, "", Serialize(NewDocument()))
	assert.Equal(t, "", Serialize(Document{}))
}

func TestSerialize_DisabledEncoding(t *testing.T) {
	e := Entry{Enabled: false, IP: "192.168.1.20", Domains: []string{"nas.local"}, Comment: "storage"}
	out := Serialize(Document{Entries: []Entry{e}})

	assert.True(t, strings.HasPrefix(out, "# "))

	doc := Parse(out)
	require.Len(t, doc.Entries, 1)
	assert.Equal(t, e, doc.Entries[0])
}

func TestFormatEntry(t *testing.T) {
	assert.Equal(t, "# ::1 ip6-localhost # loopback",
		FormatEntry(Entry{IP: "::1", Domains: []string{"ip6-localhost"}, Comment: "loopback"}))
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, Document{Entries: []Entry{{Enabled: true, IP: "10.0.0.1", Domains: []string{"a.local"}}}})
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.1 a.local\n", buf.String())
}

func TestRoundTrip_Entries(t *testing.T) {
	tests := []struct {
		name    string
		entries []Entry
	}{
		{"empty", []Entry{}},
		{"single enabled", []Entry{
			{Enabled: true, IP: "127.0.0.1", Domains: []string{"localhost"}},
		}},
		{"mixed states and comments", []Entry{
			{Enabled: true, IP: "127.0.0.1", Domains: []string{"localhost", "localhost.localdomain"}},
			{Enabled: false, IP: "10.0.0.9", Domains: []string{"old.local"}, Comment: "retired"},
			{Enabled: true, IP: "::1", Domains: []string{"ip6-localhost"}, Comment: "v6 loopback"},
			{Enabled: false, IP: "fe80::1", Domains: []string{"router.lan", "gw.lan"}},
		}},
		{"comment containing hash", []Entry{
			{Enabled: true, IP: "10.0.0.1", Domains: []string{"a.local"}, Comment: "ticket #42"},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := Document{Entries: tt.entries, Sections: []Section{}}
			assert.Equal(t, doc, Parse(Serialize(doc)))
		})
	}
}

func TestRoundTrip_SectionsAreLost(t *testing.T) {
	original := Parse("# === prod ===\n10.0.0.1 api.prod\n# Work Hosts:\n10.0.0.2 wiki.work\n")
	require.Len(t, original.Sections, 2)

	again := Parse(Serialize(original))

	assert.Empty(t, again.Sections)
	assert.Equal(t, original.Entries, again.Entries)
}

func TestRoundTrip_UnattachedCommentsAreLost(t *testing.T) {
	original := "10.0.0.1 a.local\n# trailing note with nothing after it\n"

	out := Serialize(Parse(original))

	assert.Equal(t, "10.0.0.1 a.local\n", out)
}
