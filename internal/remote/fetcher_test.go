package remote

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetch(t *testing.T) {
	content := "# Ads:\n0.0.0.0 ads.example.com tracker.example.com\n# 0.0.0.0 off.example.com\n"
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(content))
	}))
	defer server.Close()

	doc, err := NewFetcher(time.Second, 0).Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	require.Len(t, doc.Entries, 2)
	assert.Equal(t, []string{"ads.example.com", "tracker.example.com"}, doc.Entries[0].Domains)
	assert.False(t, doc.Entries[1].Enabled)
	require.Len(t, doc.Sections, 1)
	assert.Equal(t, "Ads:", doc.Sections[0].Title)
}

func TestFetch_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	_, err := NewFetcher(time.Second, 0).Fetch(context.Background(), server.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestFetch_TooLarge(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(strings.Repeat("127.0.0.1 a.local\n", 10)))
	}))
	defer server.Close()

	_, err := NewFetcher(time.Second, 32).Fetch(context.Background(), server.URL)
	assert.ErrorIs(t, err, ErrTooLarge)
}

func TestFetch_RejectsScheme(t *testing.T) {
	f := &Fetcher{}
	_, err := f.Fetch(context.Background(), "file:///etc/hosts")
	assert.Error(t, err)

	_, err = f.Fetch(context.Background(), "://bad")
	assert.Error(t, err)
}

func TestFetch_ContextCanceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewFetcher(time.Second, 0).Fetch(ctx, server.URL)
	assert.Error(t, err)
}
