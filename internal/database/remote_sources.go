package database

import (
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"
)

// Remote source fetch outcomes recorded in last_status.
const (
	RemoteStatusOK    = "ok"
	RemoteStatusError = "error"
)

// RemoteSource is a URL serving a hosts-format list.
type RemoteSource struct {
	ID          string
	Name        string
	URL         string
	Enabled     bool
	LastUpdated *time.Time
	LastStatus  string
	LastError   string
	CreatedAt   time.Time
}

// AddRemoteSource registers a new enabled remote source.
func (db *DB) AddRemoteSource(name, rawURL string) (*RemoteSource, error) {
	if name == "" {
		return nil, errors.New("remote source name is required")
	}
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("invalid remote source URL: %q", rawURL)
	}

	db.mu.Lock()
	defer db.mu.Unlock()

	now := db.timestamp()
	src := &RemoteSource{
		ID:        uuid.NewString(),
		Name:      name,
		URL:       rawURL,
		Enabled:   true,
		CreatedAt: parseTimestamp(now),
	}

	query := `
		INSERT INTO remote_sources (id, name, url, enabled, created_at)
		VALUES (?, ?, ?, 1, ?)
	`
	if _, err := db.conn.Exec(query, src.ID, name, rawURL, now); err != nil {
		return nil, fmt.Errorf("failed to add remote source %s: %w", name, err)
	}
	return src, nil
}

// ListRemoteSources returns all remote sources in creation order.
func (db *DB) ListRemoteSources() ([]RemoteSource, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	rows, err := db.conn.Query(`
		SELECT id, name, url, enabled, last_updated, last_status, last_error, created_at
		FROM remote_sources
		ORDER BY created_at, name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query remote sources: %w", err)
	}
	defer rows.Close()

	sources := []RemoteSource{}
	for rows.Next() {
		s, err := scanRemoteSource(rows)
		if err != nil {
			return nil, err
		}
		sources = append(sources, *s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating remote sources: %w", err)
	}
	return sources, nil
}

// GetRemoteSource returns one remote source by ID.
func (db *DB) GetRemoteSource(id string) (*RemoteSource, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	row := db.conn.QueryRow(`
		SELECT id, name, url, enabled, last_updated, last_status, last_error, created_at
		FROM remote_sources
		WHERE id = ?
	`, id)

	s, err := scanRemoteSource(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("remote source %s: %w", id, ErrNotFound)
	}
	return s, err
}

// SetRemoteSourceEnabled enables or disables a remote source.
func (db *DB) SetRemoteSourceEnabled(id string, enabled bool) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	result, err := db.conn.Exec("UPDATE remote_sources SET enabled = ? WHERE id = ?", enabled, id)
	if err != nil {
		return fmt.Errorf("failed to update remote source %s: %w", id, err)
	}
	return expectAffected(result, "remote source", id)
}

// RecordRemoteSourceStatus stores the outcome of a fetch. A nil fetchErr
// records success.
func (db *DB) RecordRemoteSourceStatus(id string, fetchErr error) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	status, msg := RemoteStatusOK, ""
	if fetchErr != nil {
		status, msg = RemoteStatusError, fetchErr.Error()
	}

	result, err := db.conn.Exec(`
		UPDATE remote_sources
		SET last_updated = ?, last_status = ?, last_error = ?
		WHERE id = ?
	`, db.timestamp(), status, msg, id)
	if err != nil {
		return fmt.Errorf("failed to record status for remote source %s: %w", id, err)
	}
	return expectAffected(result, "remote source", id)
}

// DeleteRemoteSource removes a remote source.
func (db *DB) DeleteRemoteSource(id string) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	result, err := db.conn.Exec("DELETE FROM remote_sources WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete remote source %s: %w", id, err)
	}
	return expectAffected(result, "remote source", id)
}

func scanRemoteSource(row rowScanner) (*RemoteSource, error) {
	var (
		s           RemoteSource
		lastUpdated sql.NullString
		createdAt   string
	)
	err := row.Scan(&s.ID, &s.Name, &s.URL, &s.Enabled, &lastUpdated, &s.LastStatus, &s.LastError, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan remote source: %w", err)
	}
	if lastUpdated.Valid {
		t := parseTimestamp(lastUpdated.String)
		s.LastUpdated = &t
	}
	s.CreatedAt = parseTimestamp(createdAt)
	return &s, nil
}
