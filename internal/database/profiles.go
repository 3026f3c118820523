package database

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jroosing/easyhosts/internal/hosts"
)

// Profile is a named, stored hosts document.
type Profile struct {
	ID          string
	Name        string
	Description string
	Document    hosts.Document
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CreateProfile stores a new profile and returns it with its generated ID.
func (db *DB) CreateProfile(name, description string, doc hosts.Document) (*Profile, error) {
	if name == "" {
		return nil, errors.New("profile name is required")
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode profile %s: %w", name, err)
	}

	db.mu.Lock()
	defer db.mu.Unlock()

	now := db.timestamp()
	p := &Profile{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		Document:    doc.Clone(),
		CreatedAt:   parseTimestamp(now),
		UpdatedAt:   parseTimestamp(now),
	}

	query := `
		INSERT INTO profiles (id, name, description, hosts_data, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	if _, err := db.conn.Exec(query, p.ID, name, description, string(data), now, now); err != nil {
		return nil, fmt.Errorf("failed to create profile %s: %w", name, err)
	}
	return p, nil
}

// ListProfiles returns all profiles ordered by name.
func (db *DB) ListProfiles() ([]Profile, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	rows, err := db.conn.Query(`
		SELECT id, name, description, hosts_data, created_at, updated_at
		FROM profiles
		ORDER BY name, created_at
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query profiles: %w", err)
	}
	defer rows.Close()

	profiles := []Profile{}
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, *p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating profiles: %w", err)
	}
	return profiles, nil
}

// GetProfile returns the profile with the given ID.
func (db *DB) GetProfile(id string) (*Profile, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	row := db.conn.QueryRow(`
		SELECT id, name, description, hosts_data, created_at, updated_at
		FROM profiles
		WHERE id = ?
	`, id)

	p, err := scanProfile(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("profile %s: %w", id, ErrNotFound)
	}
	return p, err
}

// UpdateProfile replaces the name, description and document of a profile.
func (db *DB) UpdateProfile(id, name, description string, doc hosts.Document) error {
	if name == "" {
		return errors.New("profile name is required")
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode profile %s: %w", id, err)
	}

	db.mu.Lock()
	defer db.mu.Unlock()

	result, err := db.conn.Exec(`
		UPDATE profiles
		SET name = ?, description = ?, hosts_data = ?, updated_at = ?
		WHERE id = ?
	`, name, description, string(data), db.timestamp(), id)
	if err != nil {
		return fmt.Errorf("failed to update profile %s: %w", id, err)
	}
	return expectAffected(result, "profile", id)
}

// DeleteProfile removes a profile together with its SSID rules. Deleting the
// active profile clears the active marker.
func (db *DB) DeleteProfile(id string) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.Exec("DELETE FROM profiles WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete profile %s: %w", id, err)
	}
	if err := expectAffected(result, "profile", id); err != nil {
		return err
	}

	if _, err := tx.Exec("DELETE FROM ssid_rules WHERE profile_id = ?", id); err != nil {
		return fmt.Errorf("failed to delete ssid rules for profile %s: %w", id, err)
	}
	if _, err := tx.Exec("DELETE FROM settings WHERE key = ? AND value = ?", SettingActiveProfile, id); err != nil {
		return fmt.Errorf("failed to clear active profile: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// SetActiveProfile marks a profile as active. An empty id clears the marker.
func (db *DB) SetActiveProfile(id string) error {
	if id == "" {
		return db.DeleteSetting(SettingActiveProfile)
	}
	if _, err := db.GetProfile(id); err != nil {
		return err
	}
	return db.SetSetting(SettingActiveProfile, id)
}

// ActiveProfileID returns the active profile ID, or "" when none is active.
func (db *DB) ActiveProfileID() (string, error) {
	id, err := db.GetSetting(SettingActiveProfile)
	if errors.Is(err, ErrNotFound) {
		return "", nil
	}
	return id, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfile(row rowScanner) (*Profile, error) {
	var (
		p                    Profile
		data                 string
		createdAt, updatedAt string
	)
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &data, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan profile: %w", err)
	}

	doc := hosts.NewDocument()
	if err := json.Unmarshal([]byte(data), &doc); err != nil {
		return nil, fmt.Errorf("failed to decode profile %s: %w", p.ID, err)
	}
	if doc.Entries == nil {
		doc.Entries = []hosts.Entry{}
	}
	if doc.Sections == nil {
		doc.Sections = []hosts.Section{}
	}
	p.Document = doc
	p.CreatedAt = parseTimestamp(createdAt)
	p.UpdatedAt = parseTimestamp(updatedAt)
	return &p, nil
}

func expectAffected(result sql.Result, kind, id string) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s %s: %w", kind, id, ErrNotFound)
	}
	return nil
}
