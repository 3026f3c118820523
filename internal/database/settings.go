package database

import (
	"database/sql"
	"errors"
	"fmt"
)

// Setting keys stored in the settings table.
const (
	SettingActiveProfile = "profiles.active_id"
	SettingAutoFlushDNS  = "hosts.auto_flush_dns"
	SettingAutoSwitch    = "ssid.auto_switch"
)

// SetSetting sets a setting value.
func (db *DB) SetSetting(key, value string) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	query := `
		INSERT INTO settings (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at
	`

	if _, err := db.conn.Exec(query, key, value, db.timestamp()); err != nil {
		return fmt.Errorf("failed to set setting %s: %w", key, err)
	}
	return nil
}

// GetSetting retrieves a setting value. It returns ErrNotFound when the
// key has never been set.
func (db *DB) GetSetting(key string) (string, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	var value string
	err := db.conn.QueryRow("SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("setting %s: %w", key, ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("failed to get setting %s: %w", key, err)
	}
	return value, nil
}

// GetSettingWithDefault retrieves a setting value or returns a default.
func (db *DB) GetSettingWithDefault(key, defaultValue string) string {
	value, err := db.GetSetting(key)
	if err != nil {
		return defaultValue
	}
	return value
}

// GetAllSettings retrieves all setting key-value pairs.
func (db *DB) GetAllSettings() (map[string]string, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	rows, err := db.conn.Query("SELECT key, value FROM settings ORDER BY key")
	if err != nil {
		return nil, fmt.Errorf("failed to query settings: %w", err)
	}
	defer rows.Close()

	settings := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("failed to scan setting row: %w", err)
		}
		settings[key] = value
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating setting rows: %w", err)
	}
	return settings, nil
}

// DeleteSetting removes a setting key.
func (db *DB) DeleteSetting(key string) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if _, err := db.conn.Exec("DELETE FROM settings WHERE key = ?", key); err != nil {
		return fmt.Errorf("failed to delete setting %s: %w", key, err)
	}
	return nil
}
