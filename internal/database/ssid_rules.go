package database

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// SSIDRule maps a Wi-Fi network name to the profile activated on it.
type SSIDRule struct {
	SSID      string
	ProfileID string
}

// UpsertSSIDRule creates or replaces the rule for ssid.
func (db *DB) UpsertSSIDRule(ssid, profileID string) error {
	ssid = strings.TrimSpace(ssid)
	if ssid == "" {
		return errors.New("ssid is required")
	}
	if _, err := db.GetProfile(profileID); err != nil {
		return err
	}

	db.mu.Lock()
	defer db.mu.Unlock()

	query := `
		INSERT INTO ssid_rules (ssid, profile_id)
		VALUES (?, ?)
		ON CONFLICT(ssid) DO UPDATE SET
			profile_id = excluded.profile_id
	`
	if _, err := db.conn.Exec(query, ssid, profileID); err != nil {
		return fmt.Errorf("failed to upsert ssid rule %s: %w", ssid, err)
	}
	return nil
}

// ListSSIDRules returns all rules ordered by SSID.
func (db *DB) ListSSIDRules() ([]SSIDRule, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	rows, err := db.conn.Query("SELECT ssid, profile_id FROM ssid_rules ORDER BY ssid")
	if err != nil {
		return nil, fmt.Errorf("failed to query ssid rules: %w", err)
	}
	defer rows.Close()

	rules := []SSIDRule{}
	for rows.Next() {
		var r SSIDRule
		if err := rows.Scan(&r.SSID, &r.ProfileID); err != nil {
			return nil, fmt.Errorf("failed to scan ssid rule: %w", err)
		}
		rules = append(rules, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ssid rules: %w", err)
	}
	return rules, nil
}

// DeleteSSIDRule removes the rule for ssid.
func (db *DB) DeleteSSIDRule(ssid string) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	result, err := db.conn.Exec("DELETE FROM ssid_rules WHERE ssid = ?", ssid)
	if err != nil {
		return fmt.Errorf("failed to delete ssid rule %s: %w", ssid, err)
	}
	return expectAffected(result, "ssid rule", ssid)
}

// ProfileForSSID returns the profile ID mapped to ssid, or ErrNotFound.
func (db *DB) ProfileForSSID(ssid string) (string, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	var profileID string
	err := db.conn.QueryRow("SELECT profile_id FROM ssid_rules WHERE ssid = ?", ssid).Scan(&profileID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("ssid rule %s: %w", ssid, ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("failed to get ssid rule %s: %w", ssid, err)
	}
	return profileID, nil
}
