package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// SetSetting upserts a persisted user setting.
func (g *Gateway) SetSetting(key, value string) error {
	key = strings.TrimSpace(strings.ToLower(key))
	if key == "" {
		return fmt.Errorf("setting key is required")
	}
	return g.With("set user setting", func(conn *sql.DB) error {
		if _, err := conn.Exec(`
INSERT INTO user_settings(key, value) VALUES(?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value
`, key, strings.TrimSpace(value)); err != nil {
			return fmt.Errorf("set setting %q: %w", key, err)
		}
		return nil
	})
}

// GetSetting reads one setting; the bool reports whether the key exists.
func (g *Gateway) GetSetting(key string) (string, bool, error) {
	key = strings.TrimSpace(strings.ToLower(key))
	if key == "" {
		return "", false, fmt.Errorf("setting key is required")
	}
	var (
		value string
		found bool
	)
	err := g.With("get user setting", func(conn *sql.DB) error {
		err := conn.QueryRow(`SELECT value FROM user_settings WHERE key = ?`, key).Scan(&value)
		if err == sql.ErrNoRows {
			return nil
		}
		if err != nil {
			return fmt.Errorf("get setting %q: %w", key, err)
		}
		found = true
		return nil
	})
	return value, found, err
}

// Settings returns every persisted setting.
func (g *Gateway) Settings() (map[string]string, error) {
	out := map[string]string{}
	err := g.With("list user settings", func(conn *sql.DB) error {
		rows, err := conn.Query(`SELECT key, value FROM user_settings ORDER BY key ASC`)
		if err != nil {
			return fmt.Errorf("query settings: %w", err)
		}
		defer rows.Close()
		for rows.Next() {
			var key, value string
			if err := rows.Scan(&key, &value); err != nil {
				return fmt.Errorf("scan setting: %w", err)
			}
			out[key] = value
		}
		return rows.Err()
	})
	return out, err
}
