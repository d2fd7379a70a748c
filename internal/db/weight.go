package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/ClaudiuJitea/SnaklessFasting/internal/model"
)

// InsertWeight appends a weight entry for the given calendar day. Weight
// entries are an append-only log; there is no update or delete path short of
// a full data wipe.
func (g *Gateway) InsertWeight(weight float64, date string) (int64, error) {
	var id int64
	err := g.With("add weight entry", func(conn *sql.DB) error {
		res, err := conn.Exec(`
INSERT INTO weight_entries(weight, date) VALUES(?, ?)
`, weight, date)
		if err != nil {
			return fmt.Errorf("insert weight entry: %w", err)
		}
		if id, err = res.LastInsertId(); err != nil {
			return fmt.Errorf("resolve weight entry id: %w", err)
		}
		return nil
	})
	return id, err
}

// RecentWeights returns the most recent entries, newest date first.
func (g *Gateway) RecentWeights(limit int) ([]model.WeightEntry, error) {
	if limit <= 0 {
		limit = 30
	}
	var out []model.WeightEntry
	err := g.With("list weight entries", func(conn *sql.DB) error {
		rows, err := conn.Query(`
SELECT id, weight, date, created_at
FROM weight_entries
ORDER BY date DESC, id DESC
LIMIT ?
`, limit)
		if err != nil {
			return fmt.Errorf("query weight entries: %w", err)
		}
		defer rows.Close()
		for rows.Next() {
			entry, err := scanWeight(rows)
			if err != nil {
				return err
			}
			out = append(out, entry)
		}
		return rows.Err()
	})
	return out, err
}

// WeightHistory returns every entry, newest date first, for data export.
func (g *Gateway) WeightHistory() ([]model.WeightEntry, error) {
	var out []model.WeightEntry
	err := g.With("load weight history", func(conn *sql.DB) error {
		rows, err := conn.Query(`
SELECT id, weight, date, created_at
FROM weight_entries
ORDER BY date DESC, id DESC
`)
		if err != nil {
			return fmt.Errorf("query weight history: %w", err)
		}
		defer rows.Close()
		for rows.Next() {
			entry, err := scanWeight(rows)
			if err != nil {
				return err
			}
			out = append(out, entry)
		}
		return rows.Err()
	})
	return out, err
}

func scanWeight(rows *sql.Rows) (model.WeightEntry, error) {
	var (
		e          model.WeightEntry
		createdRaw string
	)
	if err := rows.Scan(&e.ID, &e.Weight, &e.Date, &createdRaw); err != nil {
		return e, fmt.Errorf("scan weight entry: %w", err)
	}
	e.CreatedAt = parseTimestamp(createdRaw)
	return e, nil
}

// parseTimestamp handles both RFC3339 values written by the app and the
// "YYYY-MM-DD HH:MM:SS" form SQLite emits for CURRENT_TIMESTAMP defaults.
func parseTimestamp(raw string) time.Time {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02 15:04:05", raw); err == nil {
		return t
	}
	return time.Time{}
}
