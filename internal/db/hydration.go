package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/ClaudiuJitea/SnaklessFasting/internal/model"
)

// InsertHydration appends a signed hydration entry for the given day.
// Negative amounts model a user-initiated correction; the daily total is the
// plain arithmetic sum and is not floored at write time.
func (g *Gateway) InsertHydration(amount float64, date string) (int64, error) {
	var id int64
	err := g.With("add hydration entry", func(conn *sql.DB) error {
		res, err := conn.Exec(`
INSERT INTO hydration_entries(amount, date) VALUES(?, ?)
`, amount, date)
		if err != nil {
			return fmt.Errorf("insert hydration entry: %w", err)
		}
		if id, err = res.LastInsertId(); err != nil {
			return fmt.Errorf("resolve hydration entry id: %w", err)
		}
		return nil
	})
	return id, err
}

// HydrationTotal sums all entries recorded for the given day.
func (g *Gateway) HydrationTotal(date string) (float64, error) {
	var total float64
	err := g.With("load hydration total", func(conn *sql.DB) error {
		return conn.QueryRow(`
SELECT COALESCE(SUM(amount), 0) FROM hydration_entries WHERE date = ?
`, date).Scan(&total)
	})
	return total, err
}

// WeeklyHydration returns per-day hydration totals for the trailing 7 days,
// oldest first. Days without entries are absent.
func (g *Gateway) WeeklyHydration() ([]model.DayTotal, error) {
	since := time.Now().AddDate(0, 0, -6).Format(dateLayout)
	var out []model.DayTotal
	err := g.With("load weekly hydration", func(conn *sql.DB) error {
		rows, err := conn.Query(`
SELECT date, SUM(amount)
FROM hydration_entries
WHERE date >= ?
GROUP BY date
ORDER BY date ASC
`, since)
		if err != nil {
			return fmt.Errorf("query weekly hydration: %w", err)
		}
		defer rows.Close()
		for rows.Next() {
			var d model.DayTotal
			if err := rows.Scan(&d.Date, &d.Total); err != nil {
				return fmt.Errorf("scan weekly hydration: %w", err)
			}
			out = append(out, d)
		}
		return rows.Err()
	})
	return out, err
}
