package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/ClaudiuJitea/SnaklessFasting/internal/model"
)

const dateLayout = "2006-01-02"

// StartSession inserts a new open fasting session. The at-most-one-open-
// session invariant is enforced here, at the write path: the existence check
// and insert run inside one transaction on the serialized connection.
func (g *Gateway) StartSession(presetType string, start time.Time) (int64, error) {
	var id int64
	err := g.With("start fasting session", func(conn *sql.DB) error {
		tx, err := conn.Begin()
		if err != nil {
			return fmt.Errorf("begin tx: %w", err)
		}
		var open int
		if err := tx.QueryRow(`SELECT COUNT(*) FROM fasting_sessions WHERE end_time IS NULL`).Scan(&open); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("check open session: %w", err)
		}
		if open > 0 {
			_ = tx.Rollback()
			return ErrOpenSession
		}
		res, err := tx.Exec(`
INSERT INTO fasting_sessions(start_time, preset_type) VALUES(?, ?)
`, start.UTC().Format(time.RFC3339), presetType)
		if err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("insert session: %w", err)
		}
		if id, err = res.LastInsertId(); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("resolve session id: %w", err)
		}
		return tx.Commit()
	})
	return id, err
}

// CloseSession is the single mutation a session ever receives: end time,
// computed duration, completed flag.
func (g *Gateway) CloseSession(id int64, end time.Time, durationHours float64) error {
	return g.With("close fasting session", func(conn *sql.DB) error {
		res, err := conn.Exec(`
UPDATE fasting_sessions SET end_time = ?, duration_hours = ?, is_completed = 1 WHERE id = ?
`, end.UTC().Format(time.RFC3339), durationHours, id)
		if err != nil {
			return fmt.Errorf("update session %d: %w", id, err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("read rows affected: %w", err)
		}
		if affected == 0 {
			return fmt.Errorf("session %d not found", id)
		}
		return nil
	})
}

// CurrentSession returns the open session, or nil when none is open.
func (g *Gateway) CurrentSession() (*model.FastingSession, error) {
	var out *model.FastingSession
	err := g.With("load current session", func(conn *sql.DB) error {
		row := conn.QueryRow(`
SELECT id, start_time, end_time, duration_hours, preset_type, is_completed
FROM fasting_sessions
WHERE end_time IS NULL
ORDER BY start_time DESC
LIMIT 1
`)
		sess, err := scanSession(row)
		if err == sql.ErrNoRows {
			return nil
		}
		if err != nil {
			return err
		}
		out = sess
		return nil
	})
	return out, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (*model.FastingSession, error) {
	var (
		s        model.FastingSession
		startRaw string
		endRaw   sql.NullString
		duration sql.NullFloat64
		preset   sql.NullString
	)
	if err := row.Scan(&s.ID, &startRaw, &endRaw, &duration, &preset, &s.IsCompleted); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scan session: %w", err)
	}
	start, err := time.Parse(time.RFC3339, startRaw)
	if err != nil {
		return nil, fmt.Errorf("parse start_time: %w", err)
	}
	s.StartTime = start
	if endRaw.Valid {
		end, err := time.Parse(time.RFC3339, endRaw.String)
		if err != nil {
			return nil, fmt.Errorf("parse end_time: %w", err)
		}
		s.EndTime = &end
	}
	if duration.Valid {
		v := duration.Float64
		s.DurationHours = &v
	}
	s.PresetType = preset.String
	return &s, nil
}

// SessionStats aggregates completed sessions started within the trailing
// window of days.
func (g *Gateway) SessionStats(days int) (model.SessionStats, error) {
	var stats model.SessionStats
	since := time.Now().AddDate(0, 0, -days)
	err := g.With("load fasting stats", func(conn *sql.DB) error {
		return conn.QueryRow(`
SELECT COUNT(*), COALESCE(AVG(duration_hours), 0), COALESCE(SUM(duration_hours), 0)
FROM fasting_sessions
WHERE is_completed = 1 AND start_time >= ?
`, since.UTC().Format(time.RFC3339)).Scan(&stats.TotalSessions, &stats.AvgDurationHours, &stats.TotalHours)
	})
	return stats, err
}

// WeeklySessionHours returns per-day completed fasting hours for the
// trailing 7 days, oldest first. Days without sessions are absent.
func (g *Gateway) WeeklySessionHours() ([]model.DayTotal, error) {
	since := time.Now().AddDate(0, 0, -6)
	var out []model.DayTotal
	err := g.With("load weekly fasting hours", func(conn *sql.DB) error {
		rows, err := conn.Query(`
SELECT substr(start_time, 1, 10) AS day, SUM(duration_hours)
FROM fasting_sessions
WHERE is_completed = 1 AND start_time >= ?
GROUP BY day
ORDER BY day ASC
`, since.UTC().Format(time.RFC3339))
		if err != nil {
			return fmt.Errorf("query weekly fasting hours: %w", err)
		}
		defer rows.Close()
		for rows.Next() {
			var d model.DayTotal
			if err := rows.Scan(&d.Date, &d.Total); err != nil {
				return fmt.Errorf("scan weekly fasting hours: %w", err)
			}
			out = append(out, d)
		}
		return rows.Err()
	})
	return out, err
}

// CompletedSessionDays returns the distinct calendar days with at least one
// completed session within the lookback window, newest first. The streak
// derivation consumes this list.
func (g *Gateway) CompletedSessionDays(lookbackDays int) ([]string, error) {
	since := time.Now().AddDate(0, 0, -lookbackDays)
	var out []string
	err := g.With("load completed session days", func(conn *sql.DB) error {
		rows, err := conn.Query(`
SELECT DISTINCT substr(start_time, 1, 10) AS day
FROM fasting_sessions
WHERE is_completed = 1 AND start_time >= ?
ORDER BY day DESC
`, since.UTC().Format(time.RFC3339))
		if err != nil {
			return fmt.Errorf("query session days: %w", err)
		}
		defer rows.Close()
		for rows.Next() {
			var day string
			if err := rows.Scan(&day); err != nil {
				return fmt.Errorf("scan session day: %w", err)
			}
			out = append(out, day)
		}
		return rows.Err()
	})
	return out, err
}
