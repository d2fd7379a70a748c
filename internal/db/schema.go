package db

import (
	"database/sql"
	"fmt"

	"github.com/ClaudiuJitea/SnaklessFasting/internal/model"
	"go.uber.org/zap"
)

const metaAchievementsInitialized = "achievements_initialized"

const schemaSQL = `
CREATE TABLE IF NOT EXISTS fasting_sessions (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  start_time TEXT NOT NULL,
  end_time TEXT,
  duration_hours REAL,
  preset_type TEXT,
  is_completed BOOLEAN DEFAULT 0,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS weight_entries (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  weight REAL NOT NULL,
  date TEXT NOT NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS hydration_entries (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  amount REAL NOT NULL,
  date TEXT NOT NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS achievements (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  type TEXT NOT NULL UNIQUE,
  title TEXT NOT NULL,
  description TEXT,
  unlocked_at TEXT,
  is_unlocked BOOLEAN DEFAULT 0
);

CREATE TABLE IF NOT EXISTS user_settings (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  key TEXT UNIQUE NOT NULL,
  value TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS user_profile (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT,
  age INTEGER,
  height REAL,
  gender TEXT,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS app_metadata (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  key TEXT UNIQUE NOT NULL,
  value TEXT NOT NULL
);
`

// Init creates all tables (idempotent DDL) and seeds the fixed achievement
// set exactly once. Seeding is idempotent by construction through the UNIQUE
// type column and INSERT OR IGNORE; the row-count gate and metadata flag are
// kept as defensive double checks on top.
func (g *Gateway) Init() error {
	return g.With("init schema", func(conn *sql.DB) error {
		if _, err := conn.Exec(schemaSQL); err != nil {
			return fmt.Errorf("create tables: %w", err)
		}

		var count int
		if err := conn.QueryRow(`SELECT COUNT(*) FROM achievements`).Scan(&count); err != nil {
			return fmt.Errorf("count achievements: %w", err)
		}
		if count > 0 {
			return nil
		}

		tx, err := conn.Begin()
		if err != nil {
			return fmt.Errorf("begin seed tx: %w", err)
		}
		if err := seedAchievements(tx); err != nil {
			_ = tx.Rollback()
			return err
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit seed tx: %w", err)
		}
		g.log.Info("achievements seeded", zap.Int("count", len(model.AchievementSeed)))
		return nil
	})
}

type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

func seedAchievements(tx execer) error {
	for _, a := range model.AchievementSeed {
		if _, err := tx.Exec(`
INSERT OR IGNORE INTO achievements(type, title, description) VALUES(?, ?, ?)
`, a.Type, a.Title, a.Description); err != nil {
			return fmt.Errorf("seed achievement %s: %w", a.Type, err)
		}
	}
	if _, err := tx.Exec(`
INSERT OR REPLACE INTO app_metadata(key, value) VALUES(?, 'true')
`, metaAchievementsInitialized); err != nil {
		return fmt.Errorf("record seed flag: %w", err)
	}
	return nil
}

// ResetAll wipes every table, resets the auto-increment counters, and
// re-seeds achievements in one transaction, so a concurrent reader never
// observes achievements deleted but not yet re-seeded.
func (g *Gateway) ResetAll() error {
	return g.With("reset all data", func(conn *sql.DB) error {
		tx, err := conn.Begin()
		if err != nil {
			return fmt.Errorf("begin reset tx: %w", err)
		}
		for _, table := range []string{
			"fasting_sessions", "weight_entries", "hydration_entries",
			"achievements", "user_settings", "user_profile", "app_metadata",
		} {
			if _, err := tx.Exec(`DELETE FROM ` + table); err != nil {
				_ = tx.Rollback()
				return fmt.Errorf("clear table %s: %w", table, err)
			}
		}
		if _, err := tx.Exec(`DELETE FROM sqlite_sequence`); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("reset sequences: %w", err)
		}
		if err := seedAchievements(tx); err != nil {
			_ = tx.Rollback()
			return err
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit reset tx: %w", err)
		}
		return nil
	})
}

// RepairDuplicateAchievements rebuilds the achievements table from the
// canonical seed set: delete everything, reset the id counter, re-insert the
// four rows. Unlock state is lost; this is a recovery path for databases
// damaged by the historical duplicate-seeding bug.
func (g *Gateway) RepairDuplicateAchievements() error {
	return g.With("repair duplicate achievements", func(conn *sql.DB) error {
		tx, err := conn.Begin()
		if err != nil {
			return fmt.Errorf("begin repair tx: %w", err)
		}
		if _, err := tx.Exec(`DELETE FROM achievements`); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("clear achievements: %w", err)
		}
		if _, err := tx.Exec(`DELETE FROM sqlite_sequence WHERE name = 'achievements'`); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("reset achievement id counter: %w", err)
		}
		if err := seedAchievements(tx); err != nil {
			_ = tx.Rollback()
			return err
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit repair tx: %w", err)
		}
		g.log.Info("achievement table rebuilt from seed set")
		return nil
	})
}

// IntegrityWarning reports an achievements table that grew past the fixed
// seed set. Non-fatal; callers surface it as a repairable condition.
type IntegrityWarning struct {
	RowCount  int
	SeedCount int
}

func (w *IntegrityWarning) String() string {
	return fmt.Sprintf("achievements table holds %d rows, expected %d", w.RowCount, w.SeedCount)
}

// AchievementIntegrity returns a warning when the achievements row count
// exceeds the seed count, and nil when the table is healthy.
func (g *Gateway) AchievementIntegrity() (*IntegrityWarning, error) {
	var count int
	err := g.With("check achievement integrity", func(conn *sql.DB) error {
		return conn.QueryRow(`SELECT COUNT(*) FROM achievements`).Scan(&count)
	})
	if err != nil {
		return nil, err
	}
	if count > len(model.AchievementSeed) {
		return &IntegrityWarning{RowCount: count, SeedCount: len(model.AchievementSeed)}, nil
	}
	return nil, nil
}
