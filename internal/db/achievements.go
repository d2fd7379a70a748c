package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/ClaudiuJitea/SnaklessFasting/internal/model"
)

// Achievements lists all rows, unlocked first, most recent unlock on top.
func (g *Gateway) Achievements() ([]model.Achievement, error) {
	var out []model.Achievement
	err := g.With("list achievements", func(conn *sql.DB) error {
		rows, err := conn.Query(`
SELECT id, type, title, IFNULL(description, ''), unlocked_at, is_unlocked
FROM achievements
ORDER BY is_unlocked DESC, unlocked_at DESC, id ASC
`)
		if err != nil {
			return fmt.Errorf("query achievements: %w", err)
		}
		defer rows.Close()
		for rows.Next() {
			var (
				a           model.Achievement
				unlockedRaw sql.NullString
			)
			if err := rows.Scan(&a.ID, &a.Type, &a.Title, &a.Description, &unlockedRaw, &a.IsUnlocked); err != nil {
				return fmt.Errorf("scan achievement: %w", err)
			}
			if unlockedRaw.Valid {
				if t, err := time.Parse(time.RFC3339, unlockedRaw.String); err == nil {
					a.UnlockedAt = &t
				}
			}
			out = append(out, a)
		}
		return rows.Err()
	})
	return out, err
}

// UnlockAchievement flips the unlocked state for a type. Idempotent: an
// already-unlocked row is untouched and keeps its original timestamp.
// Returns whether this call performed the unlock.
func (g *Gateway) UnlockAchievement(achievementType string, at time.Time) (bool, error) {
	var unlocked bool
	err := g.With("unlock achievement", func(conn *sql.DB) error {
		res, err := conn.Exec(`
UPDATE achievements SET is_unlocked = 1, unlocked_at = ? WHERE type = ? AND is_unlocked = 0
`, at.UTC().Format(time.RFC3339), achievementType)
		if err != nil {
			return fmt.Errorf("unlock %s: %w", achievementType, err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("read rows affected: %w", err)
		}
		unlocked = affected > 0
		return nil
	})
	return unlocked, err
}

// ResetAchievements clears unlocked state on every row without deleting any.
func (g *Gateway) ResetAchievements() error {
	return g.With("reset achievements", func(conn *sql.DB) error {
		if _, err := conn.Exec(`UPDATE achievements SET is_unlocked = 0, unlocked_at = NULL`); err != nil {
			return fmt.Errorf("reset achievements: %w", err)
		}
		return nil
	})
}
