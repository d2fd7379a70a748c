package db

import (
	"database/sql"
	"fmt"

	"github.com/ClaudiuJitea/SnaklessFasting/internal/model"
)

// ProfilePatch enumerates the updatable profile fields. The gateway never
// builds statements from arbitrary field maps.
type ProfilePatch struct {
	Name   string
	Age    int
	Height float64
	Gender string
}

// Profile returns the current profile: the latest row by id, treated as a
// singleton. Nil when no profile has been saved yet.
func (g *Gateway) Profile() (*model.UserProfile, error) {
	var out *model.UserProfile
	err := g.With("load user profile", func(conn *sql.DB) error {
		p, err := queryProfile(conn)
		if err != nil {
			return err
		}
		out = p
		return nil
	})
	return out, err
}

// SaveProfile updates the current profile row, or inserts one when none
// exists, and returns the stored result.
func (g *Gateway) SaveProfile(patch ProfilePatch) (*model.UserProfile, error) {
	var out *model.UserProfile
	err := g.With("save user profile", func(conn *sql.DB) error {
		existing, err := queryProfile(conn)
		if err != nil {
			return err
		}
		if existing != nil {
			if _, err := conn.Exec(`
UPDATE user_profile
SET name = ?, age = ?, height = ?, gender = ?, updated_at = CURRENT_TIMESTAMP
WHERE id = ?
`, patch.Name, patch.Age, patch.Height, patch.Gender, existing.ID); err != nil {
				return fmt.Errorf("update profile %d: %w", existing.ID, err)
			}
		} else {
			if _, err := conn.Exec(`
INSERT INTO user_profile(name, age, height, gender) VALUES(?, ?, ?, ?)
`, patch.Name, patch.Age, patch.Height, patch.Gender); err != nil {
				return fmt.Errorf("insert profile: %w", err)
			}
		}
		out, err = queryProfile(conn)
		return err
	})
	return out, err
}

func queryProfile(conn *sql.DB) (*model.UserProfile, error) {
	var (
		p          model.UserProfile
		name       sql.NullString
		age        sql.NullInt64
		height     sql.NullFloat64
		gender     sql.NullString
		createdRaw string
		updatedRaw string
	)
	err := conn.QueryRow(`
SELECT id, name, age, height, gender, created_at, updated_at
FROM user_profile
ORDER BY id DESC
LIMIT 1
`).Scan(&p.ID, &name, &age, &height, &gender, &createdRaw, &updatedRaw)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan profile: %w", err)
	}
	p.Name = name.String
	p.Age = int(age.Int64)
	p.Height = height.Float64
	p.Gender = gender.String
	p.CreatedAt = parseTimestamp(createdRaw)
	p.UpdatedAt = parseTimestamp(updatedRaw)
	return &p, nil
}
