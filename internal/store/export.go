package store

import (
	"time"

	"github.com/google/uuid"

	"github.com/ClaudiuJitea/SnaklessFasting/internal/model"
)

// ExportSnapshot is the plain data structure handed to external serializers.
// File and CSV mechanics live outside the core.
type ExportSnapshot struct {
	ID                   string              `json:"id"`
	GeneratedAt          time.Time           `json:"generated_at"`
	WeightEntries        []model.WeightEntry `json:"weight_entries"`
	FastingStats         model.SessionStats  `json:"fasting_stats"`
	UnlockedAchievements []model.Achievement `json:"unlocked_achievements"`
}

// ExportData assembles the full weight history, all-time fasting stats, and
// the unlocked achievements into an export snapshot.
func (s *Store) ExportData() (*ExportSnapshot, error) {
	weights, err := s.gw.WeightHistory()
	if err != nil {
		return nil, err
	}
	stats, err := s.gw.SessionStats(allTimeStatsDays)
	if err != nil {
		return nil, err
	}
	achievements, err := s.gw.Achievements()
	if err != nil {
		return nil, err
	}

	unlocked := make([]model.Achievement, 0, len(achievements))
	for _, a := range achievements {
		if a.IsUnlocked {
			unlocked = append(unlocked, a)
		}
	}

	return &ExportSnapshot{
		ID:                   uuid.NewString(),
		GeneratedAt:          time.Now(),
		WeightEntries:        weights,
		FastingStats:         stats,
		UnlockedAchievements: unlocked,
	}, nil
}
