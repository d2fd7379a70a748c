package store_test

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ClaudiuJitea/SnaklessFasting/internal/model"
)

func TestExportData(t *testing.T) {
	t.Parallel()
	s, gw := newTestStore(t)

	if err := s.AddWeight(70.5); err != nil {
		t.Fatalf("add weight: %v", err)
	}
	seedCompletedFast(t, gw, time.Now().UTC().Add(-20*time.Hour), 16)
	if _, err := gw.UnlockAchievement(model.AchievementStreak7, time.Now()); err != nil {
		t.Fatalf("unlock: %v", err)
	}

	snap, err := s.ExportData()
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	if _, err := uuid.Parse(snap.ID); err != nil {
		t.Fatalf("export id must be a UUID, got %q: %v", snap.ID, err)
	}
	if snap.GeneratedAt.IsZero() {
		t.Fatal("expected a generation timestamp")
	}
	if len(snap.WeightEntries) != 1 {
		t.Fatalf("expected 1 weight entry, got %d", len(snap.WeightEntries))
	}
	if snap.FastingStats.TotalSessions != 1 {
		t.Fatalf("expected 1 completed session, got %d", snap.FastingStats.TotalSessions)
	}
	if len(snap.UnlockedAchievements) != 1 || snap.UnlockedAchievements[0].Type != model.AchievementStreak7 {
		t.Fatalf("expected only the unlocked achievement, got %+v", snap.UnlockedAchievements)
	}
}

func TestExportDataEmptyDatabase(t *testing.T) {
	t.Parallel()
	s, _ := newTestStore(t)

	snap, err := s.ExportData()
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if len(snap.WeightEntries) != 0 || len(snap.UnlockedAchievements) != 0 {
		t.Fatalf("expected an empty export, got %+v", snap)
	}
	if snap.FastingStats.TotalSessions != 0 {
		t.Fatalf("expected zero stats, got %+v", snap.FastingStats)
	}
}
