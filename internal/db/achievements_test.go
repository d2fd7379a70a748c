package db_test

import (
	"testing"
	"time"

	"github.com/ClaudiuJitea/SnaklessFasting/internal/model"
)

func TestUnlockAchievementIsIdempotent(t *testing.T) {
	t.Parallel()
	gw := newTestGateway(t)

	first := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	did, err := gw.UnlockAchievement(model.AchievementStreak7, first)
	if err != nil {
		t.Fatalf("unlock: %v", err)
	}
	if !did {
		t.Fatal("expected first unlock to report true")
	}

	did, err = gw.UnlockAchievement(model.AchievementStreak7, first.Add(48*time.Hour))
	if err != nil {
		t.Fatalf("second unlock: %v", err)
	}
	if did {
		t.Fatal("expected second unlock to be a no-op")
	}

	achievements, err := gw.Achievements()
	if err != nil {
		t.Fatalf("list achievements: %v", err)
	}
	for _, a := range achievements {
		if a.Type != model.AchievementStreak7 {
			continue
		}
		if !a.IsUnlocked || a.UnlockedAt == nil {
			t.Fatalf("expected unlocked row, got %+v", a)
		}
		if !a.UnlockedAt.Equal(first) {
			t.Fatalf("original unlock timestamp must survive, got %v", a.UnlockedAt)
		}
		return
	}
	t.Fatalf("achievement %s not found", model.AchievementStreak7)
}

func TestUnlockUnknownTypeReportsFalse(t *testing.T) {
	t.Parallel()
	gw := newTestGateway(t)
	did, err := gw.UnlockAchievement("no_such_badge", time.Now())
	if err != nil {
		t.Fatalf("unlock: %v", err)
	}
	if did {
		t.Fatal("unknown type must not unlock anything")
	}
}

func TestResetAchievementsLocksAllRows(t *testing.T) {
	t.Parallel()
	gw := newTestGateway(t)

	if _, err := gw.UnlockAchievement(model.AchievementStreak7, time.Now()); err != nil {
		t.Fatalf("unlock: %v", err)
	}
	if _, err := gw.UnlockAchievement(model.AchievementLongestFast, time.Now()); err != nil {
		t.Fatalf("unlock: %v", err)
	}
	if err := gw.ResetAchievements(); err != nil {
		t.Fatalf("reset: %v", err)
	}

	achievements, err := gw.Achievements()
	if err != nil {
		t.Fatalf("list achievements: %v", err)
	}
	if len(achievements) != len(model.AchievementSeed) {
		t.Fatalf("reset must not delete rows, got %d", len(achievements))
	}
	for _, a := range achievements {
		if a.IsUnlocked || a.UnlockedAt != nil {
			t.Fatalf("expected %s locked after reset, got %+v", a.Type, a)
		}
	}
}

func TestAchievementsOrderUnlockedFirst(t *testing.T) {
	t.Parallel()
	gw := newTestGateway(t)

	if _, err := gw.UnlockAchievement(model.AchievementStreak30, time.Now()); err != nil {
		t.Fatalf("unlock: %v", err)
	}
	achievements, err := gw.Achievements()
	if err != nil {
		t.Fatalf("list achievements: %v", err)
	}
	if len(achievements) == 0 || achievements[0].Type != model.AchievementStreak30 {
		t.Fatalf("expected the unlocked achievement first, got %+v", achievements)
	}
}
