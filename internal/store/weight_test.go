package store_test

import (
	"testing"
	"time"

	"github.com/ClaudiuJitea/SnaklessFasting/internal/model"
	"github.com/ClaudiuJitea/SnaklessFasting/internal/store"
)

func TestAddWeightValidation(t *testing.T) {
	t.Parallel()
	s, _ := newTestStore(t)

	var verr *store.ValidationError
	if err := s.AddWeight(0); !asValidationError(err, &verr) {
		t.Fatalf("expected validation error for 0, got %v", err)
	}
	if err := s.AddWeight(-5); !asValidationError(err, &verr) {
		t.Fatalf("expected validation error for negative weight, got %v", err)
	}
	if err := s.AddWeight(501); !asValidationError(err, &verr) {
		t.Fatalf("expected validation error above 500, got %v", err)
	}
	if err := s.AddWeightEntry(70, "10-03-2026"); !asValidationError(err, &verr) {
		t.Fatalf("expected validation error for a bad date, got %v", err)
	}
	if len(s.Snapshot().WeightEntries) != 0 {
		t.Fatal("rejected writes must not reach storage")
	}
}

func TestAddWeightUpdatesSnapshot(t *testing.T) {
	t.Parallel()
	s, _ := newTestStore(t)

	if err := s.AddWeight(70.5); err != nil {
		t.Fatalf("add weight: %v", err)
	}

	st := s.Snapshot()
	if st.CurrentWeight != 70.5 {
		t.Fatalf("expected current weight 70.5, got %v", st.CurrentWeight)
	}
	if len(st.WeightEntries) != 1 {
		t.Fatalf("expected one entry, got %d", len(st.WeightEntries))
	}
	entry := st.WeightEntries[0]
	if entry.Weight != 70.5 {
		t.Fatalf("expected entry weight 70.5, got %v", entry.Weight)
	}
	if entry.Date != time.Now().Format("2006-01-02") {
		t.Fatalf("expected today's date, got %q", entry.Date)
	}
}

func TestWeightMilestoneUnlocksFromAbove(t *testing.T) {
	t.Parallel()
	s, _ := newTestStore(t)

	earlier := time.Now().AddDate(0, 0, -10).Format("2006-01-02")
	if err := s.AddWeightEntry(80, earlier); err != nil {
		t.Fatalf("seed starting weight: %v", err)
	}
	if err := s.SetTargetWeight(75); err != nil {
		t.Fatalf("set target: %v", err)
	}
	assertUnlocked(t, s.Snapshot().Achievements, model.AchievementWeightMilestone, false)

	if err := s.AddWeight(74.5); err != nil {
		t.Fatalf("add weight at goal: %v", err)
	}
	assertUnlocked(t, s.Snapshot().Achievements, model.AchievementWeightMilestone, true)
}

func TestWeightMilestoneUnlocksFromBelow(t *testing.T) {
	t.Parallel()
	s, _ := newTestStore(t)

	earlier := time.Now().AddDate(0, 0, -10).Format("2006-01-02")
	if err := s.AddWeightEntry(55, earlier); err != nil {
		t.Fatalf("seed starting weight: %v", err)
	}
	if err := s.SetTargetWeight(60); err != nil {
		t.Fatalf("set target: %v", err)
	}

	if err := s.AddWeight(58); err != nil {
		t.Fatalf("add weight below goal: %v", err)
	}
	assertUnlocked(t, s.Snapshot().Achievements, model.AchievementWeightMilestone, false)

	if err := s.AddWeight(60.5); err != nil {
		t.Fatalf("add weight at goal: %v", err)
	}
	assertUnlocked(t, s.Snapshot().Achievements, model.AchievementWeightMilestone, true)
}

func TestSetTargetWeightValidation(t *testing.T) {
	t.Parallel()
	s, _ := newTestStore(t)
	var verr *store.ValidationError
	if err := s.SetTargetWeight(0); !asValidationError(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if err := s.SetTargetWeight(900); !asValidationError(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
