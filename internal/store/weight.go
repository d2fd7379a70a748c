package store

import (
	"time"

	"github.com/ClaudiuJitea/SnaklessFasting/internal/model"
	"go.uber.org/zap"
)

const maxWeightKg = 500

// AddWeight records a weight entry for today.
func (s *Store) AddWeight(weight float64) error {
	return s.AddWeightEntry(weight, today())
}

// AddWeightEntry records a weight entry for an explicit day, reloads the
// recent window, and updates the current-weight field. Validation happens
// before any storage call.
func (s *Store) AddWeightEntry(weight float64, date string) error {
	if weight <= 0 {
		return &ValidationError{Field: "weight", Reason: "must be greater than 0"}
	}
	if weight > maxWeightKg {
		return &ValidationError{Field: "weight", Reason: "must be at most 500"}
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return &ValidationError{Field: "date", Reason: "expected YYYY-MM-DD"}
	}

	if _, err := s.gw.InsertWeight(weight, date); err != nil {
		return err
	}

	entries, err := s.gw.RecentWeights(recentWeightLimit)
	if err != nil {
		return err
	}
	s.setState(func(st *State) {
		st.WeightEntries = entries
		st.CurrentWeight = weight
	})

	if err := s.CheckWeightMilestone(); err != nil {
		s.log.Warn("weight milestone check failed", zap.Error(err))
	}
	return nil
}

// SetTargetWeight persists the goal weight and re-evaluates the milestone.
func (s *Store) SetTargetWeight(weight float64) error {
	if weight <= 0 || weight > maxWeightKg {
		return &ValidationError{Field: "target weight", Reason: "must be in (0, 500]"}
	}
	if err := s.gw.SetSetting("target_weight", formatFloat(weight)); err != nil {
		return err
	}
	s.setState(func(st *State) {
		st.TargetWeight = weight
	})
	if err := s.CheckWeightMilestone(); err != nil {
		s.log.Warn("weight milestone check failed", zap.Error(err))
	}
	return nil
}

// CheckWeightMilestone unlocks the weight_milestone achievement once the
// latest recorded weight has reached the target (from above or below).
func (s *Store) CheckWeightMilestone() error {
	st := s.Snapshot()
	if st.TargetWeight <= 0 || st.CurrentWeight <= 0 {
		return nil
	}
	startedAbove := len(st.WeightEntries) > 0 &&
		st.WeightEntries[len(st.WeightEntries)-1].Weight >= st.TargetWeight
	reached := false
	if startedAbove {
		reached = st.CurrentWeight <= st.TargetWeight
	} else {
		reached = st.CurrentWeight >= st.TargetWeight
	}
	if !reached {
		return nil
	}
	if err := s.unlock(model.AchievementWeightMilestone, time.Now()); err != nil {
		return err
	}
	return s.reloadAchievements()
}
